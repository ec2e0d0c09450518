package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hhcc/internal/model"
	"hhcc/internal/service"
)

// PaymentHandler serves the simulated payment wizard endpoint.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// PaymentRequest represents a payment wizard submission.
type PaymentRequest struct {
	Amount      string `json:"amount" validate:"required"`
	CardNumber  string `json:"cardNumber" validate:"required"`
	CardName    string `json:"cardName" validate:"required"`
	CardExpiry  string `json:"cardExpiry" validate:"required"`
	CardCVV     string `json:"cardCvv" validate:"required"`
	ProgramType string `json:"programType"`
}

// PaymentData is the payload of a payment response.
type PaymentData struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// Process godoc
// @Summary Run the payment wizard
// @Description Validates the card and records the attempt; no funds move.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /payments [post]
func (h *PaymentHandler) Process(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return respondBadRequest(c, "Invalid amount")
	}

	payment, err := h.svc.Process(c.Request().Context(), service.PaymentInput{
		UserID:      userID,
		Amount:      amount,
		CardNumber:  req.CardNumber,
		CardName:    req.CardName,
		CardExpiry:  req.CardExpiry,
		CardCVV:     req.CardCVV,
		ProgramType: req.ProgramType,
	})
	if err != nil && payment == nil {
		return respondErr(c, err)
	}

	data := PaymentData{
		PaymentID: payment.ID.String(),
		Status:    string(payment.Status),
	}
	if payment.Status == model.PaymentStatusFailed {
		return c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Payment failed",
			Data:    data,
		})
	}

	return respondOK(c, http.StatusOK, "Payment processed successfully", data)
}
