package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hhcc/internal/service"
)

// ScheduleHandler serves care booking endpoints.
type ScheduleHandler struct {
	svc service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// CreateScheduleRequest represents a booking form submission.
type CreateScheduleRequest struct {
	MemberID    string `json:"memberId"`
	MemberName  string `json:"memberName" validate:"required"`
	MemberType  string `json:"memberType" validate:"required"`
	Date        string `json:"date" validate:"required"`
	DropOffTime string `json:"dropOffTime" validate:"required"`
	PickupTime  string `json:"pickupTime" validate:"required"`
	Notes       string `json:"notes"`
	ProgramType string `json:"programType" validate:"required"`
}

// Create godoc
// @Summary Book a care schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateScheduleRequest true "Booking data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required booking fields")
	}

	schedule, err := h.svc.Create(c.Request().Context(), service.ScheduleInput{
		UserID:      userID,
		MemberID:    req.MemberID,
		MemberName:  req.MemberName,
		MemberType:  req.MemberType,
		Date:        req.Date,
		DropOffTime: req.DropOffTime,
		PickupTime:  req.PickupTime,
		Notes:       req.Notes,
		ProgramType: req.ProgramType,
	})
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusCreated, "Schedule created successfully", schedule)
}

// ListForUser godoc
// @Summary List a user's schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} Envelope
// @Router /schedules/{userId} [get]
func (h *ScheduleHandler) ListForUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	schedules, err := h.svc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, http.StatusOK, "", schedules)
}
