package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hhcc/internal/service"
)

// PasswordHandler handles the three-step password reset flow.
type PasswordHandler struct {
	resetService service.PasswordResetService
}

// NewPasswordHandler creates a new password handler.
func NewPasswordHandler(resetService service.PasswordResetService) *PasswordHandler {
	return &PasswordHandler{resetService: resetService}
}

// ForgotPasswordRequest represents a reset initiation request.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyResetRequest represents the second step of the reset flow.
// Answer is the client-side puzzle answer; it is accepted but not checked
// here — the server vouches only for token liveness.
type VerifyResetRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Answer int    `json:"answer"`
	Token  string `json:"token" validate:"required"`
}

// ResetPasswordRequest represents the final step of the reset flow.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
	Token       string `json:"token" validate:"required"`
}

// ForgotPassword godoc
// @Summary Initiate a password reset
// @Description Always succeeds so callers cannot probe registered emails. The
// @Description token is returned in the response body; there is no mail delivery.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Email"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /auth/forgot-password [post]
func (h *PasswordHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	token, err := h.resetService.Forgot(c.Request().Context(), req.Email)
	if err != nil {
		return respondErr(c, err)
	}

	var data interface{}
	if token != "" {
		data = map[string]string{"resetToken": token}
	}
	return respondOK(c, http.StatusOK, "If the email exists, a reset token has been issued", data)
}

// VerifyReset godoc
// @Summary Verify a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyResetRequest true "Verification data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /auth/verify-reset [post]
func (h *PasswordHandler) VerifyReset(c echo.Context) error {
	var req VerifyResetRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	if err := h.resetService.Verify(c.Request().Context(), req.Email, req.Token); err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Verification successful", nil)
}

// ResetPassword godoc
// @Summary Complete a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/reset-password [post]
func (h *PasswordHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	if err := h.resetService.Reset(c.Request().Context(), req.Email, req.NewPassword, req.Token); err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Password reset successful", nil)
}
