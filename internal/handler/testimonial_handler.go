package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hhcc/internal/service"
)

// TestimonialHandler serves public testimonial endpoints.
type TestimonialHandler struct {
	svc service.TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler.
func NewTestimonialHandler(svc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

// SubmitTestimonialRequest represents a public testimonial submission.
type SubmitTestimonialRequest struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// List godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {object} Envelope
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, http.StatusOK, "", testimonials)
}

// Submit godoc
// @Summary Submit a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body SubmitTestimonialRequest true "Testimonial data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /testimonials [post]
func (h *TestimonialHandler) Submit(c echo.Context) error {
	var req SubmitTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	testimonial, err := h.svc.Submit(c.Request().Context(), req.Name, req.Role, req.Content, req.Rating)
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusCreated, "Testimonial submitted successfully", testimonial)
}
