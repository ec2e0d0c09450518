package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hhcc/internal/service"
)

// UserHandler handles self-service profile and family/pet endpoints.
// The acting user's identity comes from the verified session token.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfileRequest carries the self-service mutable fields.
// Empty fields keep their stored values.
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// AddFamilyMemberRequest adds a family member or pet to the caller's profile.
// For type "pet", PetType names the species.
type AddFamilyMemberRequest struct {
	Type    string `json:"type" validate:"required,oneof=elder child pet"`
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age"`
	PetType string `json:"petType"`
}

// RemoveFamilyMemberRequest removes a family member or pet by id.
type RemoveFamilyMemberRequest struct {
	MemberID       string `json:"memberId" validate:"required"`
	IsFamilyMember bool   `json:"isFamilyMember"`
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/update-profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), userID, service.ProfileUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Profile updated successfully", user)
}

// AddFamilyMember godoc
// @Summary Add a family member or pet
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFamilyMemberRequest true "Member data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/add-family-member [post]
func (h *UserHandler) AddFamilyMember(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AddFamilyMemberRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	var user interface{}
	if req.Type == "pet" {
		user, err = h.svc.AddPet(c.Request().Context(), userID, req.Name, req.PetType)
	} else {
		user, err = h.svc.AddFamilyMember(c.Request().Context(), userID, req.Name, req.Age, req.Type)
	}
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Family member added successfully", user)
}

// RemoveFamilyMember godoc
// @Summary Remove a family member or pet
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RemoveFamilyMemberRequest true "Member id"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/remove-family-member [post]
func (h *UserHandler) RemoveFamilyMember(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req RemoveFamilyMemberRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return respondBadRequest(c, "Invalid member id")
	}

	user, err := h.svc.RemoveFamilyMember(c.Request().Context(), userID, memberID, req.IsFamilyMember)
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Family member removed successfully", user)
}
