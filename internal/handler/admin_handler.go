package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hhcc/internal/service"
)

// AdminHandler handles privileged user-management endpoints. The acting
// admin is the authenticated caller; role is re-checked server-side per call.
type AdminHandler struct {
	svc service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// AdminUpdateUserRequest carries an admin update of a target user.
// Email is ignored if supplied; it is immutable.
type AdminUpdateUserRequest struct {
	UserID    string `json:"userId" validate:"required"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role" validate:"omitempty,oneof=user admin"`
}

// AdminFamilyMemberRequest adds a member to a target user's profile.
type AdminFamilyMemberRequest struct {
	UserID string `json:"userId" validate:"required"`
	Type   string `json:"type" validate:"required,oneof=elder child"`
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age"`
}

// AdminRemoveFamilyMemberRequest removes a member from a target user's profile.
type AdminRemoveFamilyMemberRequest struct {
	UserID         string `json:"userId" validate:"required"`
	MemberID       string `json:"memberId" validate:"required"`
	IsFamilyMember bool   `json:"isFamilyMember"`
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Router /auth/all-users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}

	users, err := h.svc.ListUsers(c.Request().Context(), adminID)
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "", users)
}

// UpdateUser godoc
// @Summary Update a user as admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdminUpdateUserRequest true "User fields"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/admin-update-user [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), adminID, targetID, service.AdminUserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      req.Role,
	})
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "User updated successfully", user)
}

// AddFamilyMember godoc
// @Summary Add a family member to a user as admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdminFamilyMemberRequest true "Member data"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/admin-add-family-member [post]
func (h *AdminHandler) AddFamilyMember(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AdminFamilyMemberRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	users, err := h.svc.AddFamilyMember(c.Request().Context(), adminID, targetID, req.Name, req.Age, req.Type)
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Family member added successfully", users)
}

// RemoveFamilyMember godoc
// @Summary Remove a family member from a user as admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdminRemoveFamilyMemberRequest true "Member id"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/admin-remove-family-member [post]
func (h *AdminHandler) RemoveFamilyMember(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AdminRemoveFamilyMemberRequest
	if err := c.Bind(&req); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondBadRequest(c, "Missing required fields")
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return respondBadRequest(c, "Invalid member id")
	}

	users, err := h.svc.RemoveFamilyMember(c.Request().Context(), adminID, targetID, memberID, req.IsFamilyMember)
	if err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "Family member removed successfully", users)
}

// DeleteUser godoc
// @Summary Delete a user as admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Target user ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /auth/delete-user/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return respondBadRequest(c, "Invalid user id")
	}

	if err := h.svc.DeleteUser(c.Request().Context(), adminID, targetID); err != nil {
		return respondErr(c, err)
	}

	return respondOK(c, http.StatusOK, "User deleted successfully", nil)
}
