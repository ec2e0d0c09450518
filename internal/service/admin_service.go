package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
	"hhcc/internal/repository"
)

// AdminUserUpdate carries the admin-mutable fields of a user. Merge semantics
// match ProfileUpdate; Role is additionally mutable, email stays immutable
// even when supplied by the caller.
type AdminUserUpdate struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	Role      string
}

// AdminService handles privileged user management. The acting admin's
// identity comes from a verified session token; the role is still re-read
// from storage on every call.
type AdminService interface {
	ListUsers(ctx context.Context, adminID uuid.UUID) ([]model.User, error)
	UpdateUser(ctx context.Context, adminID, targetID uuid.UUID, update AdminUserUpdate) (*model.User, error)
	AddFamilyMember(ctx context.Context, adminID, targetID uuid.UUID, name string, age int, memberType string) ([]model.User, error)
	RemoveFamilyMember(ctx context.Context, adminID, targetID, memberID uuid.UUID, isFamilyMember bool) ([]model.User, error)
	DeleteUser(ctx context.Context, adminID, targetID uuid.UUID) error
}

type adminService struct {
	repo  repository.UserRepository
	users UserService
}

// NewAdminService creates a new admin service.
func NewAdminService(repo repository.UserRepository, users UserService) AdminService {
	return &adminService{repo: repo, users: users}
}

// authorize re-derives the caller's privileges per call.
func (s *adminService) authorize(ctx context.Context, adminID uuid.UUID) error {
	admin, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrAdminNotFound
		}
		return err
	}
	if admin.Role != model.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, adminID uuid.UUID) ([]model.User, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *adminService) UpdateUser(ctx context.Context, adminID, targetID uuid.UUID, update AdminUserUpdate) (*model.User, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	applyProfileUpdate(target, ProfileUpdate{
		Username:  update.Username,
		FirstName: update.FirstName,
		LastName:  update.LastName,
		Phone:     update.Phone,
		Address:   update.Address,
	})
	override(&target.Role, update.Role)

	if err := s.repo.Save(ctx, target); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return target, nil
}

// AddFamilyMember adds a member on behalf of the target user and returns the
// refreshed full user list for the dashboard.
func (s *adminService) AddFamilyMember(ctx context.Context, adminID, targetID uuid.UUID, name string, age int, memberType string) ([]model.User, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	if _, err := s.users.AddFamilyMember(ctx, targetID, name, age, memberType); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *adminService) RemoveFamilyMember(ctx context.Context, adminID, targetID, memberID uuid.UUID, isFamilyMember bool) ([]model.User, error) {
	if err := s.authorize(ctx, adminID); err != nil {
		return nil, err
	}
	if _, err := s.users.RemoveFamilyMember(ctx, targetID, memberID, isFamilyMember); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// DeleteUser removes the target unless it is the sole remaining admin.
// The admin count check and the delete run in one transaction so two
// concurrent deletes cannot strip the system of its last admin.
func (s *adminService) DeleteUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	if err := s.authorize(ctx, adminID); err != nil {
		return err
	}

	return s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.UserRepository) error {
		target, err := txRepo.FindByID(ctx, targetID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		if target.Role == model.RoleAdmin {
			admins, err := txRepo.CountAdmins(ctx)
			if err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if admins <= 1 {
				return apperrors.ErrLastAdmin
			}
		}

		return txRepo.Delete(ctx, targetID)
	})
}
