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

// ProfileUpdate carries the self-service mutable fields. Empty values keep
// the stored value (truthy-override merge, not a null-aware patch). Email
// is not part of the set; it is immutable after registration.
type ProfileUpdate struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// UserService handles profile and family/pet management.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*model.User, error)
	AddFamilyMember(ctx context.Context, userID uuid.UUID, name string, age int, memberType string) (*model.User, error)
	AddPet(ctx context.Context, userID uuid.UUID, name, petType string) (*model.User, error)
	RemoveFamilyMember(ctx context.Context, userID, memberID uuid.UUID, isFamilyMember bool) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile merges the provided fields over the stored record.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(user, update)

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func applyProfileUpdate(user *model.User, update ProfileUpdate) {
	override(&user.Username, update.Username)
	override(&user.FirstName, update.FirstName)
	override(&user.LastName, update.LastName)
	override(&user.Phone, update.Phone)
	override(&user.Address, update.Address)
}

// override keeps the stored value when the incoming one is empty.
func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (s *userService) AddFamilyMember(ctx context.Context, userID uuid.UUID, name string, age int, memberType string) (*model.User, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	member := &model.FamilyMember{
		UserID: userID,
		Name:   name,
		Age:    age,
		Type:   memberType,
	}
	if err := s.repo.AddFamilyMember(ctx, member); err != nil {
		return nil, fmt.Errorf("add family member: %w", err)
	}

	return s.GetUser(ctx, userID)
}

func (s *userService) AddPet(ctx context.Context, userID uuid.UUID, name, petType string) (*model.User, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	pet := &model.Pet{
		UserID: userID,
		Name:   name,
		Type:   petType,
	}
	if err := s.repo.AddPet(ctx, pet); err != nil {
		return nil, fmt.Errorf("add pet: %w", err)
	}

	return s.GetUser(ctx, userID)
}

// RemoveFamilyMember removes the entry from the family list, or the pet list
// when isFamilyMember is false. Removing an id that is not present succeeds
// without changing anything.
func (s *userService) RemoveFamilyMember(ctx context.Context, userID, memberID uuid.UUID, isFamilyMember bool) (*model.User, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	var err error
	if isFamilyMember {
		err = s.repo.RemoveFamilyMember(ctx, userID, memberID)
	} else {
		err = s.repo.RemovePet(ctx, userID, memberID)
	}
	if err != nil {
		return nil, fmt.Errorf("remove member: %w", err)
	}

	return s.GetUser(ctx, userID)
}
