package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
	"hhcc/internal/repository"
)

// ScheduleInput carries the booking form fields.
type ScheduleInput struct {
	UserID      uuid.UUID
	MemberID    string
	MemberName  string
	MemberType  string
	Date        string
	DropOffTime string
	PickupTime  string
	Notes       string
	ProgramType string
}

// ScheduleService handles care bookings.
type ScheduleService interface {
	Create(ctx context.Context, input ScheduleInput) (*model.Schedule, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error)
}

type scheduleService struct {
	repo     repository.ScheduleRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(repo repository.ScheduleRepository, userRepo repository.UserRepository) ScheduleService {
	return &scheduleService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Create validates the booking and persists it with a timestamp-based id.
func (s *scheduleService) Create(ctx context.Context, input ScheduleInput) (*model.Schedule, error) {
	if input.MemberName == "" || input.MemberType == "" || input.Date == "" ||
		input.DropOffTime == "" || input.PickupTime == "" || input.ProgramType == "" {
		return nil, apperrors.ErrScheduleInvalid
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	schedule := &model.Schedule{
		ID:          fmt.Sprintf("sched_%d", s.now().UnixMilli()),
		UserID:      input.UserID,
		MemberID:    input.MemberID,
		MemberName:  input.MemberName,
		MemberType:  input.MemberType,
		Date:        input.Date,
		DropOffTime: input.DropOffTime,
		PickupTime:  input.PickupTime,
		Notes:       input.Notes,
		ProgramType: input.ProgramType,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}

// ListForUser returns the user's bookings newest-first by date.
func (s *scheduleService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error) {
	schedules, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return []model.Schedule{}, nil
	}
	if schedules == nil {
		schedules = []model.Schedule{}
	}
	return schedules, nil
}
