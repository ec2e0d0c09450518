package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hhcc/internal/model"
)

// ScheduleRepository defines schedule persistence operations.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// ListByUser returns a user's bookings newest-first by date.
func (r *scheduleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}
