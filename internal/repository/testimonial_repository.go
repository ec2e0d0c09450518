package repository

import (
	"context"

	"gorm.io/gorm"

	"hhcc/internal/model"
)

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	ListIDs(ctx context.Context) ([]string, error)
	Create(ctx context.Context, testimonial *model.Testimonial) error
	Upsert(ctx context.Context, testimonial *model.Testimonial) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).Order("created_at").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) Upsert(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}
