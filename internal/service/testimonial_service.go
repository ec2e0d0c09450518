package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
	"hhcc/internal/repository"
)

const defaultRating = 5

// TestimonialService handles public testimonial listing and submission.
type TestimonialService interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Submit(ctx context.Context, name, role, content string, rating int) (*model.Testimonial, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
	// Serializes id assignment: two concurrent submissions must not both
	// scan the same max sequence.
	mu sync.Mutex
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{repo: repo}
}

// List returns all testimonials. Storage failures degrade to an empty list
// so the public page never errors out.
func (s *testimonialService) List(ctx context.Context) ([]model.Testimonial, error) {
	testimonials, err := s.repo.List(ctx)
	if err != nil {
		return []model.Testimonial{}, nil
	}
	if testimonials == nil {
		testimonials = []model.Testimonial{}
	}
	return testimonials, nil
}

// Submit stores a new testimonial with the next sequential id.
func (s *testimonialService) Submit(ctx context.Context, name, role, content string, rating int) (*model.Testimonial, error) {
	if name == "" || role == "" || content == "" {
		return nil, apperrors.ErrMissingFields
	}
	if rating == 0 {
		rating = defaultRating
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonial ids: %w", err)
	}

	testimonial := &model.Testimonial{
		ID:      nextTestimonialID(ids),
		Name:    name,
		Role:    role,
		Content: content,
		Rating:  rating,
		Image:   model.DefaultTestimonialImage,
	}

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return testimonial, nil
}

// nextTestimonialID scans existing "t<n>" ids and returns "t<max+1>",
// starting at "t1" for an empty store. Ids that don't match the pattern
// are ignored.
func nextTestimonialID(ids []string) string {
	max := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, "t")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("t%d", max+1)
}
