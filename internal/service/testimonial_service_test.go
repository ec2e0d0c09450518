package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
)

func TestNextTestimonialID(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected string
	}{
		{name: "empty store starts at t1", ids: nil, expected: "t1"},
		{name: "sequential", ids: []string{"t1", "t2"}, expected: "t3"},
		{name: "gap uses max", ids: []string{"t1", "t7", "t3"}, expected: "t8"},
		{name: "malformed ids ignored", ids: []string{"t1", "x9", "t", "t-2"}, expected: "t2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextTestimonialID(tt.ids))
		})
	}
}

func TestTestimonialService_Submit(t *testing.T) {
	mockRepo := new(MockTestimonialRepository)
	mockRepo.On("ListIDs", mock.Anything).Return([]string{"t1", "t2"}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).Return(nil)

	svc := NewTestimonialService(mockRepo)
	testimonial, err := svc.Submit(context.Background(), "Dana", "Parent", "Wonderful staff", 4)

	assert.NoError(t, err)
	assert.Equal(t, "t3", testimonial.ID)
	assert.Equal(t, 4, testimonial.Rating)
	assert.Equal(t, model.DefaultTestimonialImage, testimonial.Image)
}

func TestTestimonialService_Submit_DefaultRating(t *testing.T) {
	mockRepo := new(MockTestimonialRepository)
	mockRepo.On("ListIDs", mock.Anything).Return([]string{}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).Return(nil)

	svc := NewTestimonialService(mockRepo)
	testimonial, err := svc.Submit(context.Background(), "Dana", "Parent", "Great", 0)

	assert.NoError(t, err)
	assert.Equal(t, "t1", testimonial.ID)
	assert.Equal(t, 5, testimonial.Rating)
}

func TestTestimonialService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		role    string
		content string
		rating  int
	}{
		{name: "missing name", role: "Parent", content: "x", rating: 3},
		{name: "missing content", author: "Dana", role: "Parent", rating: 3},
		{name: "rating out of range", author: "Dana", role: "Parent", content: "x", rating: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTestimonialRepository)
			svc := NewTestimonialService(mockRepo)

			_, err := svc.Submit(context.Background(), tt.author, tt.role, tt.content, tt.rating)

			assert.ErrorIs(t, err, apperrors.ErrMissingFields)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestTestimonialService_List_DegradesToEmpty(t *testing.T) {
	mockRepo := new(MockTestimonialRepository)
	mockRepo.On("List", mock.Anything).Return(nil, errors.New("storage down"))

	svc := NewTestimonialService(mockRepo)
	testimonials, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, testimonials)
	assert.Empty(t, testimonials)
}
