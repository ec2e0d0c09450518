package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hhcc/internal/auth"
	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
)

func TestPasswordResetService_Forgot(t *testing.T) {
	t.Run("unknown email still succeeds without a token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
		mockStore := new(MockResetTokenStore)

		svc := NewPasswordResetService(mockRepo, mockStore)
		token, err := svc.Forgot(context.Background(), "nobody@x.com")

		assert.NoError(t, err)
		assert.Empty(t, token)
		mockStore.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("known email yields a token", func(t *testing.T) {
		userID := uuid.New()
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: userID, Email: "a@x.com"}, nil)
		mockStore := new(MockResetTokenStore)
		mockStore.On("Issue", mock.Anything, userID.String(), "a@x.com").Return("tok-123", nil)

		svc := NewPasswordResetService(mockRepo, mockStore)
		token, err := svc.Forgot(context.Background(), "a@x.com")

		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token)
		mockStore.AssertExpectations(t)
	})
}

func TestPasswordResetService_Verify(t *testing.T) {
	live := &auth.ResetToken{
		UserID:    uuid.NewString(),
		Email:     "a@x.com",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	tests := []struct {
		name          string
		email         string
		token         string
		setupMock     func(*MockResetTokenStore)
		expectedError error
	}{
		{
			name:  "live token verifies",
			email: "a@x.com",
			token: "tok-123",
			setupMock: func(m *MockResetTokenStore) {
				m.On("Get", mock.Anything, "tok-123").Return(live, nil)
			},
		},
		{
			name:  "unknown token rejected",
			email: "a@x.com",
			token: "tok-unknown",
			setupMock: func(m *MockResetTokenStore) {
				m.On("Get", mock.Anything, "tok-unknown").Return(nil, nil)
			},
			expectedError: apperrors.ErrInvalidResetToken,
		},
		{
			name:  "email mismatch rejected",
			email: "other@x.com",
			token: "tok-123",
			setupMock: func(m *MockResetTokenStore) {
				m.On("Get", mock.Anything, "tok-123").Return(live, nil)
			},
			expectedError: apperrors.ErrInvalidResetToken,
		},
		{
			name:  "expired token rejected",
			email: "a@x.com",
			token: "tok-old",
			setupMock: func(m *MockResetTokenStore) {
				m.On("Get", mock.Anything, "tok-old").Return(&auth.ResetToken{
					Email:     "a@x.com",
					ExpiresAt: time.Now().Add(-61 * time.Minute),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidResetToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(MockResetTokenStore)
			tt.setupMock(mockStore)

			svc := NewPasswordResetService(new(MockUserRepository), mockStore)
			err := svc.Verify(context.Background(), tt.email, tt.token)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordResetService_Reset(t *testing.T) {
	t.Run("successful reset consumes the token", func(t *testing.T) {
		user := &model.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "old-hash"}
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)
		mockRepo.On("Save", mock.Anything, user).Return(nil)

		mockStore := new(MockResetTokenStore)
		mockStore.On("Get", mock.Anything, "tok-123").Return(&auth.ResetToken{
			UserID:    user.ID.String(),
			Email:     "a@x.com",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)
		mockStore.On("Consume", mock.Anything, "tok-123").Return(nil)

		svc := NewPasswordResetService(mockRepo, mockStore)
		err := svc.Reset(context.Background(), "a@x.com", "new-password", "tok-123")

		assert.NoError(t, err)
		assert.NotEqual(t, "old-hash", user.PasswordHash)
		assert.NotEqual(t, "new-password", user.PasswordHash)
		mockStore.AssertCalled(t, "Consume", mock.Anything, "tok-123")
	})

	t.Run("consumed token cannot be reused", func(t *testing.T) {
		mockStore := new(MockResetTokenStore)
		// After consumption the store no longer knows the token.
		mockStore.On("Get", mock.Anything, "tok-123").Return(nil, nil)

		svc := NewPasswordResetService(new(MockUserRepository), mockStore)
		err := svc.Reset(context.Background(), "a@x.com", "another-password", "tok-123")

		assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		mockStore := new(MockResetTokenStore)
		mockStore.On("Get", mock.Anything, "tok-old").Return(&auth.ResetToken{
			Email:     "a@x.com",
			ExpiresAt: time.Now().Add(-2 * time.Hour),
		}, nil)

		svc := NewPasswordResetService(new(MockUserRepository), mockStore)
		err := svc.Reset(context.Background(), "a@x.com", "new-password", "tok-old")

		assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
	})

	t.Run("vanished user yields not found even with a live token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "gone@x.com").Return(nil, gorm.ErrRecordNotFound)

		mockStore := new(MockResetTokenStore)
		mockStore.On("Get", mock.Anything, "tok-123").Return(&auth.ResetToken{
			Email:     "gone@x.com",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)

		svc := NewPasswordResetService(mockRepo, mockStore)
		err := svc.Reset(context.Background(), "gone@x.com", "new-password", "tok-123")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		mockStore.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})
}
