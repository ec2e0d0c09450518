package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hhcc/internal/auth"
	apperrors "hhcc/internal/errors"
	"hhcc/internal/repository"
)

// PasswordResetService drives the three-step reset flow:
// Forgot (issue token) → Verify (token liveness) → Reset (consume token).
type PasswordResetService interface {
	Forgot(ctx context.Context, email string) (token string, err error)
	Verify(ctx context.Context, email, token string) error
	Reset(ctx context.Context, email, newPassword, token string) error
}

type passwordResetService struct {
	userRepo   repository.UserRepository
	resetStore auth.ResetTokenStoreInterface
	now        func() time.Time
}

// NewPasswordResetService creates a new password reset service.
func NewPasswordResetService(userRepo repository.UserRepository, resetStore auth.ResetTokenStoreInterface) PasswordResetService {
	return &passwordResetService{
		userRepo:   userRepo,
		resetStore: resetStore,
		now:        time.Now,
	}
}

// Forgot issues a reset token for a known email. For an unknown email it
// returns an empty token and no error, so callers cannot probe which
// addresses are registered.
func (s *passwordResetService) Forgot(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil
	}

	token, err := s.resetStore.Issue(ctx, user.ID.String(), user.Email)
	if err != nil {
		return "", fmt.Errorf("issue reset token: %w", err)
	}
	return token, nil
}

// Verify checks that the token exists, belongs to the email and has not
// expired. The human-verification puzzle shown between these steps is
// checked on the client; the server only vouches for token liveness here.
func (s *passwordResetService) Verify(ctx context.Context, email, token string) error {
	_, err := s.liveToken(ctx, email, token)
	return err
}

// Reset re-validates the token, overwrites the password hash and consumes
// the token so it cannot be replayed.
func (s *passwordResetService) Reset(ctx context.Context, email, newPassword, token string) error {
	if _, err := s.liveToken(ctx, email, token); err != nil {
		return err
	}

	// The token may outlive its user; resolve the account by email again.
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	if err := s.resetStore.Consume(ctx, token); err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}
	return nil
}

func (s *passwordResetService) liveToken(ctx context.Context, email, token string) (*auth.ResetToken, error) {
	if token == "" || email == "" {
		return nil, apperrors.ErrInvalidResetToken
	}

	state, err := s.resetStore.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("load reset token: %w", err)
	}
	if state == nil || state.Email != email {
		return nil, apperrors.ErrInvalidResetToken
	}
	if s.now().After(state.ExpiresAt) {
		return nil, apperrors.ErrInvalidResetToken
	}
	return state, nil
}
