package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"hhcc/internal/cache"
)

const (
	resetTokenKeyPrefix = "reset_token:"
	// ResetTokenTTL is the validity window for password reset tokens.
	ResetTokenTTL = 1 * time.Hour

	resetTokenBytes = 32 // 64 hex characters
)

// ResetToken is the server-side state of one password-reset flow.
// ExpiresAt duplicates the Redis TTL so expiry is enforced even against a
// store that did not honor the TTL.
type ResetToken struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ResetTokenStoreInterface defines the interface for reset token storage.
type ResetTokenStoreInterface interface {
	Issue(ctx context.Context, userID, email string) (token string, err error)
	Get(ctx context.Context, token string) (*ResetToken, error)
	Consume(ctx context.Context, token string) error
}

// ResetTokenStore keeps single-use password reset tokens in Redis with TTL.
type ResetTokenStore struct {
	cache *cache.Client
	now   func() time.Time
}

// Ensure ResetTokenStore implements ResetTokenStoreInterface
var _ ResetTokenStoreInterface = (*ResetTokenStore)(nil)

// NewResetTokenStore creates a new reset token store.
func NewResetTokenStore(cache *cache.Client) *ResetTokenStore {
	return &ResetTokenStore{cache: cache, now: time.Now}
}

// Issue generates a random token and stores it with the reset TTL.
func (s *ResetTokenStore) Issue(ctx context.Context, userID, email string) (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	payload, err := json.Marshal(ResetToken{
		UserID:    userID,
		Email:     email,
		ExpiresAt: s.now().Add(ResetTokenTTL),
	})
	if err != nil {
		return "", fmt.Errorf("marshal reset token: %w", err)
	}

	if err := s.cache.SetStrict(ctx, resetTokenKeyPrefix+token, payload, ResetTokenTTL); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// Get returns the token state, or nil if the token is unknown.
func (s *ResetTokenStore) Get(ctx context.Context, token string) (*ResetToken, error) {
	data, found, err := s.cache.GetStrict(ctx, resetTokenKeyPrefix+token)
	if err != nil {
		return nil, fmt.Errorf("load reset token: %w", err)
	}
	if !found {
		return nil, nil
	}

	var state ResetToken
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal reset token: %w", err)
	}
	return &state, nil
}

// Consume deletes the token, enforcing single use.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) error {
	return s.cache.DeleteStrict(ctx, resetTokenKeyPrefix+token)
}
