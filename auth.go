package articlaw

import (
	"context"
	"time"
)

// Session holds the credentials issued by the auth collaborator.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the access token expiry as a Unix timestamp.
	ExpiresAt int64 `json:"expires_at"`
}

// NearExpiry reports whether the access token expires within the leeway
// window. Sessions without a recorded expiry are never considered near
// expiry.
func (s *Session) NearExpiry(leeway time.Duration) bool {
	if s.ExpiresAt == 0 {
		return false
	}
	return time.Now().After(time.Unix(s.ExpiresAt, 0).Add(-leeway))
}

// User identifies an authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenService represents the external auth collaborator.
type TokenService interface {
	// PasswordGrant exchanges credentials for a session.
	// Returns EUNAUTHORIZED on rejected credentials.
	PasswordGrant(ctx context.Context, email, password string) (*Session, error)

	// Refresh exchanges a refresh token for a new session.
	// Returns EUNAUTHORIZED when the refresh token is no longer valid.
	Refresh(ctx context.Context, refreshToken string) (*Session, error)

	// User validates an access token and returns the account it belongs to.
	// Returns EUNAUTHORIZED for missing, invalid or expired tokens.
	User(ctx context.Context, accessToken string) (*User, error)
}
