package supabase

import (
	"context"
	"net/http"
	"time"

	"github.com/zoltlabs/articlaw"
)

// Ensure TokenService implements articlaw.TokenService at compile time.
var _ articlaw.TokenService = (*TokenService)(nil)

// TokenService implements the auth collaborator over the Supabase auth
// endpoints.
type TokenService struct {
	client *Client
}

// NewTokenService creates a TokenService backed by the given client.
func NewTokenService(client *Client) *TokenService {
	return &TokenService{client: client}
}

// tokenResponse is the shape of both grant responses.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
}

func (r *tokenResponse) session() *articlaw.Session {
	expiresAt := r.ExpiresAt
	if expiresAt == 0 && r.ExpiresIn > 0 {
		expiresAt = time.Now().Unix() + r.ExpiresIn
	}
	return &articlaw.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    expiresAt,
	}
}

// PasswordGrant exchanges credentials for a session.
func (s *TokenService) PasswordGrant(ctx context.Context, email, password string) (*articlaw.Session, error) {
	var resp tokenResponse
	status, err := s.client.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", nil,
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "invalid email or password")
		}
		return nil, err
	}
	return resp.session(), nil
}

// Refresh exchanges a refresh token for a new session.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*articlaw.Session, error) {
	var resp tokenResponse
	status, err := s.client.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "", nil,
		map[string]string{"refresh_token": refreshToken}, &resp)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "session expired, please log in again")
		}
		return nil, err
	}
	return resp.session(), nil
}

// User validates an access token and returns the account it belongs to.
func (s *TokenService) User(ctx context.Context, accessToken string) (*articlaw.User, error) {
	if accessToken == "" {
		return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "missing auth token")
	}

	var user articlaw.User
	status, err := s.client.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, nil, &user)
	if err != nil {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "invalid token")
		}
		return nil, err
	}
	if user.ID == "" {
		return nil, articlaw.Errorf(articlaw.EUNAUTHORIZED, "invalid token")
	}
	return &user, nil
}
