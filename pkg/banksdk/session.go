package banksdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session performs requests with a fixed bearer token.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
}

// NewSession wraps an existing token. A zero ttl means the expiry is unknown.
func (c *Client) NewSession(token string, ttl time.Duration) *Session {
	s := &Session{client: c, token: token}
	if ttl > 0 {
		s.expiresAt = time.Now().Add(ttl)
	}
	return s
}

// AccessToken returns the bearer token.
func (s *Session) AccessToken() string { return s.token }

// Expired reports whether the token lifetime announced at login has passed.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt)
}

// Me returns the authenticated user.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/me", s.token, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateCard stores a card for the authenticated user.
func (s *Session) CreateCard(ctx context.Context, req CreateCardRequest) (*CardResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/v1/cards", s.token, req)
	if err != nil {
		return nil, err
	}

	var card CardResponse
	if err := decodeJSON(resp, &card, http.StatusCreated); err != nil {
		return nil, err
	}
	return &card, nil
}

// ListCards returns the authenticated user's cards.
func (s *Session) ListCards(ctx context.Context) ([]CardResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/cards", s.token, nil)
	if err != nil {
		return nil, err
	}

	var list CardListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Cards, nil
}

// GetCard returns one of the authenticated user's cards.
func (s *Session) GetCard(ctx context.Context, id string) (*CardResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/cards/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return nil, err
	}

	var card CardResponse
	if err := decodeJSON(resp, &card, http.StatusOK); err != nil {
		return nil, err
	}
	return &card, nil
}

// LockUser locks a user account. Requires ROLE_ADMIN.
func (s *Session) LockUser(ctx context.Context, userID string) error {
	return s.setLocked(ctx, userID, "lock")
}

// UnlockUser unlocks a user account. Requires ROLE_ADMIN.
func (s *Session) UnlockUser(ctx context.Context, userID string) error {
	return s.setLocked(ctx, userID, "unlock")
}

func (s *Session) setLocked(ctx context.Context, userID, action string) error {
	path := "/v1/users/" + url.PathEscape(userID) + "/" + action
	resp, err := s.client.doRequest(ctx, http.MethodPost, path, s.token, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
