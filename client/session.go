package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"bookify/models"
)

// ErrSessionClosed is returned from calls on a closed or invalidated
// session.
var ErrSessionClosed = errors.New("session closed")

// Session is an authenticated connection to the API. It is created by
// Login (or FromToken) and torn down by Close; a 401 from any call
// invalidates it, mirroring a logout.
type Session struct {
	client *Client

	mu    sync.Mutex
	token string
	user  models.UserResponse
}

// Login authenticates and returns a live session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var tok models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", models.UserLogin{
		Username: username,
		Password: password,
	}, &tok)
	if err != nil {
		return nil, err
	}

	s := &Session{client: c, token: tok.AccessToken}
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.user = *user
	return s, nil
}

// FromToken resumes a session from a stored token, validating it against
// the /me endpoint.
func (c *Client) FromToken(ctx context.Context, token string) (*Session, error) {
	s := &Session{client: c, token: token}
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.user = *user
	return s, nil
}

// User returns the account this session authenticated as.
func (s *Session) User() models.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Active reports whether the session still holds a credential.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Close discards the credential. Subsequent calls fail with
// ErrSessionClosed.
func (s *Session) Close() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// do runs one authenticated request. A 401 response tears the session down
// before surfacing the error.
func (s *Session) do(ctx context.Context, method, path string, body, out interface{}) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return ErrSessionClosed
	}

	err := s.client.do(ctx, method, path, token, body, out)
	if errors.Is(err, ErrUnauthorized) {
		s.Close()
	}
	return err
}

// Me fetches the current account.
func (s *Session) Me(ctx context.Context) (*models.UserResponse, error) {
	var out models.UserResponse
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
