package api

import (
	"context"

	"github.com/dmitrymomot/bookstore/core/session"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the change-password request body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CustomerSummary is the customer object embedded in auth responses.
type CustomerSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResponse is the body returned by login and register.
type AuthResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Token    string          `json:"token"`
	Customer CustomerSummary `json:"customer"`
}

// AuthAPI groups the /auth endpoints.
type AuthAPI struct{ c *Client }

// Auth returns the /auth endpoint group.
func (c *Client) Auth() AuthAPI { return AuthAPI{c} }

func (a AuthAPI) Login(ctx context.Context, creds Credentials) (*Response, error) {
	return a.c.post(ctx, "/auth/login", creds)
}

func (a AuthAPI) Register(ctx context.Context, user any) (*Response, error) {
	return a.c.post(ctx, "/auth/register", user)
}

func (a AuthAPI) Profile(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "/auth/profile", nil)
}

// Refresh asks the backend to reissue token.
func (a AuthAPI) Refresh(ctx context.Context, token string) (*Response, error) {
	return a.c.post(ctx, "/auth/refresh", map[string]string{"token": token})
}

// Validate asks the backend whether token is still accepted.
func (a AuthAPI) Validate(ctx context.Context, token string) (*Response, error) {
	return a.c.post(ctx, "/auth/validate", map[string]string{"token": token})
}

func (a AuthAPI) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*Response, error) {
	return a.c.post(ctx, "/auth/change-password", req)
}

func (a AuthAPI) Logout(ctx context.Context) (*Response, error) {
	return a.c.post(ctx, "/auth/logout", nil)
}

// LoginAndStore logs in and saves token, role and user id into the session.
func (a AuthAPI) LoginAndStore(ctx context.Context, creds Credentials) (session.Session, error) {
	resp, err := a.Login(ctx, creds)
	if err != nil {
		return session.Session{}, err
	}
	var body AuthResponse
	if err := resp.Decode(&body); err != nil {
		return session.Session{}, err
	}
	if body.Token == "" {
		return session.Session{}, ErrNoToken
	}
	sess := session.Session{
		Token:  body.Token,
		Role:   session.Role(body.Customer.Role),
		UserID: body.Customer.ID,
	}
	if err := a.c.sessions.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}
