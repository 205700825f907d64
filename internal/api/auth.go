package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token. Failures carry the
// server's structured detail message when one is present ("Invalid
// credentials" maps to a friendlier text); an unparsable error body falls
// back to the status-derived message.
func (c *Client) Login(ctx context.Context, login, password string) (string, error) {
	var resp LoginResponse
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login", LoginRequest{Login: login, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Register creates a new user account and returns the created profile.
// Duplicate login/email rejections surface as KindValidation with the
// corresponding message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	var dto UserDTO
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}
