package api

import (
	"context"
	"net/http"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// Login exchanges credentials for a session token.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := postJSON(ctx, httpClient, "login", http.MethodPost, baseURL+"/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns a session token for it.
func Register(ctx context.Context, httpClient *http.Client, baseURL string, req types.RegisterRequest) (*types.AuthResponse, error) {
	var out types.AuthResponse
	if err := postJSON(ctx, httpClient, "register", http.MethodPost, baseURL+"/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me validates token against the identity service and returns the
// identity it belongs to. Used by session restore, so the token is passed
// explicitly rather than taken from an established session.
func Me(ctx context.Context, httpClient *http.Client, baseURL, token string) (*types.MeResponse, error) {
	var out types.MeResponse
	if err := getJSON(ctx, httpClient, "me", baseURL+"/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
