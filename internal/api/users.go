package api

import (
	"context"
	"net/http"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// GetProfile fetches the full user record from the profile service.
func GetProfile(ctx context.Context, httpClient *http.Client, baseURL, userID string) (*types.ProfileResponse, error) {
	var out types.ProfileResponse
	if err := getJSON(ctx, httpClient, "get profile", baseURL+"/"+userID, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the user record and returns the server's
// canonical version of it.
func UpdateProfile(ctx context.Context, httpClient *http.Client, baseURL, userID string, req types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	var out types.ProfileResponse
	if err := postJSON(ctx, httpClient, "update profile", http.MethodPut, baseURL+"/"+userID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
