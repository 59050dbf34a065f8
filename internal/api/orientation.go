package api

import (
	"context"
	"net/http"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// Orient sends free-text symptoms to the orientation service and returns
// its specialty recommendation.
func Orient(ctx context.Context, httpClient *http.Client, baseURL string, req types.OrientationRequest) (*types.OrientationResponse, error) {
	var out types.OrientationResponse
	if err := postJSON(ctx, httpClient, "orient", http.MethodPost, baseURL+"/orient", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
