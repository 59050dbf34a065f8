package api

import (
	"context"
	"net/http"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// CreatePayment charges the card and returns the payment identifier.
// Strictly single-attempt: once this call has been issued the money may
// have moved, so retrying could double-charge.
func CreatePayment(ctx context.Context, httpClient *http.Client, baseURL string, req types.PaymentRequest) (*types.PaymentResponse, error) {
	var out types.PaymentResponse
	if err := postJSON(ctx, httpClient, "create payment", http.MethodPost, baseURL, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
