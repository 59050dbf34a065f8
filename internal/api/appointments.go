package api

import (
	"context"
	"net/http"

	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// ListAppointments fetches every appointment record for a user.
func ListAppointments(ctx context.Context, httpClient *http.Client, baseURL, userID string) ([]types.AppointmentRecord, error) {
	var out []types.AppointmentRecord
	if err := getJSON(ctx, httpClient, "list appointments", baseURL+"/user/"+userID, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment submits a new appointment. The server assigns the id;
// callers must not consider the appointment to exist until this returns
// successfully.
func CreateAppointment(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateAppointmentRequest) (*types.CreateAppointmentResponse, error) {
	var out types.CreateAppointmentResponse
	if err := postJSON(ctx, httpClient, "create appointment", http.MethodPost, baseURL, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
