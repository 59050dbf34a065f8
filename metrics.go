package saludya

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saludya_client",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saludya_client",
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		},
		[]string{"outcome"},
	)

	paymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saludya_client",
			Name:      "payments_total",
			Help:      "Payment charges by outcome.",
		},
		[]string{"outcome"},
	)

	bookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saludya_client",
			Name:      "bookings_total",
			Help:      "Appointment creations by outcome.",
		},
		[]string{"outcome"},
	)

	orientationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saludya_client",
			Name:      "orientation_requests_total",
			Help:      "Symptom orientation calls by outcome.",
		},
		[]string{"outcome"},
	)
)
