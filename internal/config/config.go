// Package config loads client configuration from the environment.
// All variables carry the SALUDYA_ prefix.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings the client and CLI need to reach the remote
// services. Per-service URLs default to paths under the reverse proxy;
// each can be overridden independently for local development.
type Config struct {
	// ProxyURL is the reverse-proxy base every service URL derives from.
	ProxyURL string `envconfig:"PROXY_URL" default:"http://localhost:8000"`

	// Explicit service URL overrides. Empty means "derive from ProxyURL".
	AuthURL        string `envconfig:"AUTH_URL" default:""`
	UsersURL       string `envconfig:"USERS_URL" default:""`
	AppointmentURL string `envconfig:"APPOINTMENT_URL" default:""`
	PaymentURL     string `envconfig:"PAYMENT_URL" default:""`
	OrientationURL string `envconfig:"AI_URL" default:""`

	// HTTPTimeout bounds a single HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from SALUDYA_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("saludya", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
