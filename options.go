package saludya

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonatanlavado-utec/saludya-client/catalog"
	"github.com/jonatanlavado-utec/saludya-client/internal/tokenstore"
)

// defaultTypingDelay is the pause the assistant takes before answering a
// yes/no follow-up. Purely cosmetic; tests set it to zero.
const defaultTypingDelay = 600 * time.Millisecond

// Option configures a Client during construction in New.
//
// Options are applied before the bearer-token transport wrapper is
// installed, so transport-related options (like debug logging) sit
// underneath it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client. The bearer-token
// wrapper is still installed on top of its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithHTTPTimeout sets the http.Client Timeout used by the SDK.
//
// This is a coarse safety net bounding the total time spent on a single
// HTTP request; prefer per-request context deadlines for finer control.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the transport so each request/response is dumped
// through zerolog when enabled is true. Never enable in production; dumps
// include bearer tokens and card data.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debugLogging = enabled
		return nil
	}
}

// WithTokenStore replaces the persisted token store. Tests use the
// in-memory store; the default is the file store under ~/.saludya.
func WithTokenStore(s tokenstore.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("token store cannot be nil")
		}
		c.store = s
		return nil
	}
}

// WithCatalog replaces the doctor/specialty reference data.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Client) error {
		if cat == nil {
			return fmt.Errorf("catalog cannot be nil")
		}
		c.catalog = cat
		return nil
	}
}

// WithTypingDelay sets the assistant's cosmetic thinking pause before the
// yes/no follow-up branch. Zero is allowed and disables the pause.
func WithTypingDelay(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("typing delay must be >= 0")
		}
		c.typingDelay = d
		c.delaySet = true
		return nil
	}
}

// WithClassifier replaces the affirmative-intent classifier the dialogue
// uses on yes/no follow-ups. The default is the fixed keyword matcher.
func WithClassifier(cl Classifier) Option {
	return func(c *Client) error {
		if cl == nil {
			return fmt.Errorf("classifier cannot be nil")
		}
		c.classifier = cl
		c.classifierSet = true
		return nil
	}
}

// WithLogger sets the logger components record their state changes on.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithAuthURL overrides the identity-service base URL.
func WithAuthURL(u string) Option {
	return func(c *Client) error {
		c.urls.auth = u
		return nil
	}
}

// WithUsersURL overrides the profile-service base URL.
func WithUsersURL(u string) Option {
	return func(c *Client) error {
		c.urls.users = u
		return nil
	}
}

// WithAppointmentsURL overrides the appointment-service base URL.
func WithAppointmentsURL(u string) Option {
	return func(c *Client) error {
		c.urls.appointments = u
		return nil
	}
}

// WithPaymentsURL overrides the payment-service base URL.
func WithPaymentsURL(u string) Option {
	return func(c *Client) error {
		c.urls.payments = u
		return nil
	}
}

// WithOrientationURL overrides the symptom-orientation service base URL.
func WithOrientationURL(u string) Option {
	return func(c *Client) error {
		c.urls.orientation = u
		return nil
	}
}
