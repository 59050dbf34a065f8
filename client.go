// Package saludya is the client-side orchestration layer of the SaludYa
// patient application: session management against the identity and
// profile services, the pay-then-book transaction against the payment and
// appointment services, and the symptom-recommendation dialogue against
// the orientation service. Rendering, routing and the remote services
// themselves live elsewhere; this package owns the state, the ordering
// and the failure handling.
package saludya

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonatanlavado-utec/saludya-client/catalog"
	"github.com/jonatanlavado-utec/saludya-client/internal/tokenstore"
)

// serviceURLs holds the resolved base URL of every remote collaborator.
type serviceURLs struct {
	auth         string
	users        string
	appointments string
	payments     string
	orientation  string
}

// Client is the entry point of the SDK. It wires the four orchestration
// components over one shared HTTP client and token store.
type Client struct {
	httpClient *http.Client
	urls       serviceURLs
	store      tokenstore.Store
	catalog    *catalog.Catalog
	log        zerolog.Logger

	typingDelay   time.Duration
	classifier    Classifier
	debugLogging  bool
	delaySet      bool
	classifierSet bool

	session   *SessionManager
	ledger    *AppointmentLedger
	booking   *BookingOrchestrator
	assistant *Assistant
}

// New constructs a Client against the reverse proxy at baseURL. Service
// URLs derive from the proxy paths the deployment exposes; options can
// override each one.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("saludya: baseURL cannot be empty")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		urls: serviceURLs{
			auth:         baseURL + "/api/auth",
			users:        baseURL + "/api/users",
			appointments: baseURL + "/api/appointments",
			payments:     baseURL + "/api/payments",
			orientation:  baseURL + "/api/ai",
		},
		log: zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.store == nil {
		c.store = tokenstore.NewFileStore()
	}
	if c.catalog == nil {
		c.catalog = catalog.Default()
	}
	if !c.delaySet {
		c.typingDelay = defaultTypingDelay
	}
	if !c.classifierSet {
		c.classifier = NewKeywordClassifier()
	}
	if c.debugLogging {
		c.httpClient.Transport = &debugTransport{base: transportOrDefault(c.httpClient.Transport)}
	}

	c.session = newSessionManager(c)
	c.ledger = newAppointmentLedger(c)
	c.booking = newBookingOrchestrator(c)
	c.assistant = newAssistant(c)
	c.session.ledger = c.ledger

	// Attach the session token as a bearer credential on every request
	// once a session exists.
	c.httpClient.Transport = &bearerTransport{
		base:  transportOrDefault(c.httpClient.Transport),
		token: c.session.Token,
	}

	return c, nil
}

// Session returns the session manager.
func (c *Client) Session() *SessionManager { return c.session }

// Appointments returns the appointment ledger.
func (c *Client) Appointments() *AppointmentLedger { return c.ledger }

// Booking returns the booking orchestrator.
func (c *Client) Booking() *BookingOrchestrator { return c.booking }

// Assistant returns the recommendation dialogue.
func (c *Client) Assistant() *Assistant { return c.assistant }

// Catalog returns the doctor/specialty reference data.
func (c *Client) Catalog() *catalog.Catalog { return c.catalog }

func transportOrDefault(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}
	return rt
}

// bearerTransport injects the current session token into outgoing
// requests. Requests that already carry an Authorization header (the
// restore-time identity check passes the candidate token explicitly) are
// left untouched.
type bearerTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok := t.token()
	if tok == "" || req.Header.Get("Authorization") != "" {
		return t.base.RoundTrip(req)
	}
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return t.base.RoundTrip(cloned)
}

func newMessageID() string { return uuid.NewString() }
