package saludya

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/jonatanlavado-utec/saludya-client/internal/api"
	"github.com/jonatanlavado-utec/saludya-client/internal/tokenstore"
	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// SessionManager owns the authenticated session: the bearer token, the
// resolved user, and the startup restore flow. It is the only writer of
// the persisted token.
type SessionManager struct {
	httpClient *http.Client
	urls       serviceURLs
	store      tokenstore.Store
	ledger     *AppointmentLedger
	log        clientLogger

	mu       sync.RWMutex
	token    string
	user     *types.User
	restored bool
}

func newSessionManager(c *Client) *SessionManager {
	return &SessionManager{
		httpClient: c.httpClient,
		urls:       c.urls,
		store:      c.store,
		log:        clientLogger{c.log},
	}
}

// Token returns the current session token, or "" when unauthenticated.
func (s *SessionManager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user. ok is false when no session is
// active.
func (s *SessionManager) User() (types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return types.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether both a validated token and a user are
// present.
func (s *SessionManager) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Restored reports whether the startup restore sequence has finished. It
// becomes true exactly once and never reverts; callers gate navigation to
// authenticated screens on it.
func (s *SessionManager) Restored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restored
}

// Restore runs the startup session-restore sequence: load the persisted
// token, validate it against the identity service, resolve the profile
// and prime the appointment ledger. Every outcome, including every
// failure, finishes with Restored() == true; any ambiguity resolves to
// "not authenticated". Idempotent: subsequent calls return immediately.
func (s *SessionManager) Restore(ctx context.Context) {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.restored = true
		s.mu.Unlock()
	}()

	token, err := s.store.Load()
	if err != nil || token == "" {
		return
	}

	me, err := api.Me(ctx, s.httpClient, s.urls.auth, token)
	if err != nil {
		// Expired, invalid, or unreachable: all resolve to logged-out.
		_ = s.store.Clear()
		s.log.warnErr(err, "session restore failed, discarding stored token")
		return
	}

	user := s.resolveProfile(ctx, me.ID, me.Email, nil)
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	// Best effort: an empty ledger is fine, a broken restore is not.
	if err := s.ledger.Refresh(ctx); err != nil {
		s.log.warnErr(err, "could not prime appointment ledger during restore")
	}
}

// Login authenticates against the identity service and establishes a
// session. The token is persisted so the next startup can restore it.
func (s *SessionManager) Login(ctx context.Context, email, password string) Result {
	resp, err := api.Login(ctx, s.httpClient, s.urls.auth, types.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		loginsTotal.WithLabelValues(outcomeFailure).Inc()
		return fail(failureMessage(err, msgNoConnection,
			map[int]string{http.StatusUnauthorized: msgInvalidCredentials}, msgLoginFailed))
	}

	user := s.resolveProfile(ctx, resp.ID, resp.Email, nil)
	s.establish(resp.Token, user)
	loginsTotal.WithLabelValues(outcomeSuccess).Inc()
	return ok()
}

// Register validates the input locally, creates the account, and
// establishes a session exactly like Login. Validation failures
// short-circuit before any network call.
func (s *SessionManager) Register(ctx context.Context, userData types.User, password string) Result {
	if err := types.ValidateRegister(userData); err != nil {
		registrationsTotal.WithLabelValues(outcomeFailure).Inc()
		return fail(failureMessage(err, msgNoConnection, nil, msgRegisterFailed))
	}

	req := types.RegisterRequest{
		Email:     strings.TrimSpace(userData.Email),
		Password:  password,
		FirstName: strings.TrimSpace(userData.FirstName),
		LastName:  strings.TrimSpace(userData.LastName),
		DNI:       strings.TrimSpace(userData.DNI),
		Phone:     optionalField(userData.Phone),
	}
	if bd := strings.TrimSpace(userData.BirthDate); bd != "" {
		req.BirthDate = &bd
	}

	resp, err := api.Register(ctx, s.httpClient, s.urls.auth, req)
	if err != nil {
		registrationsTotal.WithLabelValues(outcomeFailure).Inc()
		return fail(failureMessage(err, msgNoConnection,
			map[int]string{http.StatusBadRequest: msgRegisterFailed}, msgServerError))
	}

	user := s.resolveProfile(ctx, resp.ID, resp.Email, &userData)
	s.establish(resp.Token, user)
	registrationsTotal.WithLabelValues(outcomeSuccess).Inc()
	return ok()
}

// Logout clears the in-memory session and removes the persisted token.
// Synchronous; cannot fail from the caller's point of view.
func (s *SessionManager) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Clear(); err != nil {
		s.log.warnErr(err, "could not remove persisted token")
	}
	s.ledger.clear()
}

// UpdateProfile sends the changed fields to the profile service; fields
// the caller leaves empty keep the current user's values. On success the
// user is replaced with the server's echoed canonical record, never with
// the client-supplied values.
//
// A blank BirthDate is indistinguishable from an absent one, so the
// field is omitted from the request and a stored birth date cannot be
// cleared through this method. A blank Phone, by contrast, is sent as
// null and does clear the stored value.
func (s *SessionManager) UpdateProfile(ctx context.Context, userData types.User) Result {
	current, okUser := s.User()
	if !okUser {
		return fail(msgNoSession)
	}

	req := types.UpdateProfileRequest{
		FirstName: firstNonEmpty(strings.TrimSpace(userData.FirstName), current.FirstName),
		LastName:  firstNonEmpty(strings.TrimSpace(userData.LastName), current.LastName),
		DNI:       firstNonEmpty(strings.TrimSpace(userData.DNI), current.DNI),
		Email:     firstNonEmpty(strings.TrimSpace(userData.Email), current.Email),
		Phone:     optionalField(userData.Phone),
	}
	if bd := strings.TrimSpace(userData.BirthDate); bd != "" {
		req.BirthDate = &bd
	}

	resp, err := api.UpdateProfile(ctx, s.httpClient, s.urls.users, current.ID, req)
	if err != nil {
		return fail(failureMessage(err, msgNoServerConnection,
			map[int]string{http.StatusBadRequest: msgUpdateFailed}, msgServerError))
	}

	// Server echo wins over whatever we sent; missing fields keep the
	// previous values.
	updated := types.User{
		ID:        current.ID,
		Email:     firstNonEmpty(resp.Email, current.Email),
		FirstName: firstNonEmpty(resp.FirstName, current.FirstName),
		LastName:  firstNonEmpty(resp.LastName, current.LastName),
		DNI:       firstNonEmpty(resp.DNI, current.DNI),
		BirthDate: firstNonEmpty(resp.BirthDate, current.BirthDate),
		Phone:     firstNonEmpty(resp.Phone, current.Phone),
	}
	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	return ok()
}

// establish installs a fresh session and persists its token.
func (s *SessionManager) establish(token string, user types.User) {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	if token != "" {
		if err := s.store.Save(token); err != nil {
			s.log.warnErr(err, "could not persist session token")
		}
	}
}

// resolveProfile fetches the rich profile for (id, email); when the
// profile service cannot answer, it synthesizes a minimal user so the
// session can still be established. extra, when non-nil, supplies
// locally-known fields for the minimal case (registration input).
func (s *SessionManager) resolveProfile(ctx context.Context, id, email string, extra *types.User) types.User {
	profile, err := api.GetProfile(ctx, s.httpClient, s.urls.users, id)
	if err == nil {
		return profile.User()
	}
	s.log.warnErr(err, "profile unavailable, using minimal user")

	user := types.User{ID: id, Email: email}
	if extra != nil {
		user.FirstName = strings.TrimSpace(extra.FirstName)
		user.LastName = strings.TrimSpace(extra.LastName)
		user.DNI = strings.TrimSpace(extra.DNI)
		user.BirthDate = strings.TrimSpace(extra.BirthDate)
		user.Phone = strings.TrimSpace(extra.Phone)
	}
	return user
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// optionalField trims v and normalizes blank to absent, so the services
// receive null rather than "".
func optionalField(v string) *string {
	t := strings.TrimSpace(v)
	if t == "" {
		return nil
	}
	return &t
}
