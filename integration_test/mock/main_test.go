package saludya_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	saludya "github.com/jonatanlavado-utec/saludya-client"
	"github.com/jonatanlavado-utec/saludya-client/internal/tokenstore"
)

// testEnv wires one stub server behind every service URL of a Client.
// Handlers are registered on mux under the proxy paths (/api/auth/...,
// /api/users/..., /api/appointments/..., /api/payments, /api/ai/orient).
type testEnv struct {
	t     *testing.T
	mux   *http.ServeMux
	srv   *httptest.Server
	store *tokenstore.MemStore
	c     *saludya.Client
}

func newTestEnv(t *testing.T, opts ...saludya.Option) *testEnv {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	store := tokenstore.NewMemStore()
	base := []saludya.Option{
		saludya.WithTokenStore(store),
		saludya.WithTypingDelay(0),
	}
	c, err := saludya.New(srv.URL, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &testEnv{t: t, mux: mux, srv: srv, store: store, c: c}
}

// stubAuth installs a login handler returning the given identity.
func (e *testEnv) stubAuth(id, email, token string) {
	e.mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + id + `","email":"` + email + `","token":"` + token + `"}`))
	})
}

// stubProfile installs a profile GET handler for userID.
func (e *testEnv) stubProfile(userID, body string) {
	e.mux.HandleFunc("/api/users/"+userID, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

// login establishes a session through stubbed auth and profile services.
func (e *testEnv) login(id, email, token string) {
	e.t.Helper()
	e.stubAuth(id, email, token)
	e.stubProfile(id, `{"id":"`+id+`","email":"`+email+`","first_name":"Eva","last_name":"Test","dni":"123","birth_date":"","phone":""}`)
	res := e.c.Session().Login(context.Background(), email, "pw")
	if !res.Success {
		e.t.Fatalf("login failed: %s", res.Error)
	}
}
