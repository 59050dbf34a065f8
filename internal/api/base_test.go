package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	cerr "github.com/jonatanlavado-utec/saludya-client/internal/errors"
)

func TestGetJSON_RetriesRecoverableFailures(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":"42"}`))
	}))
	defer srv.Close()

	var out struct {
		ID string `json:"id"`
	}
	err := getJSON(context.Background(), srv.Client(), "me", srv.URL, "", &out)
	if err != nil {
		t.Fatalf("getJSON: %v", err)
	}
	if out.ID != "42" {
		t.Fatalf("unexpected body %+v", out)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestGetJSON_DoesNotRetryDefinitiveAnswers(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := getJSON(context.Background(), srv.Client(), "me", srv.URL, "stale", nil)
	re := cerr.AsRemote(err)
	if re == nil || re.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected a 401 remote error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("401 must not be retried, saw %d attempts", got)
	}
}

func TestGetJSON_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := getJSON(context.Background(), srv.Client(), "profile", srv.URL, "", nil)
	if cerr.AsRemote(err) == nil {
		t.Fatalf("expected a remote error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected initial attempt plus 2 retries, got %d", got)
	}
}

func TestGetJSON_SendsBearer(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if err := getJSON(context.Background(), srv.Client(), "me", srv.URL, "tok", nil); err != nil {
		t.Fatalf("getJSON: %v", err)
	}
}

func TestPostJSON_SingleAttempt(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := postJSON(context.Background(), srv.Client(), "payment", http.MethodPost, srv.URL, map[string]string{}, nil)
	if cerr.AsRemote(err) == nil {
		t.Fatalf("expected a remote error, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("writes must not be retried, saw %d attempts", got)
	}
}

func TestSend_DetailPropagates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Tarjeta rechazada"}`))
	}))
	defer srv.Close()

	err := postJSON(context.Background(), srv.Client(), "payment", http.MethodPost, srv.URL, nil, nil)
	re := cerr.AsRemote(err)
	if re == nil || re.Detail != "Tarjeta rechazada" {
		t.Fatalf("detail must survive classification, got %v", err)
	}
}

func TestSend_DecodeFailureIsConnectivity(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var out struct{}
	err := getJSON(context.Background(), srv.Client(), "me", srv.URL, "", &out)
	if !cerr.IsNetwork(err) {
		t.Fatalf("undecodable success body must classify as connectivity, got %v", err)
	}
}
