package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCategoryForStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCategory
	}{
		{400, Irrecoverable},
		{401, Irrecoverable},
		{404, Irrecoverable},
		{408, Recoverable},
		{422, Irrecoverable},
		{429, Recoverable},
		{500, Recoverable},
		{503, Recoverable},
	}
	for _, tc := range cases {
		if got := categoryForStatus(tc.status); got != tc.want {
			t.Errorf("status %d: got %s, want %s", tc.status, got, tc.want)
		}
	}
}

func TestExtractDetail(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"Credenciales inválidas"}`, "Credenciales inválidas"},
		{"structured detail", `{"detail":[{"msg":"campo requerido"},{"msg":"otro"}]}`, "campo requerido"},
		{"empty list", `{"detail":[]}`, ""},
		{"no detail field", `{"error":"boom"}`, ""},
		{"not json", `<html>502</html>`, ""},
		{"empty body", ``, ""},
		{"numeric detail", `{"detail":42}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractDetail([]byte(tc.body)); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRemoteError_Message(t *testing.T) {
	err := NewRemoteError("login", 401, []byte(`{"detail":"nope"}`))
	if err.Detail != "nope" || err.Category != Irrecoverable {
		t.Fatalf("unexpected error %+v", err)
	}
	if got := err.Error(); got != "[Irrecoverable] login: HTTP 401: nope" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsRemote_ThroughWrapping(t *testing.T) {
	inner := NewRemoteError("payment", 402, nil)
	wrapped := fmt.Errorf("process payment: %w", inner)

	if got := AsRemote(wrapped); got != inner {
		t.Fatalf("AsRemote must unwrap, got %v", got)
	}
	if AsRemote(stderrors.New("plain")) != nil {
		t.Fatalf("plain errors are not remote")
	}
}

func TestIsNetwork(t *testing.T) {
	ne := NewNetworkError("me", stderrors.New("connection refused"))
	if !IsNetwork(fmt.Errorf("restore: %w", ne)) {
		t.Fatalf("wrapped network error must be detected")
	}
	if IsNetwork(NewRemoteError("me", 500, nil)) {
		t.Fatalf("remote errors are not network errors")
	}
	if !stderrors.Is(stderrors.Unwrap(ne), ne.Underlying) {
		t.Fatalf("NetworkError must unwrap to the transport error")
	}
}

func TestIsIrrecoverable(t *testing.T) {
	if !IsIrrecoverable(NewRemoteError("login", 401, nil)) {
		t.Fatalf("401 must be irrecoverable")
	}
	if IsIrrecoverable(NewRemoteError("me", 503, nil)) {
		t.Fatalf("503 must be retryable")
	}
	if IsIrrecoverable(NewNetworkError("me", stderrors.New("timeout"))) {
		t.Fatalf("network errors must be retryable")
	}
}
