// Package api contains the request builders for the remote SaludYa
// services. Functions are plain and stateless: they take a context, an
// *http.Client and the service base URL, and return typed responses or
// classified errors (internal/errors). Any 2xx response is success; every
// other status is a business failure carrying the server "detail" when
// present; transport and decode failures are connectivity failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	cerr "github.com/jonatanlavado-utec/saludya-client/internal/errors"
)

// send issues one request and decodes the response into out (when out is
// non-nil). It never retries; retry policy lives in getJSON.
func send(op string, httpClient *http.Client, req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return cerr.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.NewNetworkError(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return cerr.NewRemoteError(op, resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return cerr.NewNetworkError(op, err)
	}
	return nil
}

// postJSON marshals in and POSTs (or PUTs) it to url. Single attempt:
// writes are never retried, partial failure is the caller's problem to
// report, not ours to mask.
func postJSON(ctx context.Context, httpClient *http.Client, op, method, url string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return send(op, httpClient, req, out)
}

// getJSON GETs url and decodes into out, retrying briefly on recoverable
// failures. GETs are idempotent so a transient 5xx or connection reset is
// worth a second look; 4xx answers are definitive and returned as-is.
func getJSON(ctx context.Context, httpClient *http.Client, op, url, bearer string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		if err := send(op, httpClient, req, out); err != nil {
			if cerr.IsIrrecoverable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}
	return backoff.Retry(attempt, getRetryPolicy(ctx))
}

func getRetryPolicy(ctx context.Context) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 100 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = time.Second
	exp.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(exp, 2), ctx)
}
