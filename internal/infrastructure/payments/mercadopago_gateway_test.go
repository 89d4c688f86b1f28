package payments

import (
	"context"
	"net/http"
	"testing"
)

type captureRequester struct {
	header http.Header
}

func (c *captureRequester) Do(req *http.Request) (*http.Response, error) {
	c.header = req.Header.Clone()
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestIdempotencyRequester(t *testing.T) {
	t.Run("pins the key from the context", func(t *testing.T) {
		next := &captureRequester{}
		r := newIdempotencyRequester(next)

		ctx := context.WithValue(context.Background(), idempotencyKeyCtx{}, "cr-1")
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, "http://example.invalid/v1/payments", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req.Header.Set("X-Idempotency-Key", "random-per-attempt")

		if _, err := r.Do(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := next.header.Get("X-Idempotency-Key"); got != "cr-1" {
			t.Fatalf("expected pinned key cr-1, got %q", got)
		}
	})

	t.Run("leaves the header alone without a key", func(t *testing.T) {
		next := &captureRequester{}
		r := newIdempotencyRequester(next)

		req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, "http://example.invalid/v1/payments", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req.Header.Set("X-Idempotency-Key", "random-per-attempt")

		if _, err := r.Do(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := next.header.Get("X-Idempotency-Key"); got != "random-per-attempt" {
			t.Fatalf("expected untouched key, got %q", got)
		}
	})
}
