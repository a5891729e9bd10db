package http

import (
	"io"
	"log/slog"
	"testing"

	"github.com/aarroyoc/scryer-http-lyncex/uuid"
)

func TestRecoverMiddleware(t *testing.T) {
	handler := RecoverMiddleware()(func(req *Request, res *Response) {
		panic("boom")
	})

	var res Response
	res.Reset()
	handler(&Request{Method: "GET", Path: "/"}, &res)

	if res.Status != StatusInternalServerError {
		t.Errorf("status = %d, want %d", res.Status, StatusInternalServerError)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := RequestIDMiddleware()(noopHandler)

	var res Response
	res.Reset()
	handler(&Request{}, &res)

	id, found := res.Headers.Get("X-Request-Id")
	if !found {
		t.Fatal("x-request-id header not set")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("x-request-id %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("expected a v4 UUID, got version %d", parsed.Version())
	}
}

func TestLogMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	called := false
	handler := LogMiddleware(logger)(func(req *Request, res *Response) {
		called = true
		res.WithText("ok")
	})

	var res Response
	res.Reset()
	handler(&Request{Method: "GET", Path: "/"}, &res)

	if !called {
		t.Error("next handler was not called")
	}
}

func TestTelemetryMiddlewareNoopProviders(t *testing.T) {
	// With the default global providers these middlewares must be inert
	// passthroughs.
	handler := TraceMiddleware()(MetricsMiddleware()(func(req *Request, res *Response) {
		res.WithText("ok")
	}))

	var res Response
	res.Reset()
	handler(&Request{Method: "GET", Path: "/"}, &res)

	if string(res.Body) != "ok" {
		t.Errorf("body = %q", res.Body)
	}
}
