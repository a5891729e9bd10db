package http

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aarroyoc/scryer-http-lyncex/uuid"
)

const scopeName = "github.com/aarroyoc/scryer-http-lyncex/http"

type Middleware func(next Handler) Handler

// RecoverMiddleware contains handler panics. The connection survives with a
// 500 instead of taking the whole process down.
func RecoverMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("handler panic", "method", req.Method, "path", req.Path, "panic", r)
					res.WithStatus(StatusInternalServerError).WithText("something went wrong")
				}
			}()

			next(req, res)
		}
	}
}

// RequestIDMiddleware tags every response with a fresh x-request-id header.
func RequestIDMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			res.Headers.Set("X-Request-Id", uuid.New().String())
			next(req, res)
		}
	}
}

// LogMiddleware logs one line per request through the given slog logger,
// which may be bridged to OpenTelemetry via otelslog.
func LogMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			start := time.Now()
			next(req, res)
			logger.Info("request handled",
				"method", req.Method,
				"path", req.Path,
				"status", res.Status,
				"duration", time.Since(start),
			)
		}
	}
}

// TraceMiddleware opens one span per request on the global tracer provider.
func TraceMiddleware() Middleware {
	tracer := otel.Tracer(scopeName)

	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			_, span := tracer.Start(context.Background(), req.Method+" "+req.Path)
			defer span.End()

			next(req, res)

			span.SetAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.path", req.Path),
				attribute.Int("http.response.status_code", int(res.Status)),
			)
		}
	}
}

// MetricsMiddleware counts requests and measures handler latency on the
// global meter provider.
func MetricsMiddleware() Middleware {
	meter := otel.Meter(scopeName)

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("The number of handled requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		slog.Error("metrics middleware disabled", "error", err)
		return func(next Handler) Handler { return next }
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent handling a request"),
		metric.WithUnit("s"))
	if err != nil {
		slog.Error("metrics middleware disabled", "error", err)
		return func(next Handler) Handler { return next }
	}

	return func(next Handler) Handler {
		return func(req *Request, res *Response) {
			start := time.Now()
			next(req, res)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.Int("http.response.status_code", int(res.Status)),
			)
			requests.Add(context.Background(), 1, attrs)
			duration.Record(context.Background(), time.Since(start).Seconds(), attrs)
		}
	}
}
