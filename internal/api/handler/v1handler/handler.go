// Package v1handler implements the v1 HTTP API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"breachcheck/internal/verification"
	"breachcheck/pkg/logger"
	"breachcheck/pkg/metrics"
	"breachcheck/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Deps are the services behind the v1 API.
type Deps struct {
	Verifier verification.Verifier
	// RetryAfter is advertised to rate limited callers.
	RetryAfter time.Duration
	// MeterProvider records per-route request metrics. Defaults to no-op.
	MeterProvider metric.MeterProvider
}

type Handler struct {
	deps Deps

	requestDuration metric.Float64Histogram
}

func New(deps Deps) *Handler {
	if deps.MeterProvider == nil {
		deps.MeterProvider = noop.NewMeterProvider()
	}

	h := &Handler{deps: deps}
	hist, err := deps.MeterProvider.Meter("breachcheck/internal/api/v1").Float64Histogram(
		"breachcheck.http.request.duration",
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		hist, _ = noop.NewMeterProvider().Meter("").Float64Histogram("")
	}
	h.requestDuration = hist

	return h
}

// Routes returns the v1 router. Every route requires bearer authentication.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.KindOnly(serrors.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "method not allowed"))
	})

	r.Group(func(r chi.Router) {
		r.Use(h.withMetrics, sec.Middleware(h))
		r.Post("/breach-verification", h.CreateVerification)
		r.Get("/breach-verification", h.ListVerifications)
	})

	return r
}

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.requestDuration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("http.route", route),
			attribute.String("http.method", r.Method),
			attribute.Int("http.status_code", rec.status),
		))
	})
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// ErrorBody is the error payload of every failed v1 call.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorStatusCode is an error mapped to its HTTP representation.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorBody
}

var statusByKind = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:    http.StatusBadRequest,
	serrors.ErrUnauthorized:  http.StatusUnauthorized,
	serrors.ErrForbidden:     http.StatusForbidden,
	serrors.ErrNotFound:      http.StatusNotFound,
	serrors.ErrConflict:      http.StatusConflict,
	serrors.ErrRateLimited:   http.StatusTooManyRequests,
	serrors.ErrTimeout:       http.StatusGatewayTimeout,
	serrors.ErrUnavailable:   http.StatusServiceUnavailable,
	serrors.ErrUpstreamAuth:  http.StatusServiceUnavailable,
	serrors.ErrUpstreamQuota: http.StatusServiceUnavailable,
	serrors.ErrUpstream:      http.StatusServiceUnavailable,
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:    "bad request",
	serrors.ErrUnauthorized:  "unauthorized",
	serrors.ErrForbidden:     "forbidden",
	serrors.ErrNotFound:      "resource not found",
	serrors.ErrConflict:      "conflict",
	serrors.ErrRateLimited:   "too many requests",
	serrors.ErrTimeout:       "request timed out",
	serrors.ErrUnavailable:   "service unavailable",
	serrors.ErrUpstreamAuth:  "external service authentication failed",
	serrors.ErrUpstreamQuota: "external service rate limit exceeded",
	serrors.ErrUpstream:      "external service unavailable",
}

// publicMessage reports whether the message attached to an error of kind k
// may be shown to callers.
func publicMessage(k serrors.Kind) bool {
	switch k {
	case serrors.ErrBadRequest, serrors.ErrUnauthorized, serrors.ErrNotFound, serrors.ErrRateLimited:
		return true
	default:
		return false
	}
}

// NewError maps err to its HTTP status and error body. Unclassified errors
// become a generic internal error.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorBody{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	msg := defaultMessages[kind]
	var serr *serrors.Error
	if publicMessage(kind) && errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorBody{Code: kind.Error(), Message: msg},
	}
}

// WriteError writes err as a v1 error response.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	if res.StatusCode == http.StatusTooManyRequests && h.deps.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(h.deps.RetryAfter.Round(time.Second).Seconds())))
	}
	writeJSON(r.Context(), w, res.StatusCode, envelope{Success: false, Error: &res.Response})
}

func writeData(ctx context.Context, w http.ResponseWriter, data any) {
	writeJSON(ctx, w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
