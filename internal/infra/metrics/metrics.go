// Package metrics exposes Prometheus collectors for HTTP traffic and the login funnel.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"peterparts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "peterparts"

// Registry owns every collector of the process.
type Registry struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	otpSent      *prometheus.CounterVec
	otpVerified  *prometheus.CounterVec
	oauthLogins  *prometheus.CounterVec
}

// NewRegistry registers the collectors on a fresh registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		otpSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_sent_total",
			Help:      "Verification code requests by result.",
		}, []string{"result"}),
		otpVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verifications_total",
			Help:      "Verification code checks by result.",
		}, []string{"result"}),
		oauthLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oauth_logins_total",
			Help:      "Google sign-in callbacks by result.",
		}, []string{"result"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.otpSent,
		r.otpVerified,
		r.oauthLogins,
	)

	return r
}

// NewAuthMetrics exposes the registry as the login funnel recorder.
func NewAuthMetrics(r *Registry) service.AuthMetrics {
	return r
}

func (r *Registry) OTPSent(outcome string) {
	r.otpSent.WithLabelValues(outcome).Inc()
}

func (r *Registry) OTPVerified(outcome string) {
	r.otpVerified.WithLabelValues(outcome).Inc()
}

func (r *Registry) OAuthLogin(outcome string) {
	r.oauthLogins.WithLabelValues(outcome).Inc()
}

// Handler serves the exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer is used by tests to inspect collected values.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Middleware records request counts and latency labelled by the route template.
func (r *Registry) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusFromError(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			r.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			r.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// statusFromError predicts the code the HTTP error handler will render.
func statusFromError(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}

	return http.StatusInternalServerError
}
