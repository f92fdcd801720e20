package limiter

import (
	"net/http"

	"github.com/m-zajac/ghprofileviewer/internal/app"
	"golang.org/x/time/rate"
)

// New creates limiter allowing maxRate requests per second with given burst.
// Returns nil if maxRate is not positive, which means requests are not limited.
func New(maxRate float64, burst int) *rate.Limiter {
	if maxRate <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(maxRate), burst)
}

// NewMiddleware creates middleware rejecting requests above given rate with status 429.
// maxRate - maximum number of requests per second, burst - maximum burst size.
// If maxRate is not positive, requests are not limited.
func NewMiddleware(maxRate float64, burst int) func(http.HandlerFunc) http.HandlerFunc {
	return Middleware(New(maxRate, burst))
}

// Middleware creates middleware rejecting requests not allowed by limiter with status 429.
// Nil limiter doesn't limit requests.
func Middleware(limiter *rate.Limiter) func(http.HandlerFunc) http.HandlerFunc {
	if limiter == nil {
		return func(h http.HandlerFunc) http.HandlerFunc {
			return h
		}
	}

	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				err := app.TooManyRequestsError("request rate limit exceeded")
				http.Error(w, err.Error(), http.StatusTooManyRequests)
				return
			}
			h(w, r)
		}
	}
}
