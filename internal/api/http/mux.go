package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server.
// rateLimit wraps handlers starting new fetches, allowedOrigins configures CORS for browser clients.
func NewMux(
	viewers Viewers,
	timeout time.Duration,
	rateLimit func(http.HandlerFunc) http.HandlerFunc,
	allowedOrigins []string,
	l logrus.FieldLogger,
) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	getID := func(r *http.Request) string {
		return mux.Vars(r)["id"]
	}

	m := mux.NewRouter()
	m.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	m.HandleFunc("/viewers", rateLimit(NewOpenHandler(viewers))).Methods(http.MethodPost)
	m.HandleFunc("/viewers/{id}", timeoutMiddleware(NewViewHandler(getID, viewers))).Methods(http.MethodGet)
	m.HandleFunc("/viewers/{id}", NewCloseHandler(getID, viewers)).Methods(http.MethodDelete)
	m.HandleFunc("/viewers/{id}/query", rateLimit(NewQueryHandler(getID, viewers))).Methods(http.MethodPost)
	m.HandleFunc("/viewers/{id}/retry", rateLimit(NewRetryHandler(getID, viewers))).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	return NewLoggingMiddleware(l)(c.Handler(m))
}
