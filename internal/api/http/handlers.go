package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/m-zajac/ghprofileviewer/internal/app"
)

// Viewers manages independent profile viewers.
//go:generate mockgen -destination mock/viewers.go -package mock github.com/m-zajac/ghprofileviewer/internal/api/http Viewers
type Viewers interface {
	Open() (string, app.View)
	Submit(id string, subject string) (app.View, error)
	Retry(id string) (app.View, error)
	View(id string) (app.View, error)
	Wait(ctx context.Context, id string, after uint64) (app.View, error)
	Close(id string) error
}

type queryRequest struct {
	Subject string `json:"subject"`
}

// NewOpenHandler creates handlerfunc opening new viewer.
func NewOpenHandler(viewers Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, view := viewers.Open()
		writeView(w, http.StatusCreated, id, view)
	}
}

// NewViewHandler creates handlerfunc returning current view.
// If `after` query param is set, waits until view version is greater than its value or request context is done.
func NewViewHandler(getID func(*http.Request) string, viewers Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := getID(r)

		as := r.URL.Query().Get("after")
		if as == "" {
			view, err := viewers.View(id)
			if err != nil {
				writeError(w, err)
				return
			}
			writeView(w, http.StatusOK, id, view)
			return
		}

		after, err := strconv.ParseUint(as, 10, 64)
		if err != nil {
			http.Error(w, "invalid after param", http.StatusBadRequest)
			return
		}
		view, err := viewers.Wait(r.Context(), id, after)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			writeError(w, err)
			return
		}
		writeView(w, http.StatusOK, id, view)
	}
}

// NewQueryHandler creates handlerfunc submitting new subject for viewer.
func NewQueryHandler(getID func(*http.Request) string, viewers Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := getID(r)

		var req queryRequest
		if err := jsoniter.ConfigFastest.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		view, err := viewers.Submit(id, req.Subject)
		if err != nil {
			writeError(w, err)
			return
		}
		writeView(w, http.StatusAccepted, id, view)
	}
}

// NewRetryHandler creates handlerfunc retrying failed query of viewer.
func NewRetryHandler(getID func(*http.Request) string, viewers Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := getID(r)

		view, err := viewers.Retry(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeView(w, http.StatusAccepted, id, view)
	}
}

// NewCloseHandler creates handlerfunc closing viewer.
func NewCloseHandler(getID func(*http.Request) string, viewers Viewers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := viewers.Close(getID(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeView(w http.ResponseWriter, status int, id string, view app.View) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(newViewResponse(id, view))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsUnknownViewerError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case app.IsTooManyRequestsError(err):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	default:
		http.Error(w, "", http.StatusInternalServerError)
	}
}
