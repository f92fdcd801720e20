package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghprofileviewer/internal/api/http/mock"
	"github.com/m-zajac/ghprofileviewer/internal/app"
	"github.com/stretchr/testify/assert"
)

func testID(*http.Request) string {
	return "v1"
}

func TestNewViewHandler(t *testing.T) {
	t.Parallel()

	created := time.Date(2015, time.March, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		url             string
		setupMock       func(*mock.MockViewers)
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name: "empty view",
			url:  "testurl",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().View("v1").Return(app.View{Phase: app.PhaseEmpty, Settled: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"id":"v1","session":0,"version":0,"subject":"","phase":"empty","settled":true,
				"canRetry":false,"repositoriesLoaded":false}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "error view",
			url:  "testurl",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().View("v1").Return(app.View{
					Session:      2,
					Version:      5,
					Subject:      "ghost",
					Phase:        app.PhaseError,
					Settled:      true,
					ErrorKind:    app.ErrorKindNotFound,
					ErrorMessage: app.MessageNotFound,
					CanRetry:     true,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"id":"v1","session":2,"version":5,"subject":"ghost","phase":"error","settled":true,
				"error":{"kind":"not_found","message":"Utilisateur introuvable"},
				"canRetry":true,"repositoriesLoaded":false}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "populated view",
			url:  "testurl",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().View("v1").Return(app.View{
					Session:     1,
					Version:     4,
					Subject:     "octocat",
					Phase:       app.PhasePopulated,
					Settled:     true,
					DisplayName: "The Octocat",
					MemberSince: "3 mars 2015",
					Profile: &app.Profile{
						Login:       "octocat",
						DisplayName: "The Octocat",
						AvatarURL:   "https://avatars/octocat",
						HTMLURL:     "https://github.com/octocat",
						CreatedAt:   created,
					},
					Repositories: []app.RepositoryView{
						{
							Repository: app.Repository{Name: "hello", URL: "https://github.com/octocat/hello", StarCount: 7},
							Workflow: &app.WorkflowStatus{
								Status:     app.RunStatusCompleted,
								Conclusion: app.RunConclusionSuccess,
								Branch:     "main",
								RunURL:     "https://github.com/octocat/hello/actions/runs/1",
								Commit:     &app.Commit{ID: "abc", Message: "fix", AuthorName: "Mona"},
								CreatedAt:  created,
							},
						},
					},
					RepositoriesKnown: true,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"id":"v1","session":1,"version":4,"subject":"octocat","phase":"populated","settled":true,
				"canRetry":false,
				"profile":{"login":"octocat","name":"The Octocat","avatarUrl":"https://avatars/octocat",
					"url":"https://github.com/octocat","publicRepos":0,"followers":0,"following":0,
					"createdAt":"2015-03-03T10:00:00Z","memberSince":"3 mars 2015"},
				"repositories":[{"name":"hello","url":"https://github.com/octocat/hello","stars":7,"forks":0,
					"workflow":{"status":"completed","conclusion":"success","branch":"main",
						"url":"https://github.com/octocat/hello/actions/runs/1",
						"commit":{"id":"abc","message":"fix","author":"Mona"},
						"createdAt":"2015-03-03T10:00:00Z"}}],
				"repositoriesLoaded":true}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "long poll",
			url:  "testurl?after=3",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().Wait(gomock.Any(), "v1", uint64(3)).Return(app.View{Version: 4, Phase: app.PhaseLoading}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"id":"v1","session":0,"version":4,"subject":"","phase":"loading","settled":false,
				"canRetry":false,"repositoriesLoaded":false}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "long poll timeout returns current view",
			url:  "testurl?after=4",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().
					Wait(gomock.Any(), "v1", uint64(4)).
					Return(app.View{Version: 4, Phase: app.PhaseLoading}, context.DeadlineExceeded)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"id":"v1","session":0,"version":4,"subject":"","phase":"loading","settled":false,
				"canRetry":false,"repositoriesLoaded":false}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "invalid after param",
			url:             "testurl?after=x",
			wantStatus:      http.StatusBadRequest,
			wantBody:        "invalid after param",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "unknown viewer",
			url:  "testurl",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().View("v1").Return(app.View{}, app.UnknownViewerError("v1"))
			},
			wantStatus:      http.StatusNotFound,
			wantBody:        "unknown viewer: v1",
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "internal error",
			url:  "testurl",
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().View("v1").Return(app.View{}, errors.New("error"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantContentType: "text/plain; charset=utf-8",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			viewers := mock.NewMockViewers(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(viewers)
			}

			handler := NewViewHandler(testID, viewers)
			req := httptest.NewRequest(http.MethodGet, "/"+tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))

			body := strings.Trim(w.Body.String(), "\n")
			if strings.HasPrefix(tt.wantContentType, "application/json") {
				assert.JSONEq(t, tt.wantBody, body)
			} else {
				assert.Equal(t, tt.wantBody, body)
			}
		})
	}
}

func TestNewQueryHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mock.MockViewers)
		wantStatus int
		wantPhase  string
	}{
		{
			name: "valid query",
			body: `{"subject":"octocat"}`,
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().Submit("v1", "octocat").Return(app.View{Subject: "octocat", Phase: app.PhaseLoading}, nil)
			},
			wantStatus: http.StatusAccepted,
			wantPhase:  `"phase":"loading"`,
		},
		{
			name:       "invalid body",
			body:       `{"subject":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty subject",
			body: `{"subject":"  "}`,
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().Submit("v1", "  ").Return(app.View{}, app.InvalidRequestError("subject cannot be empty"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown viewer",
			body: `{"subject":"octocat"}`,
			setupMock: func(m *mock.MockViewers) {
				m.EXPECT().Submit("v1", "octocat").Return(app.View{}, app.UnknownViewerError("v1"))
			},
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			viewers := mock.NewMockViewers(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(viewers)
			}

			handler := NewQueryHandler(testID, viewers)
			req := httptest.NewRequest(http.MethodPost, "/testurl", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantPhase != "" {
				assert.Contains(t, w.Body.String(), tt.wantPhase)
			}
		})
	}
}

func TestNewRetryHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		retryErr   error
		wantStatus int
	}{
		{
			name:       "retry started",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "nothing to retry",
			retryErr:   app.InvalidRequestError("nothing to retry"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown viewer",
			retryErr:   app.UnknownViewerError("v1"),
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			viewers := mock.NewMockViewers(ctrl)
			viewers.EXPECT().Retry("v1").Return(app.View{Phase: app.PhaseLoading}, tt.retryErr)

			handler := NewRetryHandler(testID, viewers)
			req := httptest.NewRequest(http.MethodPost, "/testurl", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestNewOpenAndCloseHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewers := mock.NewMockViewers(ctrl)
	viewers.EXPECT().Open().Return("v1", app.View{Phase: app.PhaseEmpty, Settled: true})
	viewers.EXPECT().Close("v1").Return(nil)
	viewers.EXPECT().Close("v1").Return(app.UnknownViewerError("v1"))

	w := httptest.NewRecorder()
	NewOpenHandler(viewers)(w, httptest.NewRequest(http.MethodPost, "/viewers", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"v1"`)

	w = httptest.NewRecorder()
	NewCloseHandler(testID, viewers)(w, httptest.NewRequest(http.MethodDelete, "/viewers/v1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	NewCloseHandler(testID, viewers)(w, httptest.NewRequest(http.MethodDelete, "/viewers/v1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
