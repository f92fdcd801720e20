package grpc

import (
	"context"
	"errors"

	"github.com/m-zajac/ghprofileviewer/internal/app"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Viewers manages independent profile viewers.
type Viewers interface {
	Open() (string, app.View)
	Submit(id string, subject string) (app.View, error)
	Retry(id string) (app.View, error)
	View(id string) (app.View, error)
	Wait(ctx context.Context, id string, after uint64) (app.View, error)
	Close(id string) error
}

// OpenRequest opens new viewer.
type OpenRequest struct{}

// QueryRequest submits subject for viewer.
type QueryRequest struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
}

// WatchRequest streams viewer's views with version greater than After.
type WatchRequest struct {
	ID    string `json:"id"`
	After uint64 `json:"after"`
}

// ViewerRequest addresses single viewer.
type ViewerRequest struct {
	ID string `json:"id"`
}

// ViewReply is a viewer's view.
type ViewReply struct {
	ID   string   `json:"id"`
	View app.View `json:"view"`
}

// CloseReply is returned after closing viewer.
type CloseReply struct{}

// Service implements ViewerServer.
type Service struct {
	viewers Viewers
	l       logrus.FieldLogger
}

var _ ViewerServer = &Service{}

// NewService creates new Service instance.
func NewService(viewers Viewers, l logrus.FieldLogger) *Service {
	return &Service{
		viewers: viewers,
		l:       l,
	}
}

// Open creates new viewer and returns its initial view.
func (s *Service) Open(ctx context.Context, r *OpenRequest) (*ViewReply, error) {
	id, v := s.viewers.Open()
	return &ViewReply{ID: id, View: v}, nil
}

// Query submits subject to the viewer.
func (s *Service) Query(ctx context.Context, r *QueryRequest) (*ViewReply, error) {
	v, err := s.viewers.Submit(r.ID, r.Subject)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &ViewReply{ID: r.ID, View: v}, nil
}

// Retry resubmits viewer's last subject after an error.
func (s *Service) Retry(ctx context.Context, r *ViewerRequest) (*ViewReply, error) {
	v, err := s.viewers.Retry(r.ID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &ViewReply{ID: r.ID, View: v}, nil
}

// Watch sends every new view of the viewer. Returns after sending settled view.
func (s *Service) Watch(r *WatchRequest, stream WatchServerStream) error {
	after := r.After
	v, err := s.viewers.View(r.ID)
	for {
		if err != nil {
			return s.toStatus(err)
		}
		if v.Version > after {
			if err := stream.Send(&ViewReply{ID: r.ID, View: v}); err != nil {
				return err
			}
			after = v.Version
		}
		if v.Settled {
			return nil
		}

		v, err = s.viewers.Wait(stream.Context(), r.ID, after)
	}
}

// Close cancels viewer's pending work and forgets it.
func (s *Service) Close(ctx context.Context, r *ViewerRequest) (*CloseReply, error) {
	if err := s.viewers.Close(r.ID); err != nil {
		return nil, s.toStatus(err)
	}
	return &CloseReply{}, nil
}

func (s *Service) toStatus(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsUnknownViewerError(err):
		return status.Error(codes.NotFound, err.Error())
	case app.IsTooManyRequestsError(err):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}

	s.l.Errorf("viewer service error: %v", err)
	return status.Error(codes.Internal, "internal error")
}
