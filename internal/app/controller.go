package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fetcher runs a fetch sequence for a subject, publishing results to sink.
type Fetcher interface {
	Run(ctx context.Context, session uint64, subject string, sink Sink) error
}

var _ Fetcher = &Orchestrator{}

// Controller owns query subject of a single viewer and triggers fetch sequences.
//
// Every submission starts new session: previous data is cleared before fetching starts,
// and previous session's fetches are canceled. Late results of canceled sessions are dropped by the store.
type Controller struct {
	fetcher        Fetcher
	store          *Store
	defaultSubject string
	l              logrus.FieldLogger

	startOnce sync.Once

	mu      sync.Mutex
	ctx     context.Context
	stop    func()
	cancel  func()
	closed  bool
	running sync.WaitGroup
}

// NewController creates new Controller instance.
// defaultSubject is optional, it's submitted once by Start.
func NewController(fetcher Fetcher, defaultSubject string, l logrus.FieldLogger) *Controller {
	ctx, stop := context.WithCancel(context.Background())

	return &Controller{
		fetcher:        fetcher,
		store:          NewStore(),
		defaultSubject: strings.TrimSpace(defaultSubject),
		l:              l,
		ctx:            ctx,
		stop:           stop,
	}
}

// Start submits default subject, if configured. Only first call has any effect.
func (c *Controller) Start() {
	c.startOnce.Do(func() {
		if c.defaultSubject == "" {
			return
		}
		if _, err := c.Submit(c.defaultSubject); err != nil {
			c.l.Errorf("submitting default subject: %v", err)
		}
	})
}

// Submit starts fetching data for given subject.
// Empty subject is rejected with InvalidRequestError and doesn't change state.
func (c *Controller) Submit(subject string) (View, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return View{}, InvalidRequestError("subject cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return View{}, errors.New("controller is closed")
	}
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel

	session := c.store.Begin(subject)
	c.l.WithField("session", session).Infof("fetching data for %s", subject)

	c.running.Add(1)
	go func() {
		defer c.running.Done()
		defer cancel()

		if err := c.fetcher.Run(ctx, session, subject, c.store); err != nil {
			c.l.WithField("session", session).Infof("fetch sequence for %s failed: %v", subject, err)
		}
	}()

	return Reduce(c.store.Snapshot()), nil
}

// Retry repeats fetch for the current subject. Allowed only in error phase.
func (c *Controller) Retry() (View, error) {
	st := c.store.Snapshot()
	if Reduce(st).Phase != PhaseError {
		return View{}, InvalidRequestError("retry is allowed only after failed lookup")
	}

	return c.Submit(st.Subject)
}

// View returns current view.
func (c *Controller) View() View {
	return Reduce(c.store.Snapshot())
}

// Wait blocks until view version is greater than `after`.
func (c *Controller) Wait(ctx context.Context, after uint64) (View, error) {
	st, err := c.store.Wait(ctx, after)
	return Reduce(st), err
}

// WaitSettled blocks until current session doesn't expect any more updates.
func (c *Controller) WaitSettled(ctx context.Context) (View, error) {
	v := c.View()
	for !v.Settled {
		var err error
		v, err = c.Wait(ctx, v.Version)
		if err != nil {
			return v, err
		}
	}

	return v, nil
}

// Close cancels pending fetches and waits until they return.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.stop()
	c.mu.Unlock()

	c.running.Wait()
}
