package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

// Viewers keeps independent viewers (controllers), each identified by opaque id.
// Least recently used viewers are closed when size limit is reached.
type Viewers struct {
	fetcher        Fetcher
	defaultSubject string
	controllers    *lru.Cache
	l              logrus.FieldLogger

	// evicted controllers are closed outside of the cache lock
	mu      sync.Mutex
	evicted []*Controller
}

// NewViewers creates new Viewers instance.
func NewViewers(fetcher Fetcher, defaultSubject string, size int, l logrus.FieldLogger) (*Viewers, error) {
	if size <= 0 {
		return nil, errors.New("viewers size must be greater than 0")
	}

	v := &Viewers{
		fetcher:        fetcher,
		defaultSubject: defaultSubject,
		l:              l,
	}
	controllers, err := lru.NewWithEvict(size, v.onEvict)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for viewers: %w", err)
	}
	v.controllers = controllers

	return v, nil
}

// Open creates new viewer and starts it. Returns viewer id and its initial view.
func (v *Viewers) Open() (string, View) {
	id := uuid.NewString()
	c := NewController(v.fetcher, v.defaultSubject, v.l.WithField("viewer", id))
	v.controllers.Add(id, c)
	v.closeEvicted()
	c.Start()

	return id, c.View()
}

// Submit starts new query for viewer.
func (v *Viewers) Submit(id string, subject string) (View, error) {
	c, err := v.get(id)
	if err != nil {
		return View{}, err
	}
	return c.Submit(subject)
}

// Retry repeats failed query for viewer.
func (v *Viewers) Retry(id string) (View, error) {
	c, err := v.get(id)
	if err != nil {
		return View{}, err
	}
	return c.Retry()
}

// View returns current view of viewer.
func (v *Viewers) View(id string) (View, error) {
	c, err := v.get(id)
	if err != nil {
		return View{}, err
	}
	return c.View(), nil
}

// Wait blocks until viewer's view version is greater than `after`.
func (v *Viewers) Wait(ctx context.Context, id string, after uint64) (View, error) {
	c, err := v.get(id)
	if err != nil {
		return View{}, err
	}
	return c.Wait(ctx, after)
}

// Close closes viewer with given id.
func (v *Viewers) Close(id string) error {
	if !v.controllers.Remove(id) {
		return UnknownViewerError(id)
	}
	v.closeEvicted()

	return nil
}

// CloseAll closes all viewers.
func (v *Viewers) CloseAll() {
	v.controllers.Purge()
	v.closeEvicted()
}

// Len returns number of open viewers.
func (v *Viewers) Len() int {
	return v.controllers.Len()
}

func (v *Viewers) get(id string) (*Controller, error) {
	val, ok := v.controllers.Get(id)
	if !ok {
		return nil, UnknownViewerError(id)
	}
	return val.(*Controller), nil
}

// onEvict is called by the cache with its lock held.
func (v *Viewers) onEvict(key interface{}, value interface{}) {
	v.l.Debugf("closing viewer %v", key)

	v.mu.Lock()
	v.evicted = append(v.evicted, value.(*Controller))
	v.mu.Unlock()
}

func (v *Viewers) closeEvicted() {
	v.mu.Lock()
	evicted := v.evicted
	v.evicted = nil
	v.mu.Unlock()

	for _, c := range evicted {
		c.Close()
	}
}
