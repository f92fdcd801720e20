package app

import (
	"context"
	"sync"
)

// State is the published state of a viewer's current query session.
type State struct {
	Session           uint64
	Version           uint64
	Subject           string
	Started           bool
	Loading           bool
	Settled           bool
	Err               error
	Profile           *Profile
	Repositories      []Repository
	RepositoriesKnown bool
	Workflows         map[string]WorkflowStatus
}

// Store owns viewer state. State is mutated only with update operations,
// each guarded by session id: updates coming from superseded sessions are dropped.
type Store struct {
	mu      sync.Mutex
	state   State
	changed chan struct{}
}

// NewStore creates new Store instance in initial, empty state.
func NewStore() *Store {
	return &Store{
		state: State{
			Settled:   true,
			Workflows: make(map[string]WorkflowStatus),
		},
		changed: make(chan struct{}),
	}
}

// Begin starts new session for given subject. All data of the previous session is discarded.
// Returns new session id.
func (s *Store) Begin(subject string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		Session:   s.state.Session + 1,
		Version:   s.state.Version,
		Subject:   subject,
		Started:   true,
		Loading:   true,
		Workflows: make(map[string]WorkflowStatus),
	}
	s.bump()

	return s.state.Session
}

// SetProfile publishes fetched profile. Returns false if session is not active.
func (s *Store) SetProfile(session uint64, p Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session != s.state.Session {
		return false
	}
	s.state.Profile = &p
	s.state.Loading = false
	s.state.Err = nil
	s.bump()

	return true
}

// SetRepositories publishes repository list. Returns false if session is not active.
func (s *Store) SetRepositories(session uint64, repos []Repository) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session != s.state.Session {
		return false
	}
	s.state.Repositories = append([]Repository(nil), repos...)
	s.state.RepositoriesKnown = true
	s.bump()

	return true
}

// UpsertWorkflowStatus publishes workflow status for a repository of the active session.
// Returns false if session is not active or repository doesn't belong to it.
func (s *Store) UpsertWorkflowStatus(session uint64, repo string, status WorkflowStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session != s.state.Session || !s.hasRepository(repo) {
		return false
	}
	s.state.Workflows[repo] = status
	s.bump()

	return true
}

// Fail marks profile lookup of the session as failed. Returns false if session is not active.
func (s *Store) Fail(session uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session != s.state.Session {
		return false
	}
	s.state.Err = err
	s.state.Loading = false
	s.state.Settled = true
	s.bump()

	return true
}

// Settle marks that no more updates will be published for the session.
// Returns false if session is not active.
func (s *Store) Settle(session uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session != s.state.Session {
		return false
	}
	s.state.Loading = false
	s.state.Settled = true
	s.bump()

	return true
}

// Snapshot returns copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Wait blocks until state version is greater than `after`, then returns state snapshot.
// Returns ctx error if context is done first.
func (s *Store) Wait(ctx context.Context, after uint64) (State, error) {
	for {
		s.mu.Lock()
		if s.state.Version > after {
			st := s.snapshot()
			s.mu.Unlock()
			return st, nil
		}
		changed := s.changed
		s.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return s.Snapshot(), ctx.Err()
		}
	}
}

func (s *Store) snapshot() State {
	st := s.state
	if s.state.Repositories != nil {
		st.Repositories = append([]Repository(nil), s.state.Repositories...)
	}
	st.Workflows = make(map[string]WorkflowStatus, len(s.state.Workflows))
	for k, v := range s.state.Workflows {
		st.Workflows[k] = v
	}
	if s.state.Profile != nil {
		p := *s.state.Profile
		st.Profile = &p
	}

	return st
}

func (s *Store) hasRepository(name string) bool {
	for _, r := range s.state.Repositories {
		if r.Name == name {
			return true
		}
	}
	return false
}

// bump must be called with mu held.
func (s *Store) bump() {
	s.state.Version++
	close(s.changed)
	s.changed = make(chan struct{})
}
