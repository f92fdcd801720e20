package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSessionGuard(t *testing.T) {
	t.Parallel()

	s := NewStore()
	first := s.Begin("alice")
	second := s.Begin("bob")
	require.NotEqual(t, first, second)

	assert.False(t, s.SetProfile(first, Profile{Login: "alice"}))
	assert.False(t, s.SetRepositories(first, []Repository{{Name: "a"}}))
	assert.False(t, s.Fail(first, errors.New("late error")))
	assert.False(t, s.Settle(first))

	st := s.Snapshot()
	assert.Equal(t, "bob", st.Subject)
	assert.True(t, st.Loading)
	assert.Nil(t, st.Profile)
	assert.Nil(t, st.Err)

	assert.True(t, s.SetProfile(second, Profile{Login: "bob"}))
	st = s.Snapshot()
	require.NotNil(t, st.Profile)
	assert.Equal(t, "bob", st.Profile.Login)
	assert.False(t, st.Loading)
}

func TestStoreBeginClearsPreviousSession(t *testing.T) {
	t.Parallel()

	s := NewStore()
	session := s.Begin("alice")
	require.True(t, s.SetProfile(session, Profile{Login: "alice"}))
	require.True(t, s.SetRepositories(session, []Repository{{Name: "repo"}}))
	require.True(t, s.UpsertWorkflowStatus(session, "repo", WorkflowStatus{Status: RunStatusCompleted}))
	require.True(t, s.Settle(session))

	s.Begin("bob")
	st := s.Snapshot()
	assert.Nil(t, st.Profile)
	assert.Nil(t, st.Repositories)
	assert.False(t, st.RepositoriesKnown)
	assert.Empty(t, st.Workflows)
	assert.False(t, st.Settled)
	assert.True(t, st.Loading)
}

func TestStoreUpsertWorkflowStatusUnknownRepository(t *testing.T) {
	t.Parallel()

	s := NewStore()
	session := s.Begin("alice")
	require.True(t, s.SetProfile(session, Profile{Login: "alice"}))
	require.True(t, s.SetRepositories(session, []Repository{{Name: "repo"}}))

	assert.False(t, s.UpsertWorkflowStatus(session, "other", WorkflowStatus{}))
	assert.True(t, s.UpsertWorkflowStatus(session, "repo", WorkflowStatus{Branch: "main"}))
	assert.Equal(t, "main", s.Snapshot().Workflows["repo"].Branch)
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	t.Parallel()

	s := NewStore()
	session := s.Begin("alice")
	require.True(t, s.SetProfile(session, Profile{Login: "alice"}))
	require.True(t, s.SetRepositories(session, []Repository{{Name: "repo"}}))

	st := s.Snapshot()
	st.Profile.Login = "changed"
	st.Repositories[0].Name = "changed"
	st.Workflows["x"] = WorkflowStatus{}

	st = s.Snapshot()
	assert.Equal(t, "alice", st.Profile.Login)
	assert.Equal(t, "repo", st.Repositories[0].Name)
	assert.Empty(t, st.Workflows)
}

func TestStoreWait(t *testing.T) {
	t.Parallel()

	s := NewStore()
	v := s.Snapshot().Version

	done := make(chan State)
	go func() {
		st, err := s.Wait(context.Background(), v)
		assert.NoError(t, err)
		done <- st
	}()

	time.Sleep(10 * time.Millisecond)
	s.Begin("alice")

	select {
	case st := <-done:
		assert.Equal(t, "alice", st.Subject)
		assert.Greater(t, st.Version, v)
	case <-time.After(time.Second):
		t.Fatal("Wait didn't return after state change")
	}
}

func TestStoreWaitContextDone(t *testing.T) {
	t.Parallel()

	s := NewStore()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	st, err := s.Wait(ctx, s.Snapshot().Version)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, st.Started)
}
