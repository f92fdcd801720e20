package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	created := time.Date(2015, time.March, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		state State
		check func(*testing.T, View)
	}{
		{
			name:  "never started",
			state: State{Settled: true},
			check: func(t *testing.T, v View) {
				assert.Equal(t, PhaseEmpty, v.Phase)
				assert.Nil(t, v.Profile)
				assert.False(t, v.CanRetry)
			},
		},
		{
			name:  "loading",
			state: State{Started: true, Loading: true, Subject: "alice"},
			check: func(t *testing.T, v View) {
				assert.Equal(t, PhaseLoading, v.Phase)
				assert.Equal(t, "alice", v.Subject)
				assert.Nil(t, v.Profile)
				assert.Nil(t, v.Repositories)
			},
		},
		{
			name:  "not found error",
			state: State{Started: true, Err: NotFoundError("x"), Settled: true},
			check: func(t *testing.T, v View) {
				assert.Equal(t, PhaseError, v.Phase)
				assert.Equal(t, ErrorKindNotFound, v.ErrorKind)
				assert.Equal(t, MessageNotFound, v.ErrorMessage)
				assert.True(t, v.CanRetry)
				assert.Nil(t, v.Profile)
			},
		},
		{
			name: "populated, repositories pending",
			state: State{
				Started: true,
				Profile: &Profile{Login: "octocat", CreatedAt: created},
			},
			check: func(t *testing.T, v View) {
				assert.Equal(t, PhasePopulated, v.Phase)
				assert.Equal(t, "octocat", v.DisplayName)
				assert.Equal(t, "3 mars 2015", v.MemberSince)
				assert.False(t, v.RepositoriesKnown)
				assert.Empty(t, v.Repositories)
			},
		},
		{
			name: "populated with workflows",
			state: State{
				Started:           true,
				Settled:           true,
				Profile:           &Profile{Login: "octocat", DisplayName: "The Octocat"},
				Repositories:      []Repository{{Name: "a"}, {Name: "b"}},
				RepositoriesKnown: true,
				Workflows: map[string]WorkflowStatus{
					"b": {Status: RunStatusCompleted, Conclusion: RunConclusionSuccess},
				},
			},
			check: func(t *testing.T, v View) {
				assert.Equal(t, PhasePopulated, v.Phase)
				assert.Equal(t, "The Octocat", v.DisplayName)
				require.Len(t, v.Repositories, 2)
				assert.Equal(t, "a", v.Repositories[0].Name)
				assert.Nil(t, v.Repositories[0].Workflow)
				require.NotNil(t, v.Repositories[1].Workflow)
				assert.Equal(t, RunConclusionSuccess, v.Repositories[1].Workflow.Conclusion)
				assert.True(t, v.Settled)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Reduce(tt.state))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "1 janvier 2020", FormatDate(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25 décembre 2011", FormatDate(time.Date(2011, time.December, 25, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "14 août 2019", FormatDate(time.Date(2019, time.August, 14, 12, 0, 0, 0, time.UTC)))
}
