package app

import "time"

// Profile entity. Public attributes of a github account.
type Profile struct {
	Login           string
	DisplayName     string
	AvatarURL       string
	HTMLURL         string
	Bio             string
	Company         string
	Location        string
	Blog            string
	PublicRepoCount int
	FollowerCount   int
	FollowingCount  int
	CreatedAt       time.Time
}

// Name returns display name, or login if display name is not set.
func (p Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Login
}

// Repository entity. Summary of a single repository owned by the queried account.
type Repository struct {
	Name          string
	URL           string
	Description   string
	StarCount     int
	ForkCount     int
	Language      string
	DefaultBranch string
}

// RunStatus is the state of a workflow run.
type RunStatus string

// Workflow run statuses.
const (
	RunStatusPending    RunStatus = "pending"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
)

// RunConclusion is the outcome of a completed workflow run.
type RunConclusion string

// Workflow run conclusions.
const (
	RunConclusionNone    RunConclusion = ""
	RunConclusionSuccess RunConclusion = "success"
	RunConclusionFailure RunConclusion = "failure"
	RunConclusionOther   RunConclusion = "other"
)

// Commit entity. Head commit of a workflow run.
type Commit struct {
	ID         string
	Message    string
	AuthorName string
}

// WorkflowStatus entity. The most recent workflow run of a repository.
type WorkflowStatus struct {
	Name       string
	Title      string
	Status     RunStatus
	Conclusion RunConclusion
	Branch     string
	RunURL     string
	Commit     *Commit
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Phase is the active view state.
type Phase string

// View phases. Exactly one is active at any time.
const (
	PhaseEmpty     Phase = "empty"
	PhaseLoading   Phase = "loading"
	PhaseError     Phase = "error"
	PhasePopulated Phase = "populated"
)
