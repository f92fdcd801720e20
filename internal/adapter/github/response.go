package github

import (
	"errors"
	"fmt"
	"time"

	"github.com/m-zajac/ghprofileviewer/internal/app"
)

type userResponse struct {
	Login       *string    `json:"login"`
	Name        *string    `json:"name"`
	AvatarURL   string     `json:"avatar_url"`
	HTMLURL     string     `json:"html_url"`
	Bio         *string    `json:"bio"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	Blog        *string    `json:"blog"`
	PublicRepos *int       `json:"public_repos"`
	Followers   *int       `json:"followers"`
	Following   *int       `json:"following"`
	CreatedAt   *time.Time `json:"created_at"`
}

func (r userResponse) Validate() error {
	switch {
	case r.Login == nil || *r.Login == "":
		return errors.New("missing login")
	case r.PublicRepos == nil:
		return errors.New("missing public_repos")
	case r.Followers == nil:
		return errors.New("missing followers")
	case r.Following == nil:
		return errors.New("missing following")
	case r.CreatedAt == nil:
		return errors.New("missing created_at")
	}
	return nil
}

func (r userResponse) ToProfile() *app.Profile {
	return &app.Profile{
		Login:           *r.Login,
		DisplayName:     deref(r.Name),
		AvatarURL:       r.AvatarURL,
		HTMLURL:         r.HTMLURL,
		Bio:             deref(r.Bio),
		Company:         deref(r.Company),
		Location:        deref(r.Location),
		Blog:            deref(r.Blog),
		PublicRepoCount: *r.PublicRepos,
		FollowerCount:   *r.Followers,
		FollowingCount:  *r.Following,
		CreatedAt:       *r.CreatedAt,
	}
}

type reposResponse []reposResponseItem

type reposResponseItem struct {
	Name            *string `json:"name"`
	HTMLURL         string  `json:"html_url"`
	Description     *string `json:"description"`
	StargazersCount *int    `json:"stargazers_count"`
	ForksCount      *int    `json:"forks_count"`
	Language        *string `json:"language"`
	DefaultBranch   string  `json:"default_branch"`
}

func (r reposResponse) Validate() error {
	for i, item := range r {
		switch {
		case item.Name == nil || *item.Name == "":
			return fmt.Errorf("item %d: missing name", i)
		case item.StargazersCount == nil:
			return fmt.Errorf("item %d: missing stargazers_count", i)
		case item.ForksCount == nil:
			return fmt.Errorf("item %d: missing forks_count", i)
		}
	}
	return nil
}

func (r reposResponse) ToRepositories() []app.Repository {
	repos := make([]app.Repository, 0, len(r))
	for _, item := range r {
		repos = append(repos, app.Repository{
			Name:          *item.Name,
			URL:           item.HTMLURL,
			Description:   deref(item.Description),
			StarCount:     *item.StargazersCount,
			ForkCount:     *item.ForksCount,
			Language:      deref(item.Language),
			DefaultBranch: item.DefaultBranch,
		})
	}

	return repos
}

type workflowRunsResponse struct {
	WorkflowRuns *[]workflowRun `json:"workflow_runs"`
}

type workflowRun struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	DisplayTitle string             `json:"display_title"`
	Status       *string            `json:"status"`
	Conclusion   *string            `json:"conclusion"`
	HeadBranch   string             `json:"head_branch"`
	HTMLURL      string             `json:"html_url"`
	CreatedAt    *time.Time         `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	HeadCommit   *workflowRunCommit `json:"head_commit"`
}

type workflowRunCommit struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Author  struct {
		Name string `json:"name"`
	} `json:"author"`
}

func (r workflowRunsResponse) Validate() error {
	if r.WorkflowRuns == nil {
		return errors.New("missing workflow_runs")
	}
	for i, run := range *r.WorkflowRuns {
		switch {
		case run.Status == nil || *run.Status == "":
			return fmt.Errorf("run %d: missing status", i)
		case run.CreatedAt == nil:
			return fmt.Errorf("run %d: missing created_at", i)
		}
	}
	return nil
}

// ToLatestStatus converts first run to app.WorkflowStatus. Returns nil if there are no runs.
func (r workflowRunsResponse) ToLatestStatus() *app.WorkflowStatus {
	if r.WorkflowRuns == nil || len(*r.WorkflowRuns) == 0 {
		return nil
	}
	run := (*r.WorkflowRuns)[0]

	status := toRunStatus(*run.Status)
	ws := app.WorkflowStatus{
		Name:      run.Name,
		Title:     run.DisplayTitle,
		Status:    status,
		Branch:    run.HeadBranch,
		RunURL:    run.HTMLURL,
		CreatedAt: *run.CreatedAt,
		UpdatedAt: run.UpdatedAt,
	}
	if status == app.RunStatusCompleted {
		ws.Conclusion = toRunConclusion(deref(run.Conclusion))
	}
	if run.HeadCommit != nil {
		ws.Commit = &app.Commit{
			ID:         run.HeadCommit.ID,
			Message:    run.HeadCommit.Message,
			AuthorName: run.HeadCommit.Author.Name,
		}
	}

	return &ws
}

func toRunStatus(s string) app.RunStatus {
	switch s {
	case "completed":
		return app.RunStatusCompleted
	case "in_progress":
		return app.RunStatusInProgress
	default:
		// queued, waiting, requested, pending
		return app.RunStatusPending
	}
}

func toRunConclusion(s string) app.RunConclusion {
	switch s {
	case "success":
		return app.RunConclusionSuccess
	case "failure":
		return app.RunConclusionFailure
	default:
		return app.RunConclusionOther
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
