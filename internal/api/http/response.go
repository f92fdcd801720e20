package http

import (
	"time"

	"github.com/m-zajac/ghprofileviewer/internal/app"
)

type viewResponse struct {
	ID                 string               `json:"id"`
	Session            uint64               `json:"session"`
	Version            uint64               `json:"version"`
	Subject            string               `json:"subject"`
	Phase              app.Phase            `json:"phase"`
	Settled            bool                 `json:"settled"`
	Error              *errorResponse       `json:"error,omitempty"`
	CanRetry           bool                 `json:"canRetry"`
	Profile            *profileResponse     `json:"profile,omitempty"`
	Repositories       []repositoryResponse `json:"repositories,omitempty"`
	RepositoriesLoaded bool                 `json:"repositoriesLoaded"`
}

type errorResponse struct {
	Kind    app.ErrorKind `json:"kind"`
	Message string        `json:"message"`
}

type profileResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatarUrl"`
	URL         string    `json:"url"`
	Bio         string    `json:"bio,omitempty"`
	Company     string    `json:"company,omitempty"`
	Location    string    `json:"location,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	PublicRepos int       `json:"publicRepos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
	MemberSince string    `json:"memberSince"`
}

type repositoryResponse struct {
	Name        string            `json:"name"`
	URL         string            `json:"url"`
	Description string            `json:"description,omitempty"`
	Stars       int               `json:"stars"`
	Forks       int               `json:"forks"`
	Language    string            `json:"language,omitempty"`
	Workflow    *workflowResponse `json:"workflow,omitempty"`
}

type workflowResponse struct {
	Name       string            `json:"name,omitempty"`
	Title      string            `json:"title,omitempty"`
	Status     app.RunStatus     `json:"status"`
	Conclusion app.RunConclusion `json:"conclusion,omitempty"`
	Branch     string            `json:"branch"`
	URL        string            `json:"url"`
	Commit     *commitResponse   `json:"commit,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

type commitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Author  string `json:"author"`
}

func newViewResponse(id string, v app.View) viewResponse {
	resp := viewResponse{
		ID:                 id,
		Session:            v.Session,
		Version:            v.Version,
		Subject:            v.Subject,
		Phase:              v.Phase,
		Settled:            v.Settled,
		CanRetry:           v.CanRetry,
		RepositoriesLoaded: v.RepositoriesKnown,
	}
	if v.Phase == app.PhaseError {
		resp.Error = &errorResponse{
			Kind:    v.ErrorKind,
			Message: v.ErrorMessage,
		}
	}
	if v.Profile != nil {
		p := v.Profile
		resp.Profile = &profileResponse{
			Login:       p.Login,
			Name:        v.DisplayName,
			AvatarURL:   p.AvatarURL,
			URL:         p.HTMLURL,
			Bio:         p.Bio,
			Company:     p.Company,
			Location:    p.Location,
			Blog:        p.Blog,
			PublicRepos: p.PublicRepoCount,
			Followers:   p.FollowerCount,
			Following:   p.FollowingCount,
			CreatedAt:   p.CreatedAt,
			MemberSince: v.MemberSince,
		}
	}
	for _, r := range v.Repositories {
		resp.Repositories = append(resp.Repositories, newRepositoryResponse(r))
	}

	return resp
}

func newRepositoryResponse(r app.RepositoryView) repositoryResponse {
	resp := repositoryResponse{
		Name:        r.Name,
		URL:         r.URL,
		Description: r.Description,
		Stars:       r.StarCount,
		Forks:       r.ForkCount,
		Language:    r.Language,
	}
	if w := r.Workflow; w != nil {
		resp.Workflow = &workflowResponse{
			Name:       w.Name,
			Title:      w.Title,
			Status:     w.Status,
			Conclusion: w.Conclusion,
			Branch:     w.Branch,
			URL:        w.RunURL,
			CreatedAt:  w.CreatedAt,
		}
		if c := w.Commit; c != nil {
			resp.Workflow.Commit = &commitResponse{
				ID:      c.ID,
				Message: c.Message,
				Author:  c.AuthorName,
			}
		}
	}

	return resp
}
