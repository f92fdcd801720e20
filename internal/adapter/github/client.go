package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghprofileviewer/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns details about github users, repositories and workflow runs.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer    HTTPDoer
	address string

	responseMaxSize int64
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer HTTPDoer, address string) *Client {
	return &Client{
		doer:            doer,
		address:         address,
		responseMaxSize: 1024 * 1024 * 5,
	}
}

// User returns profile of a github user.
// Returns app.NotFoundError if user doesn't exist.
func (c *Client) User(ctx context.Context, login string) (*app.Profile, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	body, err := c.get(ctx, "/users/"+url.PathEscape(login), nil)
	if err != nil {
		if app.IsNotFoundError(err) {
			return nil, app.NotFoundError(fmt.Sprintf("user %s not found", login))
		}
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user response: %w", err)
	}

	return resp.ToProfile(), nil
}

// TopRepositories returns user's repositories with the most stars.
func (c *Client) TopRepositories(ctx context.Context, login string, count int) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	v := make(url.Values)
	v.Set("sort", "stars")
	v.Set("per_page", strconv.Itoa(count))

	body, err := c.get(ctx, "/users/"+url.PathEscape(login)+"/repos", v)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid repositories response: %w", err)
	}

	repos := resp.ToRepositories()
	if len(repos) > count {
		repos = repos[:count]
	}

	return repos, nil
}

// LatestWorkflowRun returns the most recent actions run of a repository.
// Returns nil if repository has no runs.
func (c *Client) LatestWorkflowRun(ctx context.Context, owner string, repo string) (*app.WorkflowStatus, error) {
	if owner == "" {
		return nil, app.InvalidRequestError("repository's owner login cannot be empty")
	}
	if repo == "" {
		return nil, app.InvalidRequestError("repository's name cannot be empty")
	}

	v := make(url.Values)
	v.Set("per_page", "1")

	path := fmt.Sprintf("/repos/%s/%s/actions/runs", url.PathEscape(owner), url.PathEscape(repo))
	body, err := c.get(ctx, path, v)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp workflowRunsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workflow runs response: %w", err)
	}

	return resp.ToLatestStatus(), nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	return c.makeRequest(httpReq)
}

func (c *Client) makeRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", app.TransportError{Err: err})
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, app.NotFoundError("resource not found")
	}
	if resp.StatusCode/100 != 2 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, fmt.Errorf("rate limit exceeded: %w", app.UpstreamError{StatusCode: resp.StatusCode})
		}
		return nil, app.UpstreamError{StatusCode: resp.StatusCode}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.responseMaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", app.TransportError{Err: err})
	}
	if int64(len(b)) > c.responseMaxSize {
		return nil, errors.New("response body too large")
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
