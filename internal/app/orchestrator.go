package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TopRepositoriesCount is the number of repositories fetched for each profile.
const TopRepositoriesCount = 3

// GithubClient returns details about github users, their repositories and workflow runs.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/m-zajac/ghprofileviewer/internal/app GithubClient
type GithubClient interface {
	User(ctx context.Context, login string) (*Profile, error)
	TopRepositories(ctx context.Context, login string, count int) ([]Repository, error)
	LatestWorkflowRun(ctx context.Context, owner string, repo string) (*WorkflowStatus, error)
}

// Sink receives results of a fetch sequence.
// Each method returns false when given session is no longer active.
type Sink interface {
	SetProfile(session uint64, p Profile) bool
	SetRepositories(session uint64, repos []Repository) bool
	UpsertWorkflowStatus(session uint64, repo string, status WorkflowStatus) bool
	Fail(session uint64, err error) bool
	Settle(session uint64) bool
}

var _ Sink = &Store{}

// Orchestrator runs fetch sequences: profile, then repositories, then workflow run of each repository.
type Orchestrator struct {
	client      GithubClient
	callTimeout time.Duration
	l           logrus.FieldLogger
}

// NewOrchestrator creates new Orchestrator instance.
// callTimeout limits each github call, 0 means no limit.
func NewOrchestrator(client GithubClient, callTimeout time.Duration, l logrus.FieldLogger) *Orchestrator {
	return &Orchestrator{
		client:      client,
		callTimeout: callTimeout,
		l:           l,
	}
}

// Run fetches data for subject and publishes it to sink as soon as each piece is known.
//
// Only profile lookup failure is returned (and published with sink.Fail).
// Repository list failure results in empty list, workflow run failure leaves repository without status.
func (o *Orchestrator) Run(ctx context.Context, session uint64, subject string, sink Sink) error {
	l := o.l.WithFields(logrus.Fields{
		"session": session,
		"subject": subject,
	})

	profile, err := o.user(ctx, subject)
	if err == nil && profile == nil {
		err = TransportError{Err: errors.New("empty user response")}
	}
	if err != nil {
		sink.Fail(session, err)
		return fmt.Errorf("fetching user: %w", err)
	}
	if !sink.SetProfile(session, *profile) {
		l.Debug("session superseded after profile lookup")
		return nil
	}

	repos, err := o.repositories(ctx, subject)
	if err != nil {
		l.Warnf("fetching repositories: %v", err)
		repos = nil
	}
	if !sink.SetRepositories(session, repos) {
		l.Debug("session superseded after repositories lookup")
		return nil
	}

	var wg sync.WaitGroup
	for _, r := range repos {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			run, err := o.workflowRun(ctx, subject, name)
			if err != nil {
				l.WithField("repository", name).Warnf("fetching latest workflow run: %v", err)
				return
			}
			if run == nil {
				return
			}
			sink.UpsertWorkflowStatus(session, name, *run)
		}(r.Name)
	}
	wg.Wait()

	sink.Settle(session)

	return nil
}

func (o *Orchestrator) user(ctx context.Context, subject string) (*Profile, error) {
	ctx, cancel := o.callContext(ctx)
	defer cancel()

	return o.client.User(ctx, subject)
}

func (o *Orchestrator) repositories(ctx context.Context, subject string) ([]Repository, error) {
	ctx, cancel := o.callContext(ctx)
	defer cancel()

	return o.client.TopRepositories(ctx, subject, TopRepositoriesCount)
}

func (o *Orchestrator) workflowRun(ctx context.Context, owner string, repo string) (*WorkflowStatus, error) {
	ctx, cancel := o.callContext(ctx)
	defer cancel()

	return o.client.LatestWorkflowRun(ctx, owner, repo)
}

func (o *Orchestrator) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.callTimeout)
}
