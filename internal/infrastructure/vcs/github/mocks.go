package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, pull)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) RequestReviewers(ctx context.Context, owner, repo string, number int, reviewers github.ReviewersRequest) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, reviewers)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, labels)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.Label), responseArg(args.Get(1)), args.Error(2)
}

type MockRepoService struct {
	mock.Mock
}

func (m *MockRepoService) CompareCommits(ctx context.Context, owner, repo, base, head string, opts *github.ListOptions) (*github.CommitsComparison, *github.Response, error) {
	args := m.Called(ctx, owner, repo, base, head, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.CommitsComparison), responseArg(args.Get(1)), args.Error(2)
}

func responseArg(v interface{}) *github.Response {
	if v == nil {
		return nil
	}
	return v.(*github.Response)
}
