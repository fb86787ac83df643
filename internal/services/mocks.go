package services

import (
	"context"

	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) FindOpenPullRequest(ctx context.Context, head, base string) (*models.PullRequest, error) {
	args := m.Called(ctx, head, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PullRequest), args.Error(1)
}

func (m *MockVCSClient) CompareBranches(ctx context.Context, base, head string) (models.BranchDiff, error) {
	args := m.Called(ctx, base, head)
	return args.Get(0).(models.BranchDiff), args.Error(1)
}

func (m *MockVCSClient) CreatePullRequest(ctx context.Context, pr models.NewPullRequest) (*models.PullRequest, error) {
	args := m.Called(ctx, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PullRequest), args.Error(1)
}

func (m *MockVCSClient) AddLabels(ctx context.Context, prNumber int, labels []string) error {
	args := m.Called(ctx, prNumber, labels)
	return args.Error(0)
}

func (m *MockVCSClient) RequestReviewers(ctx context.Context, prNumber int, reviewers []string) error {
	args := m.Called(ctx, prNumber, reviewers)
	return args.Error(0)
}

type MockRiskSummarizer struct {
	mock.Mock
}

func (m *MockRiskSummarizer) SummarizeRisk(ctx context.Context, diff models.BranchDiff) (string, error) {
	args := m.Called(ctx, diff)
	return args.String(0), args.Error(1)
}
