package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomas-vilte/MateSync/internal/config"
	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig(dryRun, aiEnabled bool) *config.Config {
	return &config.Config{
		VCS: config.VCSConfig{
			Provider: "github",
			Owner:    "acme",
			Repo:     "backend",
			Token:    "token-123",
		},
		Sync: config.SyncConfig{
			BaseBranch: "develop",
			HeadBranch: "release123",
			DryRun:     dryRun,
		},
		AI: config.AIConfig{
			Enabled:        aiEnabled,
			ActiveProvider: config.AIOpenAI,
			Model:          config.ModelGPTV4oMini,
		},
	}
}

func sampleDiff() models.BranchDiff {
	return models.BranchDiff{
		Commits: []models.Commit{
			{SHA: "abcdef1234567890", Message: "Fix login bug", Author: "Ann"},
			{SHA: "1234567890abcdef", Message: "Harden retry path", Author: "Bob"},
		},
		Files: []models.FileChange{
			{Path: "auth/login.go", Additions: 12, Deletions: 3},
			{Path: "retry/backoff.go", Additions: 5, Deletions: 1},
			{Path: "docs/changelog.md", Additions: 2, Deletions: 0},
		},
	}
}

func TestSyncService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("should stop at the guard when an open PR already exists", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		existing := &models.PullRequest{Number: 42, HTMLURL: "https://github.com/acme/backend/pull/42"}
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(existing, nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, models.OutcomeDuplicate, result.Outcome)
		assert.Equal(t, existing, result.PR)
		mockVCS.AssertNotCalled(t, "CompareBranches", mock.Anything, mock.Anything, mock.Anything)
		mockVCS.AssertNotCalled(t, "CreatePullRequest", mock.Anything, mock.Anything)
	})

	t.Run("should propagate a guard failure", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").
			Return(nil, errors.New("api rate limited"))

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		_, err := service.Sync(ctx, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api rate limited")
		mockVCS.AssertNotCalled(t, "CompareBranches", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report up to date when the compare comes back empty", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(models.BranchDiff{}, nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, models.OutcomeUpToDate, result.Outcome)
		assert.Nil(t, result.PR)
		mockVCS.AssertNotCalled(t, "CreatePullRequest", mock.Anything, mock.Anything)
	})

	t.Run("should never create a PR in dry-run mode", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(sampleDiff(), nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(true, false)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, models.OutcomeDryRun, result.Outcome)
		require.NotNil(t, result.Report)
		assert.Equal(t, "sync release123 → develop", result.Report.Title)
		mockVCS.AssertNotCalled(t, "CreatePullRequest", mock.Anything, mock.Anything)
		mockVCS.AssertNotCalled(t, "AddLabels", mock.Anything, mock.Anything, mock.Anything)
		mockVCS.AssertNotCalled(t, "RequestReviewers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not invoke the summarizer when AI is disabled", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockSummarizer := new(MockRiskSummarizer)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(sampleDiff(), nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithRiskSummarizer(mockSummarizer),
			WithSyncConfig(newTestConfig(true, false)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.NotContains(t, result.Report.Body, "AI Review Insights")
		mockSummarizer.AssertNotCalled(t, "SummarizeRisk", mock.Anything, mock.Anything)
	})

	t.Run("should append the AI section when the summarizer succeeds", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockSummarizer := new(MockRiskSummarizer)
		diff := sampleDiff()
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(diff, nil)
		mockSummarizer.On("SummarizeRisk", ctx, diff).
			Return("Low risk. Focus on the retry path.", nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithRiskSummarizer(mockSummarizer),
			WithSyncConfig(newTestConfig(true, true)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.Contains(t, result.Report.Body, "## 🤖 AI Review Insights")
		assert.Contains(t, result.Report.Body, "Low risk. Focus on the retry path.")
		mockSummarizer.AssertExpectations(t)
	})

	t.Run("should keep the report intact when the summarizer fails", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockSummarizer := new(MockRiskSummarizer)
		diff := sampleDiff()
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(diff, nil)
		mockSummarizer.On("SummarizeRisk", ctx, diff).
			Return("", errors.New("model overloaded"))

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithRiskSummarizer(mockSummarizer),
			WithSyncConfig(newTestConfig(true, true)),
		)

		var degraded bool
		result, err := service.Sync(ctx, func(event models.ProgressEvent) {
			if event.Type == models.ProgressAIDegraded {
				degraded = true
			}
		})

		require.NoError(t, err)
		assert.True(t, degraded)
		expected := BuildSyncReport("release123", "develop", diff)
		assert.Equal(t, expected.Body, result.Report.Body)
	})

	t.Run("should degrade when AI is enabled but no summarizer is wired", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(sampleDiff(), nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(true, true)),
		)

		var degraded bool
		result, err := service.Sync(ctx, func(event models.ProgressEvent) {
			if event.Type == models.ProgressAIDegraded {
				degraded = true
			}
		})

		require.NoError(t, err)
		assert.True(t, degraded)
		assert.NotContains(t, result.Report.Body, "AI Review Insights")
	})

	t.Run("should create the PR with the report and annotate it", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		diff := sampleDiff()
		created := &models.PullRequest{Number: 7, HTMLURL: "https://github.com/acme/backend/pull/7"}

		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(diff, nil)
		mockVCS.On("CreatePullRequest", ctx, mock.MatchedBy(func(pr models.NewPullRequest) bool {
			return pr.Title == "sync release123 → develop" &&
				pr.Head == "release123" &&
				pr.Base == "develop" &&
				pr.MaintainerCanModify
		})).Return(created, nil)
		mockVCS.On("AddLabels", ctx, 7, []string{"auto-backport", "needs-review"}).Return(nil)
		mockVCS.On("RequestReviewers", ctx, 7, []string{"team-lead", "release-owner"}).Return(nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, models.OutcomeCreated, result.Outcome)
		assert.Equal(t, created, result.PR)
		require.Len(t, result.Annotations, 2)
		assert.False(t, result.Annotations[0].Failed())
		assert.False(t, result.Annotations[1].Failed())
		mockVCS.AssertExpectations(t)
	})

	t.Run("should record annotation failures without propagating them", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		created := &models.PullRequest{Number: 9, HTMLURL: "https://github.com/acme/backend/pull/9"}

		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(sampleDiff(), nil)
		mockVCS.On("CreatePullRequest", ctx, mock.Anything).Return(created, nil)
		mockVCS.On("AddLabels", ctx, 9, mock.Anything).Return(errors.New("labels missing"))
		mockVCS.On("RequestReviewers", ctx, 9, mock.Anything).Return(errors.New("user not a collaborator"))

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		result, err := service.Sync(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, models.OutcomeCreated, result.Outcome)
		require.Len(t, result.Annotations, 2)
		assert.Equal(t, "labels", result.Annotations[0].Step)
		assert.True(t, result.Annotations[0].Failed())
		assert.Equal(t, "reviewers", result.Annotations[1].Step)
		assert.True(t, result.Annotations[1].Failed())
	})

	t.Run("should propagate a PR creation failure", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(sampleDiff(), nil)
		mockVCS.On("CreatePullRequest", ctx, mock.Anything).
			Return(nil, errors.New("422 validation failed"))

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		_, err := service.Sync(ctx, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
		mockVCS.AssertNotCalled(t, "AddLabels", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should emit progress events in pipeline order", func(t *testing.T) {
		mockVCS := new(MockVCSClient)
		mockVCS.On("FindOpenPullRequest", ctx, "release123", "develop").Return(nil, nil)
		mockVCS.On("CompareBranches", ctx, "develop", "release123").Return(sampleDiff(), nil)
		mockVCS.On("CreatePullRequest", ctx, mock.Anything).
			Return(&models.PullRequest{Number: 3}, nil)
		mockVCS.On("AddLabels", ctx, 3, mock.Anything).Return(nil)
		mockVCS.On("RequestReviewers", ctx, 3, mock.Anything).Return(nil)

		service := NewSyncService(
			WithSyncVCSClient(mockVCS),
			WithSyncConfig(newTestConfig(false, false)),
		)

		var events []models.ProgressType
		_, err := service.Sync(ctx, func(event models.ProgressEvent) {
			events = append(events, event.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, []models.ProgressType{
			models.ProgressGuardCheck,
			models.ProgressComparing,
			models.ProgressCommitsFound,
			models.ProgressPublishing,
		}, events)
	})
}
