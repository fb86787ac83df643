package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateSync/internal/domain/errors"
	"github.com/Tomas-vilte/MateSync/internal/domain/models"
	"github.com/Tomas-vilte/MateSync/internal/domain/ports"
	"github.com/Tomas-vilte/MateSync/internal/i18n"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
	RequestReviewers(ctx context.Context, owner, repo string, number int, reviewers github.ReviewersRequest) (*github.PullRequest, *github.Response, error)
}

type IssuesService interface {
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

type RepositoriesService interface {
	CompareCommits(ctx context.Context, owner, repo, base, head string, opts *github.ListOptions) (*github.CommitsComparison, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	repoService   RepositoriesService
	owner         string
	repo          string
	trans         *i18n.Translations
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		repoService:   client.Repositories,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	repoService RepositoriesService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		repoService:   repoService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// FindOpenPullRequest busca un PR abierto con el mismo par head/base.
// GitHub filtra head con el formato "owner:rama".
func (ghc *GitHubClient) FindOpenPullRequest(ctx context.Context, head, base string) (*models.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State: "open",
		Head:  fmt.Sprintf("%s:%s", ghc.owner, head),
		Base:  base,
	}

	prs, _, err := ghc.prService.List(ctx, ghc.owner, ghc.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.find_pr", 0, map[string]interface{}{
			"Head": head,
			"Base": base,
		}), err)
	}

	if len(prs) == 0 {
		return nil, nil
	}

	pr := prs[0]
	return &models.PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		Head:    pr.GetHead().GetRef(),
		Base:    pr.GetBase().GetRef(),
		HTMLURL: pr.GetHTMLURL(),
	}, nil
}

// CompareBranches obtiene el compare de tres puntos base...head y lo mapea al
// modelo de dominio preservando el orden que devuelve la plataforma.
func (ghc *GitHubClient) CompareBranches(ctx context.Context, base, head string) (models.BranchDiff, error) {
	comparison, resp, err := ghc.repoService.CompareCommits(ctx, ghc.owner, ghc.repo, base, head, &github.ListOptions{
		PerPage: 100,
	})
	if err != nil {
		status := 0
		message := ""
		if resp != nil {
			status = resp.StatusCode
		}
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) {
			message = ghErr.Message
		}
		return models.BranchDiff{}, domainErrors.NewCompareFailedError(base, head, status, message, err)
	}

	diff := models.BranchDiff{
		Commits: make([]models.Commit, 0, len(comparison.Commits)),
		Files:   make([]models.FileChange, 0, len(comparison.Files)),
	}

	for _, commit := range comparison.Commits {
		diff.Commits = append(diff.Commits, models.Commit{
			SHA:     commit.GetSHA(),
			Message: commit.GetCommit().GetMessage(),
			Author:  commit.GetCommit().GetAuthor().GetName(),
		})
	}

	for _, file := range comparison.Files {
		diff.Files = append(diff.Files, models.FileChange{
			Path:      file.GetFilename(),
			Additions: file.GetAdditions(),
			Deletions: file.GetDeletions(),
		})
	}

	return diff, nil
}

// CreatePullRequest crea el PR de sincronización. Un status no-2xx es fatal
// y el cuerpo de la respuesta se expone en el error.
func (ghc *GitHubClient) CreatePullRequest(ctx context.Context, pr models.NewPullRequest) (*models.PullRequest, error) {
	newPR := &github.NewPullRequest{
		Title:               github.Ptr(pr.Title),
		Head:                github.Ptr(pr.Head),
		Base:                github.Ptr(pr.Base),
		Body:                github.Ptr(pr.Body),
		MaintainerCanModify: github.Ptr(pr.MaintainerCanModify),
	}

	created, resp, err := ghc.prService.Create(ctx, ghc.owner, ghc.repo, newPR)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, domainErrors.NewPRCreationFailedError(pr.Head, pr.Base, status, err)
	}

	return &models.PullRequest{
		Number:  created.GetNumber(),
		Title:   created.GetTitle(),
		Head:    created.GetHead().GetRef(),
		Base:    created.GetBase().GetRef(),
		HTMLURL: created.GetHTMLURL(),
	}, nil
}

// AddLabels agrega etiquetas al PR. Los PRs son issues para la API de labels.
func (ghc *GitHubClient) AddLabels(ctx context.Context, prNumber int, labels []string) error {
	cleaned := make([]string, 0, len(labels))
	for _, label := range labels {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	_, _, err := ghc.issuesService.AddLabelsToIssue(ctx, ghc.owner, ghc.repo, prNumber, cleaned)
	if err != nil {
		return fmt.Errorf("error al agregar etiquetas al PR #%d: %w", prNumber, err)
	}
	return nil
}

// RequestReviewers solicita revisores para el PR.
func (ghc *GitHubClient) RequestReviewers(ctx context.Context, prNumber int, reviewers []string) error {
	if len(reviewers) == 0 {
		return nil
	}

	_, _, err := ghc.prService.RequestReviewers(ctx, ghc.owner, ghc.repo, prNumber, github.ReviewersRequest{
		Reviewers: reviewers,
	})
	if err != nil {
		return fmt.Errorf("error al solicitar revisores para el PR #%d: %w", prNumber, err)
	}
	return nil
}
