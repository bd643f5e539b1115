package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/Tomas-vilte/MatePRAgent/internal/domain/ports"
	"github.com/Tomas-vilte/MatePRAgent/internal/i18n"
	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// Tamaño de página fijo para todos los listados.
const perPage = 100

type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	Merge(ctx context.Context, owner, repo string, number int, commitMessage string, options *github.PullRequestOptions) (*github.PullRequestMergeResult, *github.Response, error)
}

type IssuesService interface {
	GetLabel(ctx context.Context, owner, repo, name string) (*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, label *github.Label) (*github.Label, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
	RemoveLabelForIssue(ctx context.Context, owner, repo string, number int, label string) (*github.Response, error)
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
	EditComment(ctx context.Context, owner, repo string, commentID int64, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type ChecksService interface {
	ListCheckRunsForRef(ctx context.Context, owner, repo, ref string, opts *github.ListCheckRunsOptions) (*github.ListCheckRunsResults, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	checksService ChecksService
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
		checksService: client.Checks,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	checksService ChecksService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		checksService: checksService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// ListOpenPRs obtiene todas las PRs abiertas paginando hasta agotar los resultados.
func (ghc *GitHubClient) ListOpenPRs(ctx context.Context) ([]models.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	var allPRs []models.PullRequest
	for {
		prs, resp, err := ghc.prService.List(ctx, ghc.owner, ghc.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_prs", 0, nil), err)
		}

		for _, pr := range prs {
			labels := make(map[string]bool, len(pr.Labels))
			for _, label := range pr.Labels {
				if label.Name != nil {
					labels[label.GetName()] = true
				}
			}

			allPRs = append(allPRs, models.PullRequest{
				Number:  pr.GetNumber(),
				Title:   pr.GetTitle(),
				HeadSHA: pr.GetHead().GetSHA(),
				Labels:  labels,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allPRs, nil
}

// ListCheckRuns obtiene los check runs del commit paginando hasta agotar los resultados.
func (ghc *GitHubClient) ListCheckRuns(ctx context.Context, sha string) ([]models.CheckRun, error) {
	opts := &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	var allRuns []models.CheckRun
	for {
		results, resp, err := ghc.checksService.ListCheckRunsForRef(ctx, ghc.owner, ghc.repo, sha, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_check_runs", 0, map[string]interface{}{
				"SHA": sha,
			}), err)
		}

		for _, run := range results.CheckRuns {
			allRuns = append(allRuns, models.CheckRun{
				Name:       run.GetName(),
				Status:     run.GetStatus(),
				Conclusion: run.GetConclusion(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRuns, nil
}

// EnsureLabel crea la etiqueta en el repositorio solo si todavía no existe.
func (ghc *GitHubClient) EnsureLabel(ctx context.Context, name, color, description string) error {
	_, resp, err := ghc.issuesService.GetLabel(ctx, ghc.owner, ghc.repo, name)
	if err == nil {
		return nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.ensure_label", 0, map[string]interface{}{
			"Label": name,
		}), err)
	}

	_, _, err = ghc.issuesService.CreateLabel(ctx, ghc.owner, ghc.repo, &github.Label{
		Name:        github.String(name),
		Color:       github.String(color),
		Description: github.String(description),
	})
	if err != nil {
		// Otra corrida pudo habérsenos adelantado entre el GET y el POST.
		if strings.Contains(err.Error(), "already_exists") || strings.Contains(err.Error(), "422") {
			return nil
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.ensure_label", 0, map[string]interface{}{
			"Label": name,
		}), err)
	}
	return nil
}

func (ghc *GitHubClient) AddLabels(ctx context.Context, prNumber int, labels []string) error {
	_, _, err := ghc.issuesService.AddLabelsToIssue(ctx, ghc.owner, ghc.repo, prNumber, labels)
	if err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.add_labels", 0, map[string]interface{}{
			"Number": prNumber,
		}), err)
	}
	return nil
}

func (ghc *GitHubClient) RemoveLabel(ctx context.Context, prNumber int, label string) error {
	_, err := ghc.issuesService.RemoveLabelForIssue(ctx, ghc.owner, ghc.repo, prNumber, label)
	if err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.remove_label", 0, map[string]interface{}{
			"Label":  label,
			"Number": prNumber,
		}), err)
	}
	return nil
}

// ListComments obtiene todos los comentarios del PR paginando hasta agotar los resultados.
func (ghc *GitHubClient) ListComments(ctx context.Context, prNumber int) ([]models.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: perPage,
		},
	}

	var allComments []models.Comment
	for {
		comments, resp, err := ghc.issuesService.ListComments(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_comments", 0, map[string]interface{}{
				"Number": prNumber,
			}), err)
		}

		for _, comment := range comments {
			allComments = append(allComments, models.Comment{
				ID:   comment.GetID(),
				Body: comment.GetBody(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

func (ghc *GitHubClient) CreateComment(ctx context.Context, prNumber int, body string) error {
	_, _, err := ghc.issuesService.CreateComment(ctx, ghc.owner, ghc.repo, prNumber, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_comment", 0, map[string]interface{}{
			"Number": prNumber,
		}), err)
	}
	return nil
}

func (ghc *GitHubClient) UpdateComment(ctx context.Context, commentID int64, body string) error {
	_, _, err := ghc.issuesService.EditComment(ctx, ghc.owner, ghc.repo, commentID, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.update_comment", 0, map[string]interface{}{
			"ID": commentID,
		}), err)
	}
	return nil
}

// MergePR pide un squash merge. Merged solo es true cuando la plataforma lo
// confirma explícitamente en la respuesta.
func (ghc *GitHubClient) MergePR(ctx context.Context, prNumber int, commitTitle string) (models.MergeResult, error) {
	result, _, err := ghc.prService.Merge(ctx, ghc.owner, ghc.repo, prNumber, "", &github.PullRequestOptions{
		MergeMethod: "squash",
		CommitTitle: commitTitle,
	})
	if err != nil {
		return models.MergeResult{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.merge_pr", 0, map[string]interface{}{
			"Number": prNumber,
		}), err)
	}
	if result == nil {
		return models.MergeResult{}, nil
	}

	return models.MergeResult{
		Merged:  result.GetMerged(),
		Message: result.GetMessage(),
	}, nil
}
