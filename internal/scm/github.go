// Package scm wraps the GitHub REST API behind the small surface the
// update workflow needs.
package scm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/google/go-github/v72/github"
	"golang.org/x/oauth2"
)

const defaultHTTPClientTimeout = time.Minute

// ErrUnexpectedRefType is returned by BranchHead when the branch ref points
// to a git object that is neither a commit nor a tag.
var ErrUnexpectedRefType = errors.New("branch ref does not point to a commit or tag")

type GithubClient struct {
	client *github.Client
}

func NewGithubClient(token string) *GithubClient {
	return &GithubClient{
		client: github.NewClient(newHTTPClient(token)),
	}
}

func newHTTPClient(token string) *http.Client {
	if token == "" {
		return &http.Client{Timeout: defaultHTTPClientTimeout}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c := oauth2.NewClient(context.Background(), ts)
	c.Timeout = defaultHTTPClientTimeout

	return c
}

// withRetry runs fn, retrying with exponential backoff while GitHub reports
// a rate limit. Any other error aborts immediately; callers above this layer
// never retry.
func (g *GithubClient) withRetry(ctx context.Context, fn func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 5 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if isRateLimit(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(bo, ctx))
}

func isRateLimit(err error) bool {
	var rateLimit *github.RateLimitError
	var abuseLimit *github.AbuseRateLimitError

	return errors.As(err, &rateLimit) || errors.As(err, &abuseLimit)
}

// ListOpenPullRequests returns every open pull request of the repository.
func (g *GithubClient) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []PullRequest
	for {
		var pulls []*github.PullRequest
		var resp *github.Response
		err := g.withRetry(ctx, func() error {
			var err error
			pulls, resp, err = g.client.PullRequests.List(ctx, owner, repo, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("listing open pull requests: %w", err)
		}

		for _, p := range pulls {
			result = append(result, convertPullRequest(p))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// GetPullRequest fetches the full detail of a single pull request.
func (g *GithubClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	var pull *github.PullRequest
	err := g.withRetry(ctx, func() error {
		var err error
		pull, _, err = g.client.PullRequests.Get(ctx, owner, repo, number)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetching pull request #%d: %w", number, err)
	}

	pr := convertPullRequest(pull)
	return &pr, nil
}

// ListCheckRuns returns the check runs recorded for a commit.
func (g *GithubClient) ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]CheckRun, error) {
	opts := &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []CheckRun
	for {
		var runs *github.ListCheckRunsResults
		var resp *github.Response
		err := g.withRetry(ctx, func() error {
			var err error
			runs, resp, err = g.client.Checks.ListCheckRunsForRef(ctx, owner, repo, ref, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("listing check runs for %s: %w", ref, err)
		}

		for _, run := range runs.CheckRuns {
			result = append(result, CheckRun{
				Name:       run.GetName(),
				Conclusion: run.GetConclusion(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// BranchHead returns the commit the named branch currently points to.
func (g *GithubClient) BranchHead(ctx context.Context, owner, repo, branch string) (string, error) {
	var ref *github.Reference
	err := g.withRetry(ctx, func() error {
		var err error
		ref, _, err = g.client.Git.GetRef(ctx, owner, repo, "heads/"+branch)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("fetching head of branch %s: %w", branch, err)
	}

	obj := ref.GetObject()
	switch obj.GetType() {
	case "commit", "tag":
		return obj.GetSHA(), nil
	default:
		return "", fmt.Errorf("%w: branch %s points to a %q object", ErrUnexpectedRefType, branch, obj.GetType())
	}
}

// CreateComment posts a comment on a pull request or issue.
func (g *GithubClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("commenting on #%d: %w", number, err)
	}

	return nil
}

// ApprovePullRequest submits an approving review.
func (g *GithubClient) ApprovePullRequest(ctx context.Context, owner, repo string, number int) error {
	_, _, err := g.client.PullRequests.CreateReview(ctx, owner, repo, number, &github.PullRequestReviewRequest{
		Event: github.Ptr("APPROVE"),
	})
	if err != nil {
		return fmt.Errorf("approving #%d: %w", number, err)
	}

	return nil
}

// MergePullRequest merges the pull request with the repository's default
// merge method. The remote may reject the merge, e.g. when a required check
// is still missing; callers decide whether that is an error.
func (g *GithubClient) MergePullRequest(ctx context.Context, owner, repo string, number int) error {
	_, _, err := g.client.PullRequests.Merge(ctx, owner, repo, number, "", nil)
	if err != nil {
		return fmt.Errorf("merging #%d: %w", number, err)
	}

	return nil
}

func convertPullRequest(p *github.PullRequest) PullRequest {
	return PullRequest{
		Number:  p.GetNumber(),
		Title:   p.GetTitle(),
		Body:    p.GetBody(),
		URL:     p.GetHTMLURL(),
		Author:  p.GetUser().GetLogin(),
		HeadSHA: p.GetHead().GetSHA(),
		BaseRef: p.GetBase().GetRef(),
		BaseSHA: p.GetBase().GetSHA(),
	}
}
