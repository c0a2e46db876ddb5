package update

import (
	"context"

	"github.com/povilasb/merge-dependabot/internal/scm"
)

// Client is the part of the code-hosting platform API the update workflow
// depends on. scm.GithubClient implements it.
type Client interface {
	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]scm.PullRequest, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*scm.PullRequest, error)
	ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]scm.CheckRun, error)
	BranchHead(ctx context.Context, owner, repo, branch string) (string, error)

	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
	ApprovePullRequest(ctx context.Context, owner, repo string, number int) error
	MergePullRequest(ctx context.Context, owner, repo string, number int) error
}
