package update

import (
	"context"

	"go.uber.org/zap"

	"github.com/povilasb/merge-dependabot/internal/logfields"
	"github.com/povilasb/merge-dependabot/internal/scm"
)

// DryClient is a Client that never changes anything on the remote platform.
// Mutating operations are logged and succeed without effect; reads are
// forwarded to the wrapped client, so the decision path runs unchanged.
type DryClient struct {
	clt    Client
	logger *zap.Logger
}

func NewDryClient(clt Client) *DryClient {
	return &DryClient{
		clt:    clt,
		logger: zap.L().Named("dry_client"),
	}
}

func (c *DryClient) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]scm.PullRequest, error) {
	return c.clt.ListOpenPullRequests(ctx, owner, repo)
}

func (c *DryClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*scm.PullRequest, error) {
	return c.clt.GetPullRequest(ctx, owner, repo, number)
}

func (c *DryClient) ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]scm.CheckRun, error) {
	return c.clt.ListCheckRuns(ctx, owner, repo, ref)
}

func (c *DryClient) BranchHead(ctx context.Context, owner, repo, branch string) (string, error) {
	return c.clt.BranchHead(ctx, owner, repo, branch)
}

func (c *DryClient) CreateComment(_ context.Context, owner, repo string, number int, body string) error {
	c.logger.Info(
		"simulated posting a comment, nothing was sent",
		logfields.Repository(owner+"/"+repo),
		logfields.PullRequest(number),
		zap.String("body", body),
	)
	return nil
}

func (c *DryClient) ApprovePullRequest(_ context.Context, owner, repo string, number int) error {
	c.logger.Info(
		"simulated approving a pull request, no review was submitted",
		logfields.Repository(owner+"/"+repo),
		logfields.PullRequest(number),
	)
	return nil
}

func (c *DryClient) MergePullRequest(_ context.Context, owner, repo string, number int) error {
	c.logger.Info(
		"simulated merging a pull request, nothing was merged",
		logfields.Repository(owner+"/"+repo),
		logfields.PullRequest(number),
	)
	return nil
}
