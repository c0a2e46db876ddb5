package update

import (
	"context"

	"go.uber.org/zap"

	"github.com/povilasb/merge-dependabot/internal/logfields"
)

const loggerName = "update"

// Runner walks the configured repositories and advances their Dependabot
// PRs. It holds no state between runs; every invocation re-derives its
// decisions from live remote state.
type Runner struct {
	clt    Client
	logger *zap.Logger
}

func NewRunner(clt Client) *Runner {
	return &Runner{
		clt:    clt,
		logger: zap.L().Named(loggerName),
	}
}

// Run processes the repositories sequentially, in the given order. A failure
// in one repository is logged and does not stop the remaining ones.
func (r *Runner) Run(ctx context.Context, repositories []string) {
	for _, name := range repositories {
		repo, err := ParseRepositoryRef(name)
		if err != nil {
			r.logger.Error(
				"skipping repository",
				logfields.Event("invalid_repository"),
				logfields.Repository(name),
				zap.Error(err),
			)
			continue
		}

		if err := r.processRepository(ctx, repo); err != nil {
			r.logger.Error(
				"processing repository failed",
				logfields.Event("repository_failed"),
				logfields.Repository(repo.String()),
				zap.Error(err),
			)
		}
	}
}

func (r *Runner) processRepository(ctx context.Context, repo RepositoryRef) error {
	prs, err := r.scanRepository(ctx, repo)
	if err != nil {
		return err
	}

	return r.planActions(ctx, repo, prs)
}
