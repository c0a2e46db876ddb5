package update

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/povilasb/merge-dependabot/internal/logfields"
)

// Asks Dependabot to rebase the PR; the bot performs the git work
// asynchronously in its own time.
const rebaseCommand = "@dependabot rebase"

// planActions performs at most one merge and at most one rebase request for
// the repository, picked from the classified PR list in scan order:
//
//  1. PRs whose target version carries build metadata ("+") are never
//     touched automatically.
//  2. If a rebase is already in flight, nothing happens this run, to avoid
//     racing the bot.
//  3. The first PR that passes checks and is up to date with its base gets
//     approved and merged. A rejected merge is logged and otherwise ignored.
//  4. The first PR that is behind its base, excluding a PR merged in step 3,
//     gets a rebase request.
//
// The classified list is the single source of truth for both picks; remote
// state changed by step 3 is not re-read.
func (r *Runner) planActions(ctx context.Context, repo RepositoryRef, prs []DependencyPR) error {
	candidates := make([]DependencyPR, 0, len(prs))
	for _, pr := range prs {
		if strings.Contains(pr.TargetVersion, "+") {
			r.logger.Debug(
				"skipping pre-release upgrade",
				logfields.Repository(repo.String()),
				logfields.PullRequest(pr.Number),
				zap.String("target_version", pr.TargetVersion),
			)
			continue
		}
		candidates = append(candidates, pr)
	}

	if len(candidates) == 0 {
		r.logger.Info(
			"no dependabot pull requests to merge",
			logfields.Event("no_candidates"),
			logfields.Repository(repo.String()),
		)
		return nil
	}

	for _, pr := range candidates {
		if pr.RebaseInProgress {
			r.logger.Info(
				"a rebase is already in progress, skipping further actions",
				logfields.Event("rebase_in_progress"),
				logfields.Repository(repo.String()),
				logfields.PullRequest(pr.Number),
			)
			return nil
		}
	}

	merged, err := r.maybeMergeOne(ctx, candidates)
	if err != nil {
		return err
	}

	for _, pr := range candidates {
		if pr.Rebased {
			continue
		}
		if merged != nil && pr.Number == merged.Number {
			continue
		}

		r.logger.Info(
			"requesting rebase",
			logfields.Event("rebase_requested"),
			logfields.Repository(repo.String()),
			logfields.PullRequest(pr.Number),
			zap.String("url", pr.URL),
		)

		if err := r.clt.CreateComment(ctx, pr.Repo.Owner, pr.Repo.Name, pr.Number, rebaseCommand); err != nil {
			return fmt.Errorf("requesting rebase of #%d: %w", pr.Number, err)
		}

		return nil
	}

	return nil
}

// maybeMergeOne approves and merges the first PR that passes checks and is
// up to date with its base. A merge the remote rejects (conflict, branch
// protection, missing required check) is an expected steady state, not a
// fault: it is logged and reported as "nothing merged".
func (r *Runner) maybeMergeOne(ctx context.Context, prs []DependencyPR) (*DependencyPR, error) {
	for _, pr := range prs {
		if !pr.ChecksPass || !pr.Rebased {
			continue
		}

		r.logger.Info(
			"merging pull request",
			logfields.Event("merging"),
			logfields.Repository(pr.Repo.String()),
			logfields.PullRequest(pr.Number),
			zap.String("url", pr.URL),
		)

		if err := r.clt.ApprovePullRequest(ctx, pr.Repo.Owner, pr.Repo.Name, pr.Number); err != nil {
			return nil, fmt.Errorf("approving #%d: %w", pr.Number, err)
		}

		if err := r.clt.MergePullRequest(ctx, pr.Repo.Owner, pr.Repo.Name, pr.Number); err != nil {
			r.logger.Info(
				"merge was rejected",
				logfields.Event("merge_rejected"),
				logfields.Repository(pr.Repo.String()),
				logfields.PullRequest(pr.Number),
				zap.Error(err),
			)
			return nil, nil
		}

		return &pr, nil
	}

	return nil, nil
}
