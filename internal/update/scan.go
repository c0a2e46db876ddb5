package update

import (
	"context"
	"fmt"
)

const dependabotLogin = "dependabot[bot]"

// scanRepository classifies every open Dependabot PR of the repository.
// Results keep the order of the PR listing; the planner relies on it.
// A failed read for any single PR aborts the whole scan, there are no
// partial results.
func (r *Runner) scanRepository(ctx context.Context, repo RepositoryRef) ([]DependencyPR, error) {
	pulls, err := r.clt.ListOpenPullRequests(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, err
	}

	var prs []DependencyPR
	for _, p := range pulls {
		if p.Author != dependabotLogin {
			continue
		}

		checks, err := r.clt.ListCheckRuns(ctx, repo.Owner, repo.Name, p.HeadSHA)
		if err != nil {
			return nil, fmt.Errorf("scanning #%d: %w", p.Number, err)
		}

		baseHead, err := r.clt.BranchHead(ctx, repo.Owner, repo.Name, p.BaseRef)
		if err != nil {
			return nil, fmt.Errorf("scanning #%d: %w", p.Number, err)
		}

		detail, err := r.clt.GetPullRequest(ctx, repo.Owner, repo.Name, p.Number)
		if err != nil {
			return nil, fmt.Errorf("scanning #%d: %w", p.Number, err)
		}

		prs = append(prs, classify(repo, detail, checks, baseHead))
	}

	return prs, nil
}
