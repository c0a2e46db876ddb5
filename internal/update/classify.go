package update

import (
	"strings"

	"github.com/povilasb/merge-dependabot/internal/scm"
)

// Dependabot edits the PR description while a requested rebase is running.
// Detecting that marker is a documented heuristic: it couples us to the
// bot's wording and breaks silently if Dependabot ever rephrases it.
const rebaseMarker = "Dependabot is rebasing this PR"

// classify normalizes the raw remote state of one candidate PR into a
// DependencyPR record. It has no failure modes: a title that does not parse
// yields an empty TargetVersion.
func classify(repo RepositoryRef, pr *scm.PullRequest, checks []scm.CheckRun, baseHead string) DependencyPR {
	checksPass := true
	for _, c := range checks {
		if c.Conclusion == "failure" {
			checksPass = false
			break
		}
	}

	return DependencyPR{
		URL:              pr.URL,
		Number:           pr.Number,
		Repo:             repo,
		ChecksPass:       checksPass,
		Rebased:          pr.BaseSHA == baseHead,
		RebaseInProgress: strings.Contains(pr.Body, rebaseMarker),
		TargetVersion:    TargetVersion(pr.Title),
	}
}
