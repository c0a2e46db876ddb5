// Package update decides which Dependabot pull requests to rebase or merge
// and performs at most one action of each kind per repository and run.
package update

import (
	"fmt"
	"strings"
)

// RepositoryRef identifies a remote repository.
type RepositoryRef struct {
	Owner string
	Name  string
}

// ParseRepositoryRef splits an "owner/repo" string into a RepositoryRef.
func ParseRepositoryRef(s string) (RepositoryRef, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" {
		return RepositoryRef{}, fmt.Errorf("invalid repository %q, expected owner/repo", s)
	}

	return RepositoryRef{Owner: owner, Name: name}, nil
}

func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// DependencyPR is the classified state of one open Dependabot pull request.
// Values are built fresh from remote state on every run and never mutated.
type DependencyPR struct {
	URL    string // display URL, may be empty
	Number int
	Repo   RepositoryRef

	// ChecksPass is true unless a check run concluded with "failure".
	// Pending, skipped or neutral checks do not block merging on their own.
	ChecksPass bool
	// Rebased is true when the PR's recorded base commit matches the base
	// branch's current head.
	Rebased bool
	// RebaseInProgress is true when the PR body carries Dependabot's
	// rebase-in-flight marker.
	RebaseInProgress bool

	// TargetVersion is the version the PR bumps to, as written in the
	// title. Empty when the title does not parse; such PRs stay eligible.
	TargetVersion string
}
