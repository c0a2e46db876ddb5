package scm

// PullRequest contains the pull request data the update workflow consumes.
//
// The list endpoint fills every field; BaseSHA and Body are only reliable on
// values returned by GetPullRequest, which is why the scanner re-fetches each
// candidate before classifying it.
type PullRequest struct {
	Number  int
	Title   string
	Body    string
	URL     string
	Author  string // login of the account that opened the PR
	HeadSHA string
	BaseRef string // name of the branch the PR merges into
	BaseSHA string // base-branch commit the PR is currently based on
}

// CheckRun is a single CI check result attached to a commit.
type CheckRun struct {
	Name       string
	Conclusion string // "success", "failure", "neutral", ... empty while running
}
