package update

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/povilasb/merge-dependabot/internal/scm"
	"github.com/povilasb/merge-dependabot/internal/testutil"
)

func TestScanClassifiesOnlyDependabotPRs(t *testing.T) {
	clt := &testutil.MockClient{}
	clt.On("ListOpenPullRequests", mock.Anything, "acme", "widgets").Return([]scm.PullRequest{
		{Number: 1, Author: "dependabot[bot]", HeadSHA: "head1", BaseRef: "main"},
		{Number: 2, Author: "alice", HeadSHA: "head2", BaseRef: "main"},
		{Number: 3, Author: "dependabot[bot]", HeadSHA: "head3", BaseRef: "main"},
	}, nil)

	clt.On("ListCheckRuns", mock.Anything, "acme", "widgets", "head1").
		Return([]scm.CheckRun{{Name: "ci", Conclusion: "success"}}, nil)
	clt.On("ListCheckRuns", mock.Anything, "acme", "widgets", "head3").
		Return([]scm.CheckRun{{Name: "ci", Conclusion: "failure"}}, nil)
	clt.On("BranchHead", mock.Anything, "acme", "widgets", "main").Return("base-head", nil)
	clt.On("GetPullRequest", mock.Anything, "acme", "widgets", 1).Return(&scm.PullRequest{
		Number:  1,
		Title:   "Bump foo from 1.2.3 to 1.2.4",
		URL:     "https://github.com/acme/widgets/pull/1",
		BaseSHA: "base-head",
	}, nil)
	clt.On("GetPullRequest", mock.Anything, "acme", "widgets", 3).Return(&scm.PullRequest{
		Number:  3,
		Title:   "Bump bar from 2.0.0 to 3.0.0",
		BaseSHA: "stale",
	}, nil)

	r := newTestRunner(t, clt)
	prs, err := r.scanRepository(context.Background(), testRepo)

	require.NoError(t, err)
	require.Len(t, prs, 2)

	require.Equal(t, 1, prs[0].Number)
	require.True(t, prs[0].ChecksPass)
	require.True(t, prs[0].Rebased)
	require.Equal(t, "1.2.4", prs[0].TargetVersion)

	require.Equal(t, 3, prs[1].Number)
	require.False(t, prs[1].ChecksPass)
	require.False(t, prs[1].Rebased)

	clt.AssertExpectations(t)
	clt.AssertNotCalled(t, "GetPullRequest", mock.Anything, "acme", "widgets", 2)
}

func TestScanSingleReadFailureAbortsRepository(t *testing.T) {
	clt := &testutil.MockClient{}
	clt.On("ListOpenPullRequests", mock.Anything, "acme", "widgets").Return([]scm.PullRequest{
		{Number: 1, Author: "dependabot[bot]", HeadSHA: "head1", BaseRef: "main"},
		{Number: 2, Author: "dependabot[bot]", HeadSHA: "head2", BaseRef: "main"},
	}, nil)
	clt.On("ListCheckRuns", mock.Anything, "acme", "widgets", "head1").
		Return(nil, errors.New("502 bad gateway"))

	r := newTestRunner(t, clt)
	prs, err := r.scanRepository(context.Background(), testRepo)

	// No partial results: the second PR is never looked at.
	require.Error(t, err)
	require.Nil(t, prs)
	clt.AssertNotCalled(t, "ListCheckRuns", mock.Anything, "acme", "widgets", "head2")
}

func TestScanUnexpectedRefTypeIsRecoverable(t *testing.T) {
	clt := &testutil.MockClient{}
	clt.On("ListOpenPullRequests", mock.Anything, "acme", "widgets").Return([]scm.PullRequest{
		{Number: 1, Author: "dependabot[bot]", HeadSHA: "head1", BaseRef: "main"},
	}, nil)
	clt.On("ListCheckRuns", mock.Anything, "acme", "widgets", "head1").Return([]scm.CheckRun{}, nil)
	clt.On("BranchHead", mock.Anything, "acme", "widgets", "main").
		Return("", scm.ErrUnexpectedRefType)

	r := newTestRunner(t, clt)
	_, err := r.scanRepository(context.Background(), testRepo)

	require.ErrorIs(t, err, scm.ErrUnexpectedRefType)
}
