package update

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/povilasb/merge-dependabot/internal/scm"
	"github.com/povilasb/merge-dependabot/internal/testutil"
)

func TestDryClientForwardsReads(t *testing.T) {
	inner := &testutil.MockClient{}
	inner.On("ListOpenPullRequests", mock.Anything, "acme", "widgets").
		Return([]scm.PullRequest{{Number: 1}}, nil)
	inner.On("BranchHead", mock.Anything, "acme", "widgets", "main").
		Return("abc", nil)

	dry := NewDryClient(inner)

	prs, err := dry.ListOpenPullRequests(context.Background(), "acme", "widgets")
	require.NoError(t, err)
	require.Len(t, prs, 1)

	head, err := dry.BranchHead(context.Background(), "acme", "widgets", "main")
	require.NoError(t, err)
	require.Equal(t, "abc", head)

	inner.AssertExpectations(t)
}

func TestDryClientNeverMutates(t *testing.T) {
	// No expectations: the wrapped client must not see any mutating call.
	inner := &testutil.MockClient{}
	dry := NewDryClient(inner)

	ctx := context.Background()
	require.NoError(t, dry.CreateComment(ctx, "acme", "widgets", 1, "@dependabot rebase"))
	require.NoError(t, dry.ApprovePullRequest(ctx, "acme", "widgets", 1))
	require.NoError(t, dry.MergePullRequest(ctx, "acme", "widgets", 1))

	inner.AssertExpectations(t)
}
