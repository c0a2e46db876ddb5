package update

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	"github.com/povilasb/merge-dependabot/internal/scm"
	"github.com/povilasb/merge-dependabot/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunContinuesAfterRepositoryFailure(t *testing.T) {
	clt := &testutil.MockClient{}
	clt.On("ListOpenPullRequests", mock.Anything, "acme", "widgets").
		Return(nil, errors.New("401 bad credentials"))
	clt.On("ListOpenPullRequests", mock.Anything, "acme", "gadgets").
		Return([]scm.PullRequest{}, nil)

	r := newTestRunner(t, clt)
	r.Run(context.Background(), []string{"acme/widgets", "acme/gadgets"})

	// The failing first repository must not stop the second one.
	clt.AssertExpectations(t)
}

func TestRunSkipsInvalidRepositoryStrings(t *testing.T) {
	clt := &testutil.MockClient{}
	clt.On("ListOpenPullRequests", mock.Anything, "acme", "widgets").
		Return([]scm.PullRequest{}, nil)

	r := newTestRunner(t, clt)
	r.Run(context.Background(), []string{"not-a-repo", "acme/widgets"})

	clt.AssertExpectations(t)
}

func TestRunProcessesRepositoriesInOrder(t *testing.T) {
	var order []string

	clt := &testutil.MockClient{}
	clt.On("ListOpenPullRequests", mock.Anything, "acme", mock.Anything).
		Run(func(args mock.Arguments) {
			order = append(order, args.String(2))
		}).
		Return([]scm.PullRequest{}, nil)

	r := newTestRunner(t, clt)
	r.Run(context.Background(), []string{"acme/b", "acme/a", "acme/c"})

	if len(order) != 3 || order[0] != "b" || order[1] != "a" || order[2] != "c" {
		t.Errorf("repositories processed out of order: %v", order)
	}
}
