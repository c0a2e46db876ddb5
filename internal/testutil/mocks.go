// Package testutil provides shared test doubles.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/povilasb/merge-dependabot/internal/scm"
)

// MockClient is a mock implementation of update.Client for testing.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]scm.PullRequest, error) {
	args := m.Called(ctx, owner, repo)
	var prs []scm.PullRequest
	if v := args.Get(0); v != nil {
		prs = v.([]scm.PullRequest)
	}
	return prs, args.Error(1)
}

func (m *MockClient) GetPullRequest(ctx context.Context, owner, repo string, number int) (*scm.PullRequest, error) {
	args := m.Called(ctx, owner, repo, number)
	var pr *scm.PullRequest
	if v := args.Get(0); v != nil {
		pr = v.(*scm.PullRequest)
	}
	return pr, args.Error(1)
}

func (m *MockClient) ListCheckRuns(ctx context.Context, owner, repo, ref string) ([]scm.CheckRun, error) {
	args := m.Called(ctx, owner, repo, ref)
	var runs []scm.CheckRun
	if v := args.Get(0); v != nil {
		runs = v.([]scm.CheckRun)
	}
	return runs, args.Error(1)
}

func (m *MockClient) BranchHead(ctx context.Context, owner, repo, branch string) (string, error) {
	args := m.Called(ctx, owner, repo, branch)
	return args.String(0), args.Error(1)
}

func (m *MockClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	args := m.Called(ctx, owner, repo, number, body)
	return args.Error(0)
}

func (m *MockClient) ApprovePullRequest(ctx context.Context, owner, repo string, number int) error {
	args := m.Called(ctx, owner, repo, number)
	return args.Error(0)
}

func (m *MockClient) MergePullRequest(ctx context.Context, owner, repo string, number int) error {
	args := m.Called(ctx, owner, repo, number)
	return args.Error(0)
}
