// Package logfields provides zap field constructors for values that appear
// in log messages of multiple packages, keeping field names consistent.
package logfields

import "go.uber.org/zap"

func PullRequest(val int) zap.Field {
	return zap.Int("github.pull_request", val)
}

func Repository(val string) zap.Field {
	return zap.String("git.repository", val)
}
