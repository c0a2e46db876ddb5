package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/povilasb/merge-dependabot/internal/scm"
	"github.com/povilasb/merge-dependabot/internal/update"
)

var (
	dryRun bool
	runCmd = &cobra.Command{
		Use:   "run [owner/repo...]",
		Short: "Rebase and merge eligible Dependabot PRs",
		Long: `Scan the repositories for open Dependabot pull requests and perform at
most one merge and one rebase request per repository.

If no repositories are specified as arguments, the 'repositories' list from
the config file is used.

A failure in one repository is logged and does not stop the remaining ones;
the process exits non-zero only when configuration or credentials are
missing.`,
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log intended actions without modifying any pull request")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := initLogger()
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	token := viper.GetString("github-token")
	if token == "" {
		return fmt.Errorf("GitHub token not provided. Use --github-token flag or set USER_GITHUB_TOKEN environment variable")
	}

	repos := args
	if len(repos) == 0 {
		repos = viper.GetStringSlice("repositories")
	}
	if len(repos) == 0 {
		return fmt.Errorf("no repositories specified. Use command-line arguments or configure repositories in config file")
	}

	var clt update.Client = scm.NewGithubClient(token)
	if dryRun {
		clt = update.NewDryClient(clt)
	}

	update.NewRunner(clt).Run(ctx, repos)

	return nil
}
