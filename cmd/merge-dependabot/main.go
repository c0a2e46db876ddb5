package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "merge-dependabot",
		Short: "Rebase and merge Dependabot PRs",
		Long: `Automatically advances open Dependabot pull requests across
configured repositories: PRs that are behind their base branch are asked to
rebase, PRs with passing checks that are up to date get approved and merged.

Pre-release version bumps (build metadata in the version) are never touched.
Intended to be invoked periodically, e.g. from cron; every run re-evaluates
the live state of the repositories from scratch.

Configuration can be provided via YAML file or command-line flags.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.merge-dependabot/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("github-token", "", "GitHub token (defaults to USER_GITHUB_TOKEN env var)")
	rootCmd.PersistentFlags().StringSlice("repositories", []string{}, "Repositories to process (owner/repo)")

	viper.BindPFlag("github-token", rootCmd.PersistentFlags().Lookup("github-token"))
	viper.BindPFlag("repositories", rootCmd.PersistentFlags().Lookup("repositories"))

	rootCmd.AddCommand(runCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".merge-dependabot"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MERGE_DEPENDABOT")
	viper.AutomaticEnv()

	// Also check for USER_GITHUB_TOKEN specifically
	viper.BindEnv("github-token", "USER_GITHUB_TOKEN")

	err := viper.ReadInConfig()
	if err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
		return
	}

	// A missing file at the default location is fine, the token and
	// repositories may come from flags or the environment. Everything
	// else (explicit --config path, unparsable file) is fatal.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile != "" || !errors.As(err, &notFound) {
		fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		os.Exit(1)
	}
}

// initLogger sets up the process-wide logfmt logger. Components pick it up
// via zap.L().
func initLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.LevelKey = "loglevel"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder

	logger := zap.New(zapcore.NewCore(
		zaplogfmt.NewEncoder(cfg),
		zapcore.Lock(os.Stdout),
		level,
	))

	zap.ReplaceGlobals(logger)

	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
