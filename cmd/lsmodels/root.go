package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/lsmodels/internal/llm"
	lslog "github.com/davetashner/lsmodels/internal/log"
	"github.com/davetashner/lsmodels/internal/output"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// newLister builds the lister used by the root command. Tests swap it.
var newLister = func() (llm.ModelLister, error) {
	return llm.NewAnthropicLister()
}

// rootCmd lists the models available to the configured API key.
var rootCmd = &cobra.Command{
	Use:   "lsmodels",
	Short: "List the models available to your Anthropic API key",
	Long: `lsmodels prints the identifier of every model the Anthropic API reports
for the key in ANTHROPIC_API_KEY, one per line, in the order the API returns
them. Diagnostics go to stderr; stdout carries only model identifiers.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		lslog.Setup(cmd.ErrOrStderr(), verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runList,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	lister, err := newLister()
	if err != nil {
		return exitError(ExitInvalidArgs, "lsmodels: %v", err)
	}

	models, err := lister.ListModels(cmd.Context())
	if err != nil {
		return exitError(ExitAPIError, "lsmodels: %v", err)
	}
	slog.Debug("models received", "count", len(models))

	if err := output.WriteIDs(cmd.OutOrStdout(), models); err != nil {
		return exitError(ExitOutputError, "lsmodels: %v", err)
	}
	return nil
}

type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
