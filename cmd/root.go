package cmd

import (
	"context"

	"github.com/corpeningc/compare-rows/internal/logger"
	"github.com/corpeningc/compare-rows/internal/ui"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logJSON  bool
}

// NewRootCommand builds the command tree. Running it without a subcommand
// compares the two files given as arguments.
func NewRootCommand(version string) *cobra.Command {
	rf := &rootFlags{}
	cf := &compareFlags{}

	rootCmd := &cobra.Command{
		Use:           "compare-rows [file1] [file2]",
		Short:         "Compare the rows of two files",
		Long:          "Finds the rows two text files have in common and the rows unique to each, then prints or saves them",
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd, rf)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, cf)
		},
	}

	rootCmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", string(logger.WarnLevel), "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rf.logJSON, "log-json", false, "Write logs as JSON")
	bindCompareFlags(rootCmd, cf)

	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newShellCommand(func() *cobra.Command {
		return NewRootCommand(version)
	}))

	return rootCmd
}

func Execute(version string) error {
	return execute(context.Background(), NewRootCommand(version))
}

// execute runs rootCmd and prints any error as a single line.
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.NewPrinter(rootCmd.ErrOrStderr()).Error("%s", err)
		return err
	}
	return nil
}

func setupLogger(cmd *cobra.Command, rf *rootFlags) error {
	level, err := logger.ParseLevel(rf.logLevel)
	if err != nil {
		return err
	}

	l := logger.NewLogger(&logger.Config{
		Level:      level,
		Output:     cmd.ErrOrStderr(),
		JSON:       rf.logJSON,
		TimeFormat: "15:04:05",
	})
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), l))
	return nil
}
