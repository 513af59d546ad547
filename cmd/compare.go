package cmd

import (
	"fmt"
	"os"

	"github.com/corpeningc/compare-rows/internal/compare"
	"github.com/corpeningc/compare-rows/internal/files"
	"github.com/corpeningc/compare-rows/internal/session"
	"github.com/corpeningc/compare-rows/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type compareFlags struct {
	trim       bool
	ignoreCase bool
	contains   bool

	action    string
	pager     bool
	commonOut string
	diffAOut  string
	diffBOut  string
}

func newCompareCommand() *cobra.Command {
	cf := &compareFlags{}

	compareCmd := &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Compare two files (default behavior)",
		Long:  "Compares two files. Equivalent to running compare-rows without a subcommand.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, cf)
		},
	}
	bindCompareFlags(compareCmd, cf)

	return compareCmd
}

func bindCompareFlags(cmd *cobra.Command, cf *compareFlags) {
	addOptionFlags(cmd.Flags(), cf)

	cmd.Flags().StringVar(&cf.action, "action", "", "What to do with the results without asking (print, save, abort)")
	cmd.Flags().BoolVar(&cf.pager, "pager", false, "Show printed results in a scrollable viewer")
	cmd.Flags().StringVar(&cf.commonOut, "common-out", "", "Destination for the common rows when saving")
	cmd.Flags().StringVar(&cf.diffAOut, "diff-a-out", "", "Destination for the rows only in the 1st file when saving")
	cmd.Flags().StringVar(&cf.diffBOut, "diff-b-out", "", "Destination for the rows only in the 2nd file when saving")
}

func addOptionFlags(fs *pflag.FlagSet, cf *compareFlags) {
	fs.BoolVarP(&cf.trim, "trim", "t", false, "Trims rows before comparing them")
	fs.BoolVarP(&cf.ignoreCase, "ignorecase", "i", false, "Case insensitive")
	fs.BoolVarP(&cf.contains, "contains", "c", false, "The compare is positive if the row contains the other")
}

func (cf *compareFlags) config(interactive bool) (session.Config, error) {
	cfg := session.Config{
		Options: compare.Options{
			Trim:       cf.trim,
			IgnoreCase: cf.ignoreCase,
			Contains:   cf.contains,
		},
		Interactive: interactive,
		Pager:       cf.pager,
		CommonOut:   cf.commonOut,
		DiffAOut:    cf.diffAOut,
		DiffBOut:    cf.diffBOut,
	}

	if cf.action != "" {
		step, ok := ui.ParseStep(cf.action)
		if !ok {
			return session.Config{}, fmt.Errorf("invalid --action %q (expected print, save or abort)", cf.action)
		}
		cfg.Action = step
	}

	return cfg, nil
}

func runCompare(cmd *cobra.Command, args []string, cf *compareFlags) error {
	cfg, err := cf.config(stdinIsTerminal())
	if err != nil {
		return err
	}

	s := session.New(
		cfg,
		files.NewOS(),
		ui.NewPrinter(cmd.OutOrStdout()),
		ui.NewFormPrompter(),
		ui.Pager{},
	)

	return s.Run(cmd.Context(), argAt(args, 0), argAt(args, 1))
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
