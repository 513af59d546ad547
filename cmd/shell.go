package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corpeningc/compare-rows/internal/ui"
	"github.com/google/shlex"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFileName = ".compare_rows_history"

func newShellCommand(newRoot func() *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive compare-rows shell",
		Long:  "Launch an interactive shell for running comparisons without repeating 'compare-rows' prefix",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runInteractiveShell(cmd.Context(), newRoot, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runInteractiveShell(ctx context.Context, newRoot func() *cobra.Command, out, errOut io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	historyFile := getHistoryFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	names := commandNames(newRoot())
	line.SetCompleter(func(input string) []string {
		return completions(input, names)
	})

	fmt.Fprintln(out, "compare-rows interactive shell. Type 'exit' or press Ctrl+D to quit.")
	fmt.Fprintln(out, "Type 'help' to see available commands.")

	for {
		input, err := line.Prompt("compare-rows> ")
		if err != nil {
			// EOF or Ctrl+C
			fmt.Fprintln(out)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if isExit(input) {
			fmt.Fprintln(out, "Goodbye!")
			break
		}
		if handleSpecialCommand(input, newRoot, out) {
			continue
		}

		executeCommand(ctx, newRoot, input, out, errOut)
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func isExit(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}

// handleSpecialCommand runs shell built-ins and reports whether input was one.
func handleSpecialCommand(input string, newRoot func() *cobra.Command, out io.Writer) bool {
	switch strings.ToLower(input) {
	case "clear", "cls":
		fmt.Fprint(out, "\033[H\033[2J")
		return true
	case "help":
		rootCmd := newRoot()
		rootCmd.SetOut(out)
		rootCmd.Help()
		return true
	case "shell":
		fmt.Fprintln(out, "Already in the compare-rows shell.")
		return true
	}
	return false
}

// executeCommand runs one shell line on a fresh command tree so flags never
// carry over between runs. Errors are printed and the shell keeps going.
func executeCommand(ctx context.Context, newRoot func() *cobra.Command, input string, out, errOut io.Writer) {
	parts, err := shlex.Split(input)
	if err != nil {
		ui.NewPrinter(errOut).Error("%s", err)
		return
	}
	if len(parts) == 0 {
		return
	}

	rootCmd := newRoot()
	rootCmd.SetArgs(parts)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	_ = execute(ctx, rootCmd)
}

func commandNames(rootCmd *cobra.Command) []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.Name() == "shell" || c.Hidden {
			continue
		}
		names = append(names, c.Name())
	}
	return append(names, "help", "exit", "quit", "clear")
}

func completions(input string, names []string) []string {
	var c []string
	for _, name := range names {
		if strings.HasPrefix(name, strings.ToLower(input)) {
			c = append(c, name)
		}
	}
	return c
}

func getHistoryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(homeDir, historyFileName)
}
