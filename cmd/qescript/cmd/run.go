package cmd

import (
	"fmt"
	"os"

	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/interp"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a qescript configuration file or inline script",
	Long: `Evaluate a qescript file or inline script against an in-memory editor
host.

Examples:
  # Load a configuration file
  qescript run config.qs

  # Evaluate an inline script
  qescript run -e 'tab-width = 4; insert-string("hello")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	_, w := newHost()

	if evalExpr != "" {
		interp.EvalExpression(w, evalExpr, editor.NoArg)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
	if err := interp.LoadConfigFile(w, args[0]); err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %s\n", args[0])
	}
	return nil
}
