package cmd

import (
	"fmt"

	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/interp"
	"github.com/spf13/cobra"
)

var evalInsert bool

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a qescript expression and show its value",
	Long: `Evaluate one qescript expression the way the editor's eval-expression
command does, printing "-> value" for the result.

Examples:
  qescript eval '1 + 2 * 3'
  qescript eval '"a" + "b" + "c"'
  qescript eval --insert '"text placed at point"'`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		_, w := newHost()
		argval := editor.NoArg
		if evalInsert {
			argval = 1
		}
		interp.EvalExpression(w, args[0], argval)
		if evalInsert {
			fmt.Printf("%s\n", w.Buf.Contents())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalInsert, "insert", false, "insert the result at point and print the buffer")
}
