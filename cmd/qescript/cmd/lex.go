package cmd

import (
	"fmt"
	"os"

	"github.com/qeforge/qescript/internal/lexer"
	"github.com/spf13/cobra"
)

var showLine bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a qescript file or expression",
	Long: `Tokenize (lex) qescript source and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
source code is tokenized.

Examples:
  # Tokenize a script file
  qescript lex config.qs

  # Tokenize an inline expression
  qescript lex -e 'tab_width = 4'

  # Show token lines
  qescript lex --show-line -e '1 +
  2'`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showLine, "show-line", false, "show the line each token starts on")
}

func lexScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	errCount := 0
	l := lexer.New(filename, input, func(format string, a ...any) {
		errCount++
		fmt.Fprintf(os.Stderr, "lex error: "+format+"\n", a...)
	})

	count := 0
	for {
		tok := l.Next()
		if tok == lexer.EOF {
			break
		}
		count++
		printToken(l, tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", count)
		if errCount > 0 {
			fmt.Printf("Errors: %d\n", errCount)
		}
	}
	if errCount > 0 {
		return fmt.Errorf("found %d lexical error(s)", errCount)
	}
	return nil
}

func printToken(l *lexer.Lexer, tok lexer.Token) {
	var output string
	switch tok {
	case lexer.Ident, lexer.String, lexer.Char, lexer.Number:
		output = fmt.Sprintf("%-12s %q", tok, l.Text())
	default:
		output = tok.String()
	}
	if showLine {
		output += fmt.Sprintf(" @%d", l.TokenLine())
	}
	fmt.Println(output)
}
