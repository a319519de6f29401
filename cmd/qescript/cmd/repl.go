package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/interp"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive qescript prompt",
	Long: `Start an interactive prompt where each line is evaluated the way the
editor's eval-expression command evaluates it.

Identifiers complete against the registered command names; variable
names are not completed.
History is kept in ~/.qescript_history across sessions.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".qescript_history")
}

func runRepl(_ *cobra.Command, _ []string) error {
	ed, w := newHost()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(prefix string) []string {
		var matches []string
		for _, name := range ed.Commands() {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	if path := historyPath(); path != "" {
		if f, err := os.Open(path); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Printf("qescript %s (type expressions, Ctrl-D to exit)\n", Version)
	for {
		input, err := line.Prompt("qes> ")
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		interp.EvalExpression(w, input, editor.NoArg)
		w = ed.ActiveWindow
	}

	if path := historyPath(); path != "" {
		if f, err := os.Create(path); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}
