package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/qeforge/qescript/internal/editor"
	"github.com/qeforge/qescript/internal/interp"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qescript",
	Short: "qescript configuration and expression interpreter",
	Long: `qescript is the embedded configuration and expression language of the
qe editor family.

Scripts are C-like statement sequences evaluated against the editor host:
expressions, if/else, host commands with typed argument specs, and editor
variables with dash/underscore-equivalent names. Configuration files,
prompt expressions and buffer regions all run through the same
interpreter.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// errWriter paints host error messages red on the terminal.
type errWriter struct {
	c *color.Color
}

func (w errWriter) Write(p []byte) (int, error) {
	if _, err := w.c.Fprint(os.Stderr, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// newHost builds the in-memory editor host with the interpreter commands
// registered, wired to the process's standard streams.
func newHost() (*editor.Editor, *editor.Window) {
	e := editor.New(os.Stdout, errWriter{c: color.New(color.FgRed)})
	interp.RegisterCommands(e)
	return e, e.ActiveWindow
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
