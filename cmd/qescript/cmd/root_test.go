package cmd

import "testing"

func TestNewHostRegistersInterpreterCommands(t *testing.T) {
	ed, w := newHost()
	if w == nil || w.Buf == nil {
		t.Fatal("host has no active window")
	}
	for _, name := range []string{"eval-expression", "eval-region", "eval-buffer", "insert-string"} {
		if ed.FindCmd(name) == nil {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "eval", "lex", "repl", "version"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
