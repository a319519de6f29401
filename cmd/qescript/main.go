package main

import (
	"os"

	"github.com/qeforge/qescript/cmd/qescript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
