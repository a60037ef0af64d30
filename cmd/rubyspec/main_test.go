package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets testscript re-exec this test binary as the rubyspec
// command itself, so scripts under testdata/script can run `rubyspec run
// <file>` exactly as a user would from a shell.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"rubyspec": func() int { return run(os.Args[1:]) },
	}))
}

func TestRubyspecCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
