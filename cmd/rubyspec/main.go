// cmd/rubyspec/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"rubycore/internal/config"
	"rubycore/internal/dispatch"
	"rubycore/internal/harness"
	"rubycore/internal/ic"
	"rubycore/internal/telemetry"
)

const version = "0.1.0"

// commandAliases maps rubyspec's short command aliases onto their full
// command names.
var commandAliases = map[string]string{
	"r": "run",
	"v": "version",
	"h": "help",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main's body factored out so a testscript-driven test can invoke it
// in-process as a registered subcommand instead of only via a real exec.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	switch cmd {
	case "--help", "-h", "help":
		showUsage()
	case "--version", "version":
		fmt.Printf("rubyspec %s\n", version)
	case "run":
		if err := runCommand(args[1:]); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		showUsage()
		return 1
	}
	return 0
}

func runCommand(args []string) error {
	debug := false
	var target string
	for _, a := range args {
		switch a {
		case "--debug":
			debug = true
		default:
			if target == "" {
				target = a
			}
		}
	}
	if target == "" {
		return fmt.Errorf("usage: rubyspec run (all|<file>) [--debug]")
	}

	observer, closeObserver, err := buildObserver(debug)
	if err != nil {
		return err
	}
	defer closeObserver()

	reporter := harness.NewReporter(os.Stdout, os.Stdout.Fd())

	if target == "all" {
		return runAll(observer, reporter)
	}
	return runOne(target, observer, reporter)
}

// buildObserver wires internal/telemetry's Store (and, with --debug,
// Stream) into the run as a dispatch.Observer. Observability is always
// diagnostic exhaust — disabling it changes nothing about the run's
// outcome.
func buildObserver(debug bool) (dispatch.Observer, func(), error) {
	store, err := telemetry.Open("rubyspec-telemetry.sqlite")
	if err != nil {
		return nil, func() {}, err
	}
	closeFn := func() { store.Close() }
	if !debug {
		return store, closeFn, nil
	}

	stream := telemetry.NewStream()
	go serveDebugStream(stream)
	fan := telemetry.Fanout{Observers: []interface {
		OnTransition(siteID, method string, from, to ic.StateType)
		OnDispatch(siteID, method, class string, hit bool)
	}{store, stream}}
	return fan, closeFn, nil
}

// serveDebugStream exposes the live transition/dispatch feed for a
// connected debug client; rubyspec run --debug just starts listening and
// keeps running the spec files regardless of whether anyone connects.
func serveDebugStream(stream *telemetry.Stream) {
	mux := http.NewServeMux()
	mux.Handle("/debug", stream)
	_ = http.ListenAndServe("127.0.0.1:7331", mux)
}

func runOne(path string, observer dispatch.Observer, reporter *harness.Reporter) error {
	suite, err := harness.RunFile(path, observer)
	if err != nil {
		return err
	}
	reporter.Report(suite)
	if suite.Failures() > 0 {
		os.Exit(1)
	}
	return nil
}

// runAll runs every discovered spec file concurrently, one interpreter
// instance per file (state is confined per interpreter), using
// golang.org/x/sync/errgroup instead of a hand-rolled WaitGroup+channel.
func runAll(observer dispatch.Observer, reporter *harness.Reporter) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	files, err := config.ResolveFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No spec files found")
		return nil
	}

	suites := make([]harness.Suite, len(files))
	g, _ := errgroup.WithContext(context.Background())
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			suite, err := harness.RunFile(f, observer)
			if err != nil {
				return err
			}
			suites[i] = suite
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range suites {
		reporter.Report(s)
	}
	reporter.Summary(suites)

	for _, s := range suites {
		if s.Failures() > 0 {
			os.Exit(1)
		}
	}
	return nil
}

func showUsage() {
	fmt.Println("rubyspec - spec-file harness for the Ruby dispatch core")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rubyspec run all [--debug]   Run every discovered spec file      (alias: r)")
	fmt.Println("  rubyspec run <file> [--debug] Run a single spec file")
	fmt.Println("  rubyspec version              Show version                       (alias: v)")
	fmt.Println("  rubyspec help                 Show this message                  (alias: h)")
	fmt.Println()
	fmt.Println("Spec file discovery (run all):")
	fmt.Println("  rubyspec.json in the current directory, if present, else")
	fmt.Println("  every *.rb file under ./spec")
	fmt.Println()
	fmt.Println("Observability:")
	fmt.Println("  every run persists IC transitions/dispatch events to")
	fmt.Println("  rubyspec-telemetry.sqlite; --debug also streams them live over")
	fmt.Println("  a websocket for a connected debug client")
}
