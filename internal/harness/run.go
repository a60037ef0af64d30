package harness

import (
	"os"
	"time"

	"rubycore/internal/dispatch"
	"rubycore/internal/eval"
)

// RunFile reads a spec file, scans its it-blocks, and runs each through a
// fresh Evaluator. Each interpreter instance's registry/IC table is
// confined to itself, so concurrency across files in cmd/rubyspec's
// `run all` is safe because nothing here is shared.
func RunFile(path string, observer dispatch.Observer) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	start := time.Now()
	ev := eval.New(observer)
	examples := ScanFile(string(data))
	outcomes := make([]Outcome, 0, len(examples))
	for _, ex := range examples {
		outcomes = append(outcomes, Run(ev, ex))
	}
	return Suite{File: path, Outcomes: outcomes, Elapsed: time.Since(start)}, nil
}
