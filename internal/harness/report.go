// Reporter formats a run's outcomes as a per-example ✓/✗ line plus a
// summary count, colored only when stdout is a real terminal
// (github.com/mattn/go-isatty) and with humanized counts
// (github.com/dustin/go-humanize); durations are printed rounded to the
// millisecond.
package harness

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// Suite is one spec file's full run: every example's outcome plus how long
// it took, the unit cmd/rubyspec aggregates across files.
type Suite struct {
	File     string
	Outcomes []Outcome
	Elapsed  time.Duration
}

func (s Suite) Failures() int {
	n := 0
	for _, o := range s.Outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}

// Reporter writes ✓/✗ lines and a trailing summary to w, colorizing only
// when color is true (NewReporter sets it from isatty checks on fd).
type Reporter struct {
	w     io.Writer
	color bool
}

// NewReporter builds a Reporter that colors output only when fd is a real
// terminal.
func NewReporter(w io.Writer, fd uintptr) *Reporter {
	return &Reporter{w: w, color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

func (r *Reporter) mark(ok bool) string {
	symbol := "✗"
	color := "\x1b[31m"
	if ok {
		symbol = "✓"
		color = "\x1b[32m"
	}
	if !r.color {
		return symbol
	}
	return color + symbol + "\x1b[0m"
}

// Report writes one spec file's outcomes and a trailing summary line.
func (r *Reporter) Report(s Suite) {
	fmt.Fprintf(r.w, "%s\n", s.File)
	for _, o := range s.Outcomes {
		fmt.Fprintf(r.w, "  %s %s\n", r.mark(o.Passed), o.Example.Description)
		if !o.Passed && o.Message != "" {
			fmt.Fprintf(r.w, "      %s\n", o.Message)
		}
		if !o.Passed {
			if cause := errors.Unwrap(o.Err); cause != nil {
				fmt.Fprintf(r.w, "      %+v\n", cause)
			}
		}
	}
	failures := s.Failures()
	fmt.Fprintf(r.w, "%s examples, %s failures (%s)\n",
		humanize.Comma(int64(len(s.Outcomes))),
		humanize.Comma(int64(failures)),
		s.Elapsed.Round(time.Millisecond),
	)
}

// Summary writes the aggregate across every spec file run in one `run all`
// invocation.
func (r *Reporter) Summary(suites []Suite) {
	total, failed := 0, 0
	var elapsed time.Duration
	for _, s := range suites {
		total += len(s.Outcomes)
		failed += s.Failures()
		elapsed += s.Elapsed
	}
	fmt.Fprintf(r.w, "\n%s files, %s examples, %s failures in %s\n",
		humanize.Comma(int64(len(suites))),
		humanize.Comma(int64(total)),
		humanize.Comma(int64(failed)),
		elapsed.Round(time.Millisecond),
	)
}
