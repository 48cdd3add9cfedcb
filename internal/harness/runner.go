// Package harness runs golden fixture files against the date_part
// implementation: each embedded query is evaluated and both the result
// values and their reported type strings must match the recorded
// reference output exactly.
package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/datepart/pkg/eval"
	"github.com/leapstack-labs/datepart/pkg/fixture"
)

// Status is the outcome of a single case.
type Status string

// Case outcomes.
const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"  // evaluated, but value or type mismatched
	StatusError Status = "error" // query failed to parse or evaluate
)

// CaseResult is the outcome of one fixture case.
type CaseResult struct {
	Query  string
	Line   int
	Status Status
	Diffs  []string // mismatch descriptions for failed cases
	Err    error    // set for errored cases
}

// FileResult is the outcome of one fixture file.
type FileResult struct {
	Path  string
	Cases []CaseResult
	Err   error // set when the file itself could not be parsed
}

// Runner executes fixture files.
type Runner struct {
	logger *slog.Logger
	// Parallelism bounds concurrent file execution; <= 0 means one
	// goroutine per file.
	Parallelism int
}

// NewRunner creates a Runner logging to the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger}
}

// Run executes the given fixture files concurrently and returns the
// aggregate report. File order in the report matches the input order.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Files:   make([]FileResult, len(paths)),
	}

	g, ctx := errgroup.WithContext(ctx)
	if r.Parallelism > 0 {
		g.SetLimit(r.Parallelism)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Files[i] = r.runFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(report.Started)
	r.logger.Info("run complete",
		"run_id", report.RunID,
		"files", len(report.Files),
		"passed", report.Passed(),
		"failed", report.Failed(),
		"errored", report.Errored(),
		"elapsed", report.Elapsed)
	return report, nil
}

// runFile parses and executes a single fixture file.
func (r *Runner) runFile(path string) FileResult {
	f, err := fixture.ParseFile(path)
	if err != nil {
		r.logger.Error("fixture parse failed", "path", path, "error", err)
		return FileResult{Path: path, Err: err}
	}

	result := FileResult{Path: path, Cases: make([]CaseResult, 0, len(f.Cases))}
	for _, c := range f.Cases {
		cr := runCase(c)
		if cr.Status != StatusPass {
			r.logger.Warn("case did not pass",
				"path", path, "line", c.Line, "status", cr.Status, "query", c.OriginalQuery)
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

// runCase evaluates one case and checks every recorded expectation.
func runCase(c fixture.Case) CaseResult {
	result := CaseResult{Query: c.OriginalQuery, Line: c.Line}

	cols, err := eval.Query(c.SQL)
	if err != nil {
		result.Status = StatusError
		result.Err = err
		return result
	}

	result.Diffs = compare(c.Expected, cols)
	if len(result.Diffs) > 0 {
		result.Status = StatusFail
	} else {
		result.Status = StatusPass
	}
	return result
}

// compare checks recorded expectations against evaluated columns.
// Value entries pair with result columns positionally; typeof entries
// assert the type of the column whose label they wrap.
func compare(expected []fixture.Entry, cols []eval.Column) []string {
	var diffs []string

	next := 0
	for _, e := range expected {
		if e.IsTypeOf() {
			col := findColumn(cols, e.TypeOfLabel())
			switch {
			case col == nil:
				diffs = append(diffs, fmt.Sprintf("no column labeled %q for %s", e.TypeOfLabel(), e.Key))
			case col.Type.String() != e.Value:
				diffs = append(diffs, fmt.Sprintf("type of %q: got %s, want %s", col.Label, col.Type, e.Value))
			}
			continue
		}

		if next >= len(cols) {
			diffs = append(diffs, fmt.Sprintf("missing column for %q", e.Key))
			continue
		}
		col := cols[next]
		next++
		if col.Label != e.Key {
			diffs = append(diffs, fmt.Sprintf("column %d label: got %q, want %q", next, col.Label, e.Key))
		}
		if col.Value != e.Value {
			diffs = append(diffs, fmt.Sprintf("value of %q: got %s, want %s", e.Key, col.Value, e.Value))
		}
	}

	if next < len(cols) {
		diffs = append(diffs, fmt.Sprintf("query returned %d extra column(s)", len(cols)-next))
	}
	return diffs
}

func findColumn(cols []eval.Column, label string) *eval.Column {
	for i := range cols {
		if cols[i].Label == label {
			return &cols[i]
		}
	}
	return nil
}
