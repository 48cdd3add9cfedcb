package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/datepart/internal/cli/config"
	"github.com/leapstack-labs/datepart/internal/harness"
)

// renderReport writes a harness report in the requested format.
func renderReport(w io.Writer, report *harness.Report, format string) error {
	if format == config.OutputJSON {
		return renderReportJSON(w, report)
	}
	return renderReportTable(w, report)
}

func renderReportTable(w io.Writer, report *harness.Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Line", "Status", "Query", "Detail"})

	for _, f := range report.Files {
		if f.Err != nil {
			t.AppendRow(table.Row{f.Path, "", harness.StatusError, "", f.Err.Error()})
			continue
		}
		for _, c := range f.Cases {
			detail := ""
			switch {
			case c.Err != nil:
				detail = c.Err.Error()
			case len(c.Diffs) > 0:
				detail = c.Diffs[0]
				if len(c.Diffs) > 1 {
					detail += fmt.Sprintf(" (+%d more)", len(c.Diffs)-1)
				}
			}
			t.AppendRow(table.Row{f.Path, c.Line, c.Status, c.Query, detail})
		}
	}
	t.Render()

	_, err := fmt.Fprintf(w, "run %s: %d passed, %d failed, %d errored in %s\n",
		report.RunID, report.Passed(), report.Failed(), report.Errored(), report.Elapsed.Round(1e6))
	return err
}

// jsonReport is the serializable report shape.
type jsonReport struct {
	RunID   string         `json:"run_id"`
	Started string         `json:"started"`
	Elapsed string         `json:"elapsed"`
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Errored int            `json:"errored"`
	Files   []jsonFileItem `json:"files"`
}

type jsonFileItem struct {
	Path  string         `json:"path"`
	Error string         `json:"error,omitempty"`
	Cases []jsonCaseItem `json:"cases,omitempty"`
}

type jsonCaseItem struct {
	Query  string   `json:"query"`
	Line   int      `json:"line"`
	Status string   `json:"status"`
	Diffs  []string `json:"diffs,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func renderReportJSON(w io.Writer, report *harness.Report) error {
	out := jsonReport{
		RunID:   report.RunID,
		Started: report.Started.Format("2006-01-02T15:04:05Z07:00"),
		Elapsed: report.Elapsed.String(),
		Passed:  report.Passed(),
		Failed:  report.Failed(),
		Errored: report.Errored(),
	}
	for _, f := range report.Files {
		item := jsonFileItem{Path: f.Path}
		if f.Err != nil {
			item.Error = f.Err.Error()
		}
		for _, c := range f.Cases {
			ci := jsonCaseItem{
				Query:  c.Query,
				Line:   c.Line,
				Status: string(c.Status),
				Diffs:  c.Diffs,
			}
			if c.Err != nil {
				ci.Error = c.Err.Error()
			}
			item.Cases = append(item.Cases, ci)
		}
		out.Files = append(out.Files, item)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
