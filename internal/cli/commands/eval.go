package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/datepart/internal/cli/config"
	"github.com/leapstack-labs/datepart/pkg/eval"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <query>",
		Short: "Evaluate a single fixture-style query",
		Example: `  datepart eval "SELECT date_part('YEAR', TIMESTAMP '2019-08-12 01:00:00.123456')"
  datepart eval "SELECT extract(DOY FROM DATE '2019-08-12')"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			cols, err := eval.Query(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return renderColumns(cmd.OutOrStdout(), cols, cfg.Output)
		},
	}
}

func renderColumns(w io.Writer, cols []eval.Column, format string) error {
	if format == config.OutputJSON {
		type item struct {
			Label string `json:"label"`
			Value string `json:"value"`
			Type  string `json:"type"`
		}
		items := make([]item, len(cols))
		for i, c := range cols {
			items[i] = item{Label: c.Label, Value: c.Value, Type: c.Type.String()}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Label", "Value", "Type"})
	for _, c := range cols {
		t.AppendRow(table.Row{c.Label, c.Value, c.Type.String()})
	}
	t.Render()
	return nil
}
