package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/datepart/pkg/datepart"
	"github.com/leapstack-labs/datepart/pkg/temporal"
)

// NewFieldsCommand creates the fields command.
func NewFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List supported fields, their input kinds, and result types",
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Field", "Applies To", "Result Type"})

			for _, f := range datepart.Fields() {
				t.AppendRow(table.Row{f.String(), kindList(f), f.ResultType().String()})
			}
			t.Render()
		},
	}
}

func kindList(f datepart.Field) string {
	kinds := []temporal.Kind{
		temporal.KindDate,
		temporal.KindTimestamp,
		temporal.KindIntervalYearMonth,
		temporal.KindIntervalDayTime,
	}
	var names []string
	for _, k := range kinds {
		if f.AppliesTo(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, ", ")
}
