package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/datepart/internal/cli/config"
	"github.com/leapstack-labs/datepart/internal/harness"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run [fixture files...]",
		Short: "Run golden fixture files against the extractor",
		Long: `Execute golden fixture files: each embedded query is evaluated and the
result values and reported type strings are checked against the recorded
reference output.

With no arguments, all *.slt files under the fixtures directory are run.`,
		Example: `  # Run everything under ./fixtures
  datepart run

  # Run specific files with a JSON report
  datepart run -o json fixtures/date_part.slt

  # Rerun on change
  datepart run --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			logger := config.GetLogger(ctx)

			paths := args
			if len(paths) == 0 {
				var err error
				paths, err = filepath.Glob(filepath.Join(cfg.FixturesDir, "*.slt"))
				if err != nil {
					return err
				}
				if len(paths) == 0 {
					return fmt.Errorf("no fixture files found in %s", cfg.FixturesDir)
				}
			}

			runner := harness.NewRunner(logger)
			runner.Parallelism = cfg.Parallelism

			if watch {
				err := runner.Watch(ctx, paths, func(report *harness.Report) {
					if err := renderReport(cmd.OutOrStdout(), report, cfg.Output); err != nil {
						logger.Error("failed to render report", "error", err)
					}
				})
				if errors.Is(err, cmd.Context().Err()) {
					return nil
				}
				return err
			}

			report, err := runner.Run(ctx, paths)
			if err != nil {
				return err
			}
			if err := renderReport(cmd.OutOrStdout(), report, cfg.Output); err != nil {
				return err
			}
			if !report.Ok() {
				return fmt.Errorf("%d of %d case(s) did not pass", report.Failed()+report.Errored(), report.Total())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rerun fixtures when they change")
	return cmd
}
