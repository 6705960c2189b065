// Command cutpost-bench drives a synthetic cut-pool workload from a YAML
// scenario file and reports what the pool accepted and selected. It
// exists to give this module a runnable entry point and to exercise the
// CLI/serialization dependencies end to end; it calls only the exported
// cutpool API and runs no postsolve reductions.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/solvekit/cutpost/cutpool"
	"github.com/solvekit/cutpost/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "cutpost-bench",
		Short: "Run synthetic cut-pool scenarios",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log postsolve/cutpool diagnostics to stderr")

	root.AddCommand(newRunCmd())
	root.AddCommand(newReportCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a scenario, add its cuts, run one separation round, and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			report, err := runScenario(scenario)
			if err != nil {
				return err
			}
			report.Print(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a YAML scenario file")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

// newReportCmd loads a scenario's cuts into a pool without running a
// separation round, and prints how many cuts were accepted and rejected
// and the pool's post-dedup size — a cheap
// way to check a scenario's cut set for duplicates before spending a
// full run on it.
func newReportCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Load a scenario's cuts and report pool size after deduplication, without separating",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			pool := cutpool.New(scenario.NumCols, scenarioPoolOptions(scenario.Config)...)
			accepted, rejected := 0, 0
			for _, c := range scenario.Cuts {
				if _, err := pool.AddCut(c.Indices, c.Values, c.RHS, c.Integral); err != nil {
					rejected++
					continue
				}
				accepted++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accepted: %d\nrejected: %d\npool size: %d\n", accepted, rejected, pool.NumRows())
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a YAML scenario file")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func runScenario(s *Scenario) (Report, error) {
	opts := scenarioPoolOptions(s.Config)
	pool := cutpool.New(s.NumCols, opts...)

	var report Report
	for _, c := range s.Cuts {
		_, err := pool.AddCut(c.Indices, c.Values, c.RHS, c.Integral)
		if err != nil {
			report.CutsRejected++
			continue
		}
		report.CutsAccepted++
	}

	feastol := s.Config.FeasibilityTolerance
	if feastol == 0 {
		feastol = 1e-7
	}
	report.Selected = pool.Separate(s.Point, s.Bounds.Lower, s.Bounds.Upper, feastol)
	return report, nil
}

func scenarioPoolOptions(cfg ScenarioOptions) []cutpool.Option {
	var opts []cutpool.Option
	if cfg.AgeLimit != nil {
		opts = append(opts, cutpool.WithAgeLimit(*cfg.AgeLimit))
	}
	if cfg.DuplicateParallelismThreshold != nil {
		opts = append(opts, cutpool.WithDuplicateParallelismThreshold(*cfg.DuplicateParallelismThreshold))
	}
	if cfg.SelectionParallelismThreshold != nil {
		opts = append(opts, cutpool.WithSelectionParallelismThreshold(*cfg.SelectionParallelismThreshold))
	}
	return opts
}
