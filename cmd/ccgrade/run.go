package main

import (
	"fmt"
	"slices"

	"github.com/cmplab/ccgrade/report"
	"github.com/cmplab/ccgrade/suite"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		config   string
		format   string
		withDiff bool
	)
	cmd := &cobra.Command{
		Use:   "run [testcase ...]",
		Short: "Grade a suite of test cases",
		Long: `Grade a suite of test cases, described by a YAML configuration file.
Without arguments all test cases of the suite are graded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := suite.Load(config)
			if err != nil {
				return err
			}
			cfg.Diffs = cfg.Diffs || withDiff
			names, err := suite.Discover(cfg)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				for _, name := range args {
					if !slices.Contains(names, name) {
						return fmt.Errorf("%w: %q is not in %s", suite.ErrInvalidTestCase, name, cfg.TestCases)
					}
				}
				names = args
			}
			tracer().Infof("grading %d test cases of phase %s", len(names), cfg.Phase)
			results := suite.Run(cmd.Context(), cfg, names)
			w := report.NewWriter(cmd.OutOrStdout(), f, report.WithDiffs(cfg.Diffs))
			if err = w.Write(results); err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				pterm.Warning.Printfln("%d of %d test cases could not be graded", failed, len(results))
				return errCasesFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "suite.yaml", "suite configuration file")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format [text|table|yaml]")
	cmd.Flags().BoolVar(&withDiff, "diff", false, "show the lines in which artifacts differ")
	return cmd
}
