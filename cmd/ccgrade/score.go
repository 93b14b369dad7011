package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cmplab/ccgrade"
	"github.com/cmplab/ccgrade/compare"
	"github.com/cmplab/ccgrade/report"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var withDiff bool
	cmd := &cobra.Command{
		Use:   "score <artifact> <expected-file> <actual-file>",
		Short: "Score a single artifact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return scoreFiles(cmd.OutOrStdout(), args[0], args[1], args[2], withDiff)
		},
	}
	cmd.Flags().BoolVar(&withDiff, "diff", false, "show the lines in which the files differ")
	return cmd
}

// scoreFiles compares two artifact files and prints the score.
func scoreFiles(out io.Writer, artifact, expectedFile, actualFile string, withDiff bool) error {
	a, err := ccgrade.ParseArtifact(artifact)
	if err != nil {
		return err
	}
	cmp, err := compare.For(a)
	if err != nil {
		return err
	}
	expected, actual, err := readPair(expectedFile, actualFile)
	if err != nil {
		return err
	}
	score := cmp(expected, actual)
	tracer().Debugf("%s: %s vs %s --> %d", a, expectedFile, actualFile, score)
	if _, err = fmt.Fprintln(out, score); err != nil {
		return err
	}
	if withDiff && score != 0 {
		_, err = io.WriteString(out, report.Diff(expected, actual))
	}
	return err
}

func readPair(expectedFile, actualFile string) (string, string, error) {
	expected, err := os.ReadFile(expectedFile)
	if err != nil {
		return "", "", err
	}
	actual, err := os.ReadFile(actualFile)
	if err != nil {
		return "", "", err
	}
	return string(expected), string(actual), nil
}
