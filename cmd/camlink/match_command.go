package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"camlink/internal/config"
	"camlink/internal/workflow"
)

type matchOutput struct {
	RunID     string         `json:"run_id"`
	Stats     workflow.Stats `json:"stats"`
	Reports   []string       `json:"reports"`
	Malformed []string       `json:"malformed,omitempty"`
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var datasetDir string
	var outputDir string
	var skipMalformed bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Resolve every record in the dataset and write match pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathOverride(&cfg.Paths.DatasetDir, datasetDir); err != nil {
				return fmt.Errorf("--dataset: %w", err)
			}
			if err := applyPathOverride(&cfg.Paths.OutputDir, outputDir); err != nil {
				return fmt.Errorf("--out: %w", err)
			}
			if cmd.Flags().Changed("skip-malformed") {
				cfg.Input.SkipMalformed = skipMalformed
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			result, err := workflow.NewRunner(cfg, logger).Run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				out := matchOutput{RunID: result.RunID, Stats: result.Stats, Reports: result.Reports}
				for _, mre := range result.Malformed {
					out.Malformed = append(out.Malformed, mre.ID)
				}
				return writeJSON(cmd, out)
			}
			printMatchSummary(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetDir, "dataset", "", "Dataset directory (overrides paths.dataset_dir)")
	cmd.Flags().StringVar(&outputDir, "out", "", "Report directory (overrides paths.output_dir)")
	cmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "Skip records without a usable page title")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run summary as JSON")
	return cmd
}

func applyPathOverride(target *string, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return err
	}
	*target = expanded
	return nil
}

func printMatchSummary(cmd *cobra.Command, result *workflow.Result) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	stats := result.Stats

	fmt.Fprintln(out, renderSectionHeader("Run "+result.RunID, colorize))
	rows := [][]string{
		{"Records", strconv.Itoa(stats.Records)},
		{"Solved", strconv.Itoa(stats.Solved)},
		{"Unsolved", strconv.Itoa(stats.Unsolved)},
		{"Malformed (skipped)", strconv.Itoa(stats.Malformed)},
		{"Pairs from identities", strconv.Itoa(stats.SolvedPairs)},
		{"Pairs from titles", strconv.Itoa(stats.UnsolvedPairs)},
		{"Pairs total", strconv.Itoa(stats.Pairs)},
		{"Load", roundDuration(stats.LoadDuration)},
		{"Resolve", roundDuration(stats.ResolveDuration)},
		{"Blocking", roundDuration(stats.BlockDuration)},
		{"Total", roundDuration(stats.TotalDuration)},
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
	for _, path := range result.Reports {
		fmt.Fprintf(out, "Wrote %s\n", path)
	}
	if stats.Malformed > 0 {
		fmt.Fprintln(out, renderWarning(fmt.Sprintf("%d malformed records were skipped; see the log for details", stats.Malformed), colorize))
	}
}

func roundDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
