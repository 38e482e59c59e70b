package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"camlink/internal/config"
	"camlink/internal/report"
)

type runOutput struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	DatasetDir    string    `json:"dataset_dir"`
	Records       int       `json:"records"`
	Solved        int       `json:"solved"`
	Unsolved      int       `json:"unsolved"`
	Malformed     int       `json:"malformed"`
	Pairs         int       `json:"pairs"`
	SolvedPairs   int       `json:"solved_pairs"`
	UnsolvedPairs int       `json:"unsolved_pairs"`
}

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded match runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, ok, err := openRunStore(cmd, cfg)
			if err != nil {
				return err
			}
			var runs []report.Run
			if ok {
				defer store.Close()
				if runs, err = store.Runs(cmd.Context(), limit); err != nil {
					return err
				}
			}
			if jsonOutput {
				out := make([]runOutput, 0, len(runs))
				for _, run := range runs {
					out = append(out, toRunOutput(run))
				}
				return writeJSON(cmd, out)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					strconv.Itoa(run.Records),
					strconv.Itoa(run.Solved),
					strconv.Itoa(run.Unsolved),
					strconv.Itoa(run.Pairs),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Run", "Started", "Records", "Solved", "Unsolved", "Pairs"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print runs as JSON")
	cmd.AddCommand(newRunPairsCommand(ctx))
	return cmd
}

func newRunPairsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs [RUN_ID]",
		Short: "Print the pairs of a run as CSV (latest run by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, ok, err := openRunStore(cmd, cfg)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
				return nil
			}
			defer store.Close()

			var runID string
			if len(args) == 1 {
				runID = args[0]
			} else {
				latest, err := store.LatestRun(cmd.Context())
				if err != nil {
					return err
				}
				if latest == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
					return nil
				}
				runID = latest.ID
			}

			pairs, err := store.Pairs(cmd.Context(), runID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "left_spec_id,right_spec_id")
			for _, pair := range pairs {
				fmt.Fprintf(out, "%s,%s\n", pair.Left, pair.Right)
			}
			return nil
		},
	}
}

// openRunStore opens the run history, reporting false when none exists yet.
func openRunStore(cmd *cobra.Command, cfg *config.Config) (*report.Store, bool, error) {
	if _, err := os.Stat(cfg.RunStorePath()); errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	store, err := report.Open(cmd.Context(), cfg.RunStorePath())
	if err != nil {
		return nil, false, err
	}
	return store, true, nil
}

func toRunOutput(run report.Run) runOutput {
	return runOutput{
		ID:            run.ID,
		StartedAt:     run.StartedAt,
		DatasetDir:    run.DatasetDir,
		Records:       run.Records,
		Solved:        run.Solved,
		Unsolved:      run.Unsolved,
		Malformed:     run.Malformed,
		Pairs:         run.Pairs,
		SolvedPairs:   run.SolvedPairs,
		UnsolvedPairs: run.UnsolvedPairs,
	}
}
