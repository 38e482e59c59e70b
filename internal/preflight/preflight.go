package preflight

import (
	"camlink/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckReadableDirectory("Dataset directory", cfg.Paths.DatasetDir),
		CheckWritableDirectory("Output directory", cfg.Paths.OutputDir),
	}

	// Run history and the run lock live under the state directory.
	if cfg.Output.RecordRuns {
		results = append(results, CheckWritableDirectory("State directory", cfg.Paths.StateDir))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
