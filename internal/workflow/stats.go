package workflow

import (
	"time"

	"camlink/internal/logging"
	"camlink/internal/report"
)

// Stats counts what a run saw and produced.
type Stats struct {
	Records         int           `json:"records"`
	Solved          int           `json:"solved"`
	Unsolved        int           `json:"unsolved"`
	Malformed       int           `json:"malformed"`
	Pairs           int           `json:"pairs"`
	SolvedPairs     int           `json:"solved_pairs"`
	UnsolvedPairs   int           `json:"unsolved_pairs"`
	LoadDuration    time.Duration `json:"load_duration"`
	ResolveDuration time.Duration `json:"resolve_duration"`
	BlockDuration   time.Duration `json:"block_duration"`
	TotalDuration   time.Duration `json:"total_duration"`
}

func (s Stats) attrs() []logging.Attr {
	return []logging.Attr{
		logging.Int("records", s.Records),
		logging.Int("solved", s.Solved),
		logging.Int("unsolved", s.Unsolved),
		logging.Int("malformed", s.Malformed),
		logging.Int("pairs", s.Pairs),
		logging.Int("solved_pairs", s.SolvedPairs),
		logging.Int("unsolved_pairs", s.UnsolvedPairs),
		logging.Duration("duration", s.TotalDuration),
	}
}

func (s Stats) run(id, datasetDir string, startedAt time.Time) report.Run {
	return report.Run{
		ID:              id,
		StartedAt:       startedAt,
		DatasetDir:      datasetDir,
		Records:         s.Records,
		Solved:          s.Solved,
		Unsolved:        s.Unsolved,
		Malformed:       s.Malformed,
		Pairs:           s.Pairs,
		SolvedPairs:     s.SolvedPairs,
		UnsolvedPairs:   s.UnsolvedPairs,
		ResolveDuration: s.ResolveDuration,
		BlockDuration:   s.BlockDuration,
	}
}
