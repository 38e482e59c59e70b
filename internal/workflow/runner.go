package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"camlink/internal/blocking"
	"camlink/internal/config"
	"camlink/internal/identification"
	"camlink/internal/logging"
	"camlink/internal/report"
	"camlink/internal/specs"
)

// Result describes a finished run.
type Result struct {
	RunID     string
	Stats     Stats
	Pairs     []blocking.Pair
	Reports   []string
	Malformed []*specs.MalformedRecordError
}

// Runner executes match runs for one configuration.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver *identification.Resolver
	now      func() time.Time
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:      cfg,
		logger:   logger,
		resolver: identification.NewResolver(cfg.Resolve.Workers, logger),
		now:      time.Now,
	}
}

// Run loads the dataset, resolves and blocks every record, and writes the
// configured reports. It fails with ErrRunLocked when another run holds the
// output directory.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	startedAt := r.now()
	if err := r.cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(r.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock %s)", ErrRunLocked, r.cfg.LockPath())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	result := &Result{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(r.logger, "workflow"))
	logger.Info("match run started",
		logging.String("dataset_dir", r.cfg.Paths.DatasetDir),
		logging.Int("workers", r.cfg.Resolve.Workers),
	)

	raws, err := r.load(ctx, logger, result)
	if err != nil {
		return nil, err
	}

	stepStart := r.now()
	records, err := r.resolver.ResolveAll(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("resolve records: %w", err)
	}
	result.Stats.ResolveDuration = r.now().Sub(stepStart)

	stepStart = r.now()
	solved, unsolved := identification.Partition(records)
	blocked := blocking.Generate(solved, unsolved)
	result.Pairs = blocked.All.Sorted()
	result.Stats.BlockDuration = r.now().Sub(stepStart)

	result.Stats.Records = len(records)
	result.Stats.Solved = len(solved)
	result.Stats.Unsolved = len(unsolved)
	result.Stats.Pairs = len(blocked.All)
	result.Stats.SolvedPairs = len(blocked.Solved)
	result.Stats.UnsolvedPairs = len(blocked.Unsolved)
	logger.Info("blocking complete",
		logging.Int("pairs", result.Stats.Pairs),
		logging.Int("solved_pairs", result.Stats.SolvedPairs),
		logging.Int("unsolved_pairs", result.Stats.UnsolvedPairs),
		logging.Duration("duration", result.Stats.BlockDuration),
	)

	if err := r.writeReports(result, solved, unsolved); err != nil {
		return nil, err
	}

	result.Stats.TotalDuration = r.now().Sub(startedAt)
	if r.cfg.Output.RecordRuns {
		if err := r.record(ctx, result, startedAt, records); err != nil {
			return nil, err
		}
	}

	logger.Info("match run complete", logging.Args(result.Stats.attrs()...)...)
	return result, nil
}

func (r *Runner) load(ctx context.Context, logger *slog.Logger, result *Result) ([]specs.RawRecord, error) {
	start := r.now()
	raws, err := specs.LoadDir(ctx, r.cfg.Paths.DatasetDir)
	result.Stats.LoadDuration = r.now().Sub(start)
	if err == nil {
		logger.Info("dataset loaded",
			logging.Int("records", len(raws)),
			logging.Duration("duration", result.Stats.LoadDuration),
		)
		return raws, nil
	}

	malformed := specs.Malformed(err)
	if len(malformed) == 0 {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if !r.cfg.Input.SkipMalformed {
		return nil, fmt.Errorf("load dataset: %d malformed records: %w", len(malformed), err)
	}
	for _, mre := range malformed {
		logging.WarnWithContext(logger, "malformed record skipped", "malformed_record",
			logging.RecordID(mre.ID),
			logging.String("path", mre.Path),
			logging.String("reason", mre.Reason),
			logging.String(logging.FieldErrorHint, "fix or remove the file, or set input.skip_malformed = false to fail on it"),
			logging.String(logging.FieldImpact, "record excluded from matching"),
		)
	}
	result.Malformed = malformed
	result.Stats.Malformed = len(malformed)
	logger.Info("dataset loaded",
		logging.Alert("malformed_records_skipped"),
		logging.Int("records", len(raws)),
		logging.Int("malformed", len(malformed)),
		logging.Duration("duration", result.Stats.LoadDuration),
	)
	return raws, nil
}

func (r *Runner) writeReports(result *Result, solved, unsolved []identification.Record) error {
	if err := report.WriteMatches(r.cfg.MatchesPath(), result.Pairs); err != nil {
		return err
	}
	result.Reports = append(result.Reports, r.cfg.MatchesPath())

	if r.cfg.Output.WriteSolved {
		if err := report.WriteSolved(r.cfg.SolvedPath(), solved); err != nil {
			return err
		}
		result.Reports = append(result.Reports, r.cfg.SolvedPath())
	}
	if r.cfg.Output.WriteUnsolved {
		if err := report.WriteUnsolved(r.cfg.UnsolvedPath(), unsolved); err != nil {
			return err
		}
		result.Reports = append(result.Reports, r.cfg.UnsolvedPath())
	}
	return nil
}

func (r *Runner) record(ctx context.Context, result *Result, startedAt time.Time, records []identification.Record) error {
	store, err := report.Open(ctx, r.cfg.RunStorePath())
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	run := result.Stats.run(result.RunID, r.cfg.Paths.DatasetDir, startedAt)
	if err := store.SaveRun(ctx, run, records, result.Pairs); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
