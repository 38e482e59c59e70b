package identification

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"camlink/internal/logging"
	"camlink/internal/rules"
	"camlink/internal/specs"
	"camlink/internal/textutil"
)

// Record is a raw record with the outcome of identity resolution.
type Record struct {
	specs.RawRecord
	// NormalizedTitle is the title after normalization, alias resolution and
	// token merging, joined with single spaces.
	NormalizedTitle string
	Brand           string
	Model           string
}

// Solved reports whether both a brand and a model were resolved.
func (r Record) Solved() bool {
	return r.Brand != "" && r.Model != ""
}

// Identity returns "<brand> <model>" for solved records and "" otherwise.
func (r Record) Identity() string {
	if !r.Solved() {
		return ""
	}
	return r.Brand + " " + r.Model
}

// Resolver resolves record identities. It holds no per-record state, so one
// Resolver may be shared across goroutines.
type Resolver struct {
	workers int
	logger  *slog.Logger
}

// NewResolver creates a Resolver that runs at most workers goroutines in
// ResolveAll. A non-positive workers value means one per CPU.
func NewResolver(workers int, logger *slog.Logger) *Resolver {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Resolver{
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve runs the identification pipeline on a single record.
func (r *Resolver) Resolve(raw specs.RawRecord) Record {
	title := textutil.Normalize(raw.Title)
	tokens := title.Tokens

	ResolveAliases(tokens)
	brand := DetectBrand(tokens)
	entry := rules.Lookup(brand)
	MergeTokens(tokens, entry)

	model := DetectModel(tokens, entry)
	if brand != "" && model != "" {
		model = Canonicalize(entry, model, title)
	}

	return Record{
		RawRecord:       raw,
		NormalizedTitle: textutil.Join(tokens),
		Brand:           brand,
		Model:           model,
	}
}

// ResolveTitle resolves a bare page title, as typed on the command line.
func (r *Resolver) ResolveTitle(title string) Record {
	return r.Resolve(specs.RawRecord{Title: title})
}

// ResolveAll resolves every record in parallel and returns the results in
// input order. It returns only after every record has been resolved, or with
// the context error when ctx is cancelled first.
func (r *Resolver) ResolveAll(ctx context.Context, records []specs.RawRecord) ([]Record, error) {
	start := time.Now()
	out := make([]Record, len(records))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)
	for i := range records {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			out[i] = r.Resolve(records[i])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	solved := 0
	for _, record := range out {
		if record.Solved() {
			solved++
			continue
		}
		r.logger.Debug("record unresolved",
			logging.RecordID(record.ID),
			logging.String("brand", record.Brand),
			logging.String("normalized_title", record.NormalizedTitle),
		)
	}
	logging.WithContext(ctx, r.logger).Info("resolution complete",
		logging.Int("records", len(out)),
		logging.Int("solved", solved),
		logging.Int("unsolved", len(out)-solved),
		logging.Int("workers", r.workers),
		logging.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// Partition splits records into solved and unsolved, preserving order.
func Partition(records []Record) (solved, unsolved []Record) {
	for _, record := range records {
		if record.Solved() {
			solved = append(solved, record)
		} else {
			unsolved = append(unsolved, record)
		}
	}
	return solved, unsolved
}
