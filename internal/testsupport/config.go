package testsupport

import (
	"path/filepath"
	"testing"

	"camlink/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The dataset directory is <base>/dataset and starts out missing; use
// WriteRecord to populate it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DatasetDir = filepath.Join(base, "dataset")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Resolve.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithSkipMalformed toggles input.skip_malformed.
func WithSkipMalformed(skip bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.SkipMalformed = skip
	}
}

// WithClassificationReports enables the solved and unsolved CSV reports.
func WithClassificationReports() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.WriteSolved = true
		b.cfg.Output.WriteUnsolved = true
	}
}

// WithoutRunHistory disables the SQLite run store.
func WithoutRunHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.RecordRuns = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DatasetDir)
}
