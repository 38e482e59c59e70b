package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"camlink/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("CAMLINK_DATASET_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "state", "camlink")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if !filepath.IsAbs(cfg.Paths.DatasetDir) || !strings.HasSuffix(cfg.Paths.DatasetDir, filepath.Join("Dataset", "2013_camera_specs")) {
		t.Fatalf("unexpected dataset dir: %q", cfg.Paths.DatasetDir)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("expected absolute output dir, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Output.MatchesFile != "matches_from_solved.csv" {
		t.Fatalf("unexpected matches file: %q", cfg.Output.MatchesFile)
	}
	if !cfg.Output.RecordRuns {
		t.Fatal("expected run recording enabled by default")
	}
	if cfg.Output.WriteSolved || cfg.Output.WriteUnsolved {
		t.Fatal("expected classification reports disabled by default")
	}
	if cfg.Resolve.Workers != runtime.NumCPU() {
		t.Fatalf("expected workers to default to NumCPU, got %d", cfg.Resolve.Workers)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.MatchesPath() != filepath.Join(cfg.Paths.OutputDir, "matches_from_solved.csv") {
		t.Fatalf("unexpected matches path: %q", cfg.MatchesPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.StateDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("CAMLINK_DATASET_DIR", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "camlink.toml")

	type payload struct {
		Paths struct {
			DatasetDir string `toml:"dataset_dir"`
			OutputDir  string `toml:"output_dir"`
		} `toml:"paths"`
		Output struct {
			MatchesFile string `toml:"matches_file"`
			WriteSolved bool   `toml:"write_solved"`
		} `toml:"output"`
		Resolve struct {
			Workers int `toml:"workers"`
		} `toml:"resolve"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DatasetDir = filepath.Join(tempDir, "specs")
	custom.Paths.OutputDir = filepath.Join(tempDir, "out")
	custom.Output.MatchesFile = "pairs.csv"
	custom.Output.WriteSolved = true
	custom.Resolve.Workers = 3
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.DatasetDir != filepath.Join(tempDir, "specs") {
		t.Fatalf("expected dataset dir from file, got %q", cfg.Paths.DatasetDir)
	}
	if cfg.MatchesPath() != filepath.Join(tempDir, "out", "pairs.csv") {
		t.Fatalf("unexpected matches path: %q", cfg.MatchesPath())
	}
	if !cfg.Output.WriteSolved {
		t.Fatal("expected write_solved from file")
	}
	if cfg.Output.SolvedFile != "solved_specs.csv" {
		t.Fatalf("expected default solved file, got %q", cfg.Output.SolvedFile)
	}
	if cfg.Resolve.Workers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Resolve.Workers)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased log format, got %q", cfg.Logging.Format)
	}
}

func TestEnvVarOverridesDatasetDir(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "camlink.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\ndataset_dir = \"/from/file\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	envDir := filepath.Join(tempDir, "env-specs")
	t.Setenv("CAMLINK_DATASET_DIR", envDir)

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DatasetDir != envDir {
		t.Fatalf("expected dataset dir from env, got %q", cfg.Paths.DatasetDir)
	}
}

func TestValidateReportsFirstBadReportName(t *testing.T) {
	cfg := config.Default()
	cfg.Output.SolvedFile = "a/solved.csv"
	cfg.Output.UnsolvedFile = "b/unsolved.csv"
	for range 20 {
		err := cfg.Validate()
		if err == nil || !strings.HasPrefix(err.Error(), "output.solved_file ") {
			t.Fatalf("expected output.solved_file to be reported first, got %v", err)
		}
	}
}

func TestEnsureDirectoriesSkipsStateWithoutHistory(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Output.RecordRuns = false

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.OutputDir); err != nil {
		t.Fatalf("expected output dir: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.StateDir); !os.IsNotExist(err) {
		t.Fatalf("expected no state dir without run history, stat err: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"nested report path", func(c *config.Config) { c.Output.MatchesFile = "sub/matches.csv" }, "output.matches_file"},
		{"duplicate report names", func(c *config.Config) { c.Output.SolvedFile = c.Output.MatchesFile }, "must differ"},
		{"negative workers", func(c *config.Config) { c.Resolve.Workers = -1 }, "resolve.workers"},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "camlink.toml")
	if err := os.WriteFile(configPath, []byte("[paths\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("CAMLINK_DATASET_DIR", "")
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Output.MatchesFile != "matches_from_solved.csv" {
		t.Fatalf("unexpected matches file from sample: %q", cfg.Output.MatchesFile)
	}
}
