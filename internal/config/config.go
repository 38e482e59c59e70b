package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains dataset and working directory configuration.
type Paths struct {
	DatasetDir string `toml:"dataset_dir"`
	OutputDir  string `toml:"output_dir"`
	StateDir   string `toml:"state_dir"`
}

// Input controls how raw records are read.
type Input struct {
	// SkipMalformed logs and skips records without a usable title instead of
	// failing the run.
	SkipMalformed bool `toml:"skip_malformed"`
}

// Output contains report file names, relative to Paths.OutputDir.
type Output struct {
	MatchesFile   string `toml:"matches_file"`
	SolvedFile    string `toml:"solved_file"`
	UnsolvedFile  string `toml:"unsolved_file"`
	WriteSolved   bool   `toml:"write_solved"`
	WriteUnsolved bool   `toml:"write_unsolved"`
	RecordRuns    bool   `toml:"record_runs"`
}

// Resolve contains settings for the identity resolution pass.
type Resolve struct {
	// Workers bounds the resolution goroutines. Zero means one per CPU.
	Workers int `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for camlink.
//
// Configuration sections by subsystem:
//   - Paths: dataset, report output, and state directories
//   - Input: malformed record handling
//   - Output: report file names and which reports to write
//   - Resolve: resolution pass parallelism
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Input   Input   `toml:"input"`
	Output  Output  `toml:"output"`
	Resolve Resolve `toml:"resolve"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/camlink/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("camlink.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output directory, and the state directory
// when run history is recorded.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.OutputDir}
	if c.Output.RecordRuns {
		dirs = append(dirs, c.Paths.StateDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// MatchesPath returns the absolute path of the match pair report.
func (c *Config) MatchesPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Output.MatchesFile)
}

// SolvedPath returns the absolute path of the solved record report.
func (c *Config) SolvedPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Output.SolvedFile)
}

// UnsolvedPath returns the absolute path of the unsolved record report.
func (c *Config) UnsolvedPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Output.UnsolvedFile)
}

// RunStorePath returns the path of the SQLite run history database.
func (c *Config) RunStorePath() string {
	return filepath.Join(c.Paths.StateDir, "runs.db")
}

// LockPath returns the path of the lock file guarding the output directory.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.OutputDir, ".camlink.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "camlink")
	}
	return defaultStateDirFallback
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
