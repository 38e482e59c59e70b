package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeResolve()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("CAMLINK_DATASET_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DatasetDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DatasetDir) == "" {
		c.Paths.DatasetDir = defaultDatasetDir
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}

	var err error
	if c.Paths.DatasetDir, err = expandPath(c.Paths.DatasetDir); err != nil {
		return fmt.Errorf("paths.dataset_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.MatchesFile = strings.TrimSpace(c.Output.MatchesFile)
	if c.Output.MatchesFile == "" {
		c.Output.MatchesFile = defaultMatchesFile
	}
	c.Output.SolvedFile = strings.TrimSpace(c.Output.SolvedFile)
	if c.Output.SolvedFile == "" {
		c.Output.SolvedFile = defaultSolvedFile
	}
	c.Output.UnsolvedFile = strings.TrimSpace(c.Output.UnsolvedFile)
	if c.Output.UnsolvedFile == "" {
		c.Output.UnsolvedFile = defaultUnsolvedFile
	}
}

func (c *Config) normalizeResolve() {
	if c.Resolve.Workers == 0 {
		c.Resolve.Workers = runtime.NumCPU()
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// reportNameOK reports whether name is a plain file name, not a path.
func reportNameOK(name string) bool {
	return name == filepath.Base(name) && name != "." && name != ".."
}
