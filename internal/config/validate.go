package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateResolve(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	names := []struct {
		key   string
		value string
	}{
		{"output.matches_file", c.Output.MatchesFile},
		{"output.solved_file", c.Output.SolvedFile},
		{"output.unsolved_file", c.Output.UnsolvedFile},
	}
	for _, name := range names {
		if !reportNameOK(name.value) {
			return fmt.Errorf("%s must be a file name without directories, got %q", name.key, name.value)
		}
	}
	if c.Output.MatchesFile == c.Output.SolvedFile || c.Output.MatchesFile == c.Output.UnsolvedFile ||
		c.Output.SolvedFile == c.Output.UnsolvedFile {
		return errors.New("output.matches_file, output.solved_file and output.unsolved_file must differ")
	}
	return nil
}

func (c *Config) validateResolve() error {
	if c.Resolve.Workers < 0 {
		return errors.New("resolve.workers must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
