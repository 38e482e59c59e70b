package config

const (
	defaultDatasetDir       = "Dataset/2013_camera_specs"
	defaultOutputDir        = "."
	defaultStateDirFallback = "~/.local/state/camlink"
	defaultMatchesFile      = "matches_from_solved.csv"
	defaultSolvedFile       = "solved_specs.csv"
	defaultUnsolvedFile     = "unsolved_specs.csv"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DatasetDir: defaultDatasetDir,
			OutputDir:  defaultOutputDir,
			StateDir:   defaultStateDir(),
		},
		Output: Output{
			MatchesFile:  defaultMatchesFile,
			SolvedFile:   defaultSolvedFile,
			UnsolvedFile: defaultUnsolvedFile,
			RecordRuns:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
