// Package config loads harness configuration from file, environment,
// and flags.
package config

// Output formats for reports.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config is the resolved harness configuration.
type Config struct {
	// FixturesDir is searched for *.slt files when no paths are given.
	FixturesDir string `koanf:"fixtures_dir"`
	// Output selects the report format: table or json.
	Output string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Parallelism bounds concurrent fixture file execution; 0 means
	// one goroutine per file.
	Parallelism int `koanf:"parallelism"`
}
