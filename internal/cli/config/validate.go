package config

import "fmt"

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q: want %s or %s", c.Output, OutputTable, OutputJSON)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must be >= 0, got %d", c.Parallelism)
	}
	return nil
}
