package config

import "fmt"

// Validate checks that all values are valid.
func (c *Config) Validate() error {
	if c.Engine.KeyWorkers < 1 {
		return fmt.Errorf("engine.key_workers must be >= 1, got %d", c.Engine.KeyWorkers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}
