package config

// Default values for optional configuration fields.
const (
	DefaultKeyWorkers = 1
	DefaultLogLevel   = "info"
)

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Engine.KeyWorkers == 0 {
		c.Engine.KeyWorkers = DefaultKeyWorkers
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
