package config

// Config is the root configuration for a deduplicator run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig selects where records are read from.
type InputConfig struct {
	Path string `yaml:"path"` // File path; "" means stdin
}

// OutputConfig selects where the result envelope is written.
type OutputConfig struct {
	Path   string `yaml:"path"`   // File path; "" means stdout
	Pretty bool   `yaml:"pretty"` // Indent the envelope
}

// EngineConfig holds dedup engine settings.
type EngineConfig struct {
	KeyWorkers int `yaml:"key_workers"` // Goroutines for the identity-key pre-pass
}

// LogConfig holds diagnostic logging settings. Logs go to stderr; the
// output stream carries only the result envelope.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
