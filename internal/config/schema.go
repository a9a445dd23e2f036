package config

// Config holds bookstruct configuration.
// Stored at: ./bookstruct.yaml or ~/.bookstruct/bookstruct.yaml
//
// Only ambient behavior lives here (logging, CLI output format). Nothing in
// this file may change classification semantics: identical input blocks
// produce identical artifacts under every configuration.
type Config struct {
	Log    LogCfg    `mapstructure:"log" yaml:"log"`
	Output OutputCfg `mapstructure:"output" yaml:"output"`
}

// LogCfg configures the logger.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level"`   // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// OutputCfg configures CLI output.
type OutputCfg struct {
	Format string `mapstructure:"format" yaml:"format"` // default format for inspect: "yaml" or "json"
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
		Output: OutputCfg{
			Format: "yaml",
		},
	}
}
