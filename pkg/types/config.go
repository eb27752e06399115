package types

import "fmt"

// Config holds CLI settings read from config.yaml.
type Config struct {
	Scenario string `json:"scenario" yaml:"scenario,omitempty"`
	LogLevel string `json:"log_level" yaml:"log_level"`
	Output   string `json:"output" yaml:"output"`
}

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Supported output modes.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// knownLogLevels lists the log levels that Validate accepts.
var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// knownOutputs lists the output modes that Validate accepts.
var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		LogLevel: LogLevelInfo,
		Output:   OutputText,
	}
}

// Validate checks that the Config is well-formed. Empty fields are allowed
// and fall back to the defaults.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	if c.Output != "" && !knownOutputs[c.Output] {
		return fmt.Errorf("%w: %q", ErrOutputUnknown, c.Output)
	}
	return nil
}
