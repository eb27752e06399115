// Config loading for the ocean CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/ocean/internal/paths"
	"github.com/mesh-intelligence/ocean/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyScenario = "scenario"
	cfgKeyLogLevel = "log_level"
	cfgKeyOutput   = "output"

	// Environment overrides for config keys.
	envLogLevel = "OCEAN_LOG_LEVEL"
	envOutput   = "OCEAN_OUTPUT"
)

// configHeader is written above the generated config.yaml.
const configHeader = `# Ocean CLI configuration
#
# scenario:  default scenario file, relative to this directory
# log_level: debug, info, warn or error
# output:    text or json
`

// loadConfig reads config.yaml from configDir using Viper. A missing
// config directory or config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyOutput, defaults.Output)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.BindEnv(cfgKeyLogLevel, envLogLevel); err != nil {
		return types.Config{}, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv(cfgKeyOutput, envOutput); err != nil {
		return types.Config{}, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Scenario: v.GetString(cfgKeyScenario),
		LogLevel: v.GetString(cfgKeyLogLevel),
		Output:   v.GetString(cfgKeyOutput),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// writeFileIfMissing writes data to path unless the file already exists.
// Returns true if the file was written.
func writeFileIfMissing(path string, data []byte) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// defaultConfigYAML renders the config.yaml written by "ocean init".
func defaultConfigYAML() ([]byte, error) {
	cfg := types.DefaultConfig()
	cfg.Scenario = paths.DefaultScenarioName

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append([]byte(configHeader), data...), nil
}

// configPath returns the config.yaml path inside configDir.
func configPath(configDir string) string {
	return filepath.Join(configDir, paths.ConfigFileName)
}
