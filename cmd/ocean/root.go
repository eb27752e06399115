// Root command for the ocean CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/ocean/internal/paths"
	"github.com/mesh-intelligence/ocean/pkg/ocean"
	"github.com/mesh-intelligence/ocean/pkg/types"
)

// app carries global flag values and the state set up by the root command
// for its subcommands.
type app struct {
	flagConfigDir string
	flagJSON      bool
	flagVerbose   bool

	configDir string
	config    types.Config
	logger    *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "ocean",
		Short:        "Ocean simulates beaches, crab clans and shared reefs",
		Version:      ocean.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flagConfigDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/ocean)")
	root.PersistentFlags().BoolVar(&a.flagJSON, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newSimulateCmd(a))

	return root
}

// setup resolves the config directory, loads config.yaml and builds the
// logger.
func (a *app) setup() error {
	configDir, err := paths.ResolveConfigDir(a.flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.config = cfg

	logger, err := newLogger(cfg.LogLevel, a.flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

// jsonOutput reports whether results should be printed as JSON.
func (a *app) jsonOutput() bool {
	return a.flagJSON || a.config.Output == types.OutputJSON
}

// newLogger builds a production zap logger at the configured level;
// verbose forces debug.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", types.ErrLogLevelUnknown, level)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
