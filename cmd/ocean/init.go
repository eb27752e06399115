// Init command for the ocean CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ocean/internal/paths"
	"github.com/mesh-intelligence/ocean/internal/scenario"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a sample scenario",
		Long:  "Create the configuration directory with a default config.yaml and a sample scenario.yaml.\nExisting files are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}

			cfgData, err := defaultConfigYAML()
			if err != nil {
				return err
			}
			cfgPath := configPath(a.configDir)
			if _, err := writeFileIfMissing(cfgPath, cfgData); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			scenarioPath := filepath.Join(a.configDir, paths.DefaultScenarioName)
			if _, err := writeFileIfMissing(scenarioPath, scenario.Sample); err != nil {
				return fmt.Errorf("write scenario: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Ocean initialized successfully")
			fmt.Fprintln(out, "  config:  ", cfgPath)
			fmt.Fprintln(out, "  scenario:", scenarioPath)
			return nil
		},
	}
}
