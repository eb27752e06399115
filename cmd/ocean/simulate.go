// Simulate command for the ocean CLI.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/ocean/internal/paths"
	"github.com/mesh-intelligence/ocean/internal/scenario"
)

func newSimulateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "Run a scenario and report the resulting ocean",
		Long: `Simulate builds the beaches and reefs described by a scenario file,
runs its hunts and clan contests, and prints a report.

The scenario file is taken from the argument, then OCEAN_SCENARIO, then the
"scenario" key of config.yaml, then scenario.yaml in the config directory.

Example:
  ocean simulate
  ocean simulate reefs/north.yaml --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			path, err := paths.ResolveScenario(arg, a.config.Scenario, a.configDir)
			if err != nil {
				return fmt.Errorf("resolve scenario: %w", err)
			}
			a.logger.Debug("loading scenario", zap.String("path", path))

			sc, err := scenario.Load(path)
			if err != nil {
				return err
			}
			report, err := scenario.Run(sc, a.logger)
			if err != nil {
				return fmt.Errorf("run scenario: %w", err)
			}

			if a.jsonOutput() {
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

// printReport writes the human-readable form of a scenario report.
func printReport(w io.Writer, r *scenario.Report) {
	for i, b := range r.Beaches {
		fmt.Fprintf(w, "Beach %d %s (%s)\n", i, b.Name, b.BeachID)
		fmt.Fprintf(w, "  crabs:   %d\n", b.Size)
		if b.Fastest != nil {
			fmt.Fprintf(w, "  fastest: %s (speed %d)\n", b.Fastest.Name, b.Fastest.Speed)
		} else {
			fmt.Fprintln(w, "  fastest: none")
		}
		largest := b.LargestClan
		if largest == "" {
			largest = "none"
		}
		fmt.Fprintf(w, "  clans:   %d (largest: %s)\n", b.ClanCount, largest)
		ids := make([]string, 0, len(b.Clans))
		for id := range b.Clans {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "    %s: %s\n", id, strings.Join(b.Clans[id], ", "))
		}
	}

	for i, reef := range r.Reefs {
		fmt.Fprintf(w, "Reef %d (%s)\n", i, reef.ReefID)
		fmt.Fprintf(w, "  population: %d\n", reef.Population)
		kinds := make([]string, 0, len(reef.Census))
		for k := range reef.Census {
			kinds = append(kinds, k)
		}
		slices.Sort(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "    %s: %d\n", k, reef.Census[k])
		}
	}

	if len(r.Hunts) > 0 {
		fmt.Fprintln(w, "Hunts")
		for _, h := range r.Hunts {
			outcome := "went hungry"
			if h.Ate {
				outcome = "ate"
			}
			fmt.Fprintf(w, "  beach %d %s on reef %d: %s\n", h.Beach, h.Crab, h.Reef, outcome)
		}
	}

	if len(r.Contests) > 0 {
		fmt.Fprintln(w, "Contests")
		for _, c := range r.Contests {
			var outcome string
			switch {
			case c.Error != "":
				outcome = "invalid: " + c.Error
			case c.Tie:
				outcome = "tie"
			default:
				outcome = "winner " + c.Winner
			}
			fmt.Fprintf(w, "  beach %d %s vs %s: %s\n", c.Beach, c.First, c.Second, outcome)
		}
	}
}
