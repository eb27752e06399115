// Version command for the ocean CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ocean/pkg/ocean"
)

const modulePath = "github.com/mesh-intelligence/ocean"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ocean version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ocean v%s\nmodule: %s\n", ocean.Version, modulePath)
			return nil
		},
	}
}
