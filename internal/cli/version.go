package cli

import (
	"fmt"

	"intervalparser/internal/core/version"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// settings are not needed to print the version
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.Info()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), bi)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), bi)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
