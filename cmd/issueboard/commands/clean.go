package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/issueboard/internal/app"
	"go.trai.ch/issueboard/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the snapshot cache and downloaded dumps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dumps, _ := cmd.Flags().GetBool("dumps")
			all, _ := cmd.Flags().GetBool("all")
			configPath, _ := cmd.Flags().GetString("config")

			opts := app.CleanOptions{ConfigPath: configPath}

			switch {
			case all:
				opts.Cache = true
				opts.Dumps = true
			case dumps:
				opts.Dumps = true
			default:
				// Default behavior: clean the snapshot cache
				opts.Cache = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("dumps", "d", false, "Remove the dumps named by the config instead of the cache")
	cmd.Flags().BoolP("all", "a", false, "Remove the snapshot cache and the dumps")
	cmd.Flags().StringP("config", "c", domain.DefaultConfigFile, "Path to the config file (.toml or .yaml)")

	return cmd
}
