package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/issueboard/internal/app"
	"go.trai.ch/issueboard/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and export the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			output, _ := cmd.Flags().GetString("output")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath,
				Start:      start,
				End:        end,
				Output:     output,
				NoCache:    noCache,
			})
		},
	}
	cmd.Flags().StringP("config", "c", domain.DefaultConfigFile, "Path to the config file (.toml or .yaml)")
	cmd.Flags().String("start", "", "Override the start dump date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Override the end dump date (YYYY-MM-DD)")
	cmd.Flags().StringP("output", "o", "", "Override the export path (.json or .yaml)")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the snapshot cache and rescan both dumps")
	return cmd
}
