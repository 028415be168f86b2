package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <archive> <name>...",
		Short: "Print the issues answered by nations in a local dump",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Scan(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				if !r.Found {
					_, _ = fmt.Fprintf(out, "%s\t-\n", r.Name)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%d\n", r.Name, r.Count)
			}
			return nil
		},
	}
}
