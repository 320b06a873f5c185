package cmd

import (
	"github.com/spf13/cobra"

	"github.com/golangdaddy/circuit/pkg/road"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "prints a summary of the track",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			layout, err := road.LoadLayout(trackFile)
			if err != nil {
				return err
			}
			summary, err := road.Summarize(layout, cfg)
			if err != nil {
				return err
			}
			return summary.Write(cmd.OutOrStdout())
		},
	}
}
