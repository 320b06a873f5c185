package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/circuit/pkg/headless"
)

func newRenderCmd() *cobra.Command {
	opts := headless.Options{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "runs a scripted race headless and writes PNG frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(logFile); err != nil {
				return err
			}
			cfg, track, err := loadRace(cmd)
			if err != nil {
				return err
			}
			res, err := headless.Run(cfg, track, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s, %d laps\n",
				len(res.Frames), opts.OutDir, res.Snapshot.Laps)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Ticks, "ticks", 600, "number of ticks to simulate")
	cmd.Flags().IntVar(&opts.Every, "every", 30, "write a frame every n ticks")
	cmd.Flags().Float64Var(&opts.Throttle, "throttle", 1, "constant throttle in [-1,1]")
	cmd.Flags().Float64Var(&opts.SteerPeriod, "steer-period", 0, "seconds per steering cycle, 0 drives straight")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "frames", "output directory")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "backdrop seed")
	return cmd
}
