package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/terminal"
)

func newTUICmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "races the track in the terminal",
		Long: `Races the track in the terminal using half block cells. Arrow keys or
WASD drive, Escape or q quits. Logs only go to --log-file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr shares the terminal, so logging stays off without a file
			if logFile != "" {
				if err := setupLogging(logFile); err != nil {
					return err
				}
			}
			cfg, track, err := loadRace(cmd)
			if err != nil {
				return err
			}
			session, err := race.NewSession(cfg, track)
			if err != nil {
				return err
			}
			keeper, err := newKeeper()
			if err != nil {
				return err
			}
			if err := keeper.Start(session); err != nil {
				return err
			}
			backdrop := background.NewGenerator(cfg.ScreenWidth, cfg.ScreenHeight/4).GenerateSkyline(seed)

			screen, err := terminal.NewScreen()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			if err := terminal.New(screen, session, backdrop).Run(ctx); err != nil {
				return err
			}
			return keeper.Finish()
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "backdrop seed")
	return cmd
}
