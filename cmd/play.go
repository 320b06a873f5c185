package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/game"
	"github.com/golangdaddy/circuit/pkg/race"
)

func newPlayCmd() *cobra.Command {
	var (
		watch    bool
		sound    bool
		volume   float64
		scale    int
		seed     int64
		trackDir string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "races the track in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(logFile); err != nil {
				return err
			}
			cfg, track, err := loadRace(cmd)
			if err != nil {
				return err
			}

			var records *race.Records
			if recordsFile != "" {
				if records, err = race.LoadRecords(recordsFile); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			g, err := game.NewGame(ctx, game.Options{
				Config:      cfg,
				Track:       track,
				TrackFile:   trackFile,
				TrackDir:    trackDir,
				Watch:       watch,
				Records:     records,
				RecordsFile: recordsFile,
				Sound:       sound,
				Volume:      volume,
				Seed:        seed,
			})
			if err != nil {
				return err
			}
			defer g.Close()

			ebiten.SetWindowSize(cfg.ScreenWidth*scale, cfg.ScreenHeight*scale)
			ebiten.SetWindowTitle("Circuit - " + track.Name)
			ebiten.SetTPS(cfg.TargetFPS)

			log.Default().Info("starting window", log.String("track", track.Name))
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "rebuild the track when the track file changes")
	cmd.Flags().BoolVar(&sound, "sound", false, "play the engine tone")
	cmd.Flags().Float64Var(&volume, "volume", -1, "engine volume in halvings, 0 is full scale")
	cmd.Flags().IntVar(&scale, "scale", 3, "window pixels per logical pixel")
	cmd.Flags().Int64Var(&seed, "seed", 1, "backdrop seed")
	cmd.Flags().StringVar(&trackDir, "track-dir", "assets/tracks", "offer every track in this directory on a menu, empty skips the menu")
	return cmd
}
