package game

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/audio"
	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/config"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/road"
	"github.com/golangdaddy/circuit/pkg/ui"
)

// Options configures the window frontend.
type Options struct {
	Config      *config.Config
	Track       *road.Track
	TrackFile   string // Reloaded on change when Watch is set
	TrackDir    string // When set, *.yaml files in it are offered on a menu
	Watch       bool
	Records     *race.Records // Lap records, may be nil
	RecordsFile string        // Where Records are saved when a race ends
	Sound       bool
	Volume      float64 // In halvings, 0 is full scale
	Seed        int64   // Backdrop seed
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	opts          Options
	track         *road.Track
	trackFile     string
	backdrop      *ebiten.Image
	currentScreen Screen
	racing        bool

	reload <-chan struct{}
	keeper *race.Keeper
	player *audio.Player
	log    *log.Logger
}

// NewGame creates a new game instance showing the title screen. ctx bounds
// the track file watcher.
func NewGame(ctx context.Context, opts Options) (*Game, error) {
	if opts.Track == nil {
		return nil, fmt.Errorf("%w: no track", config.ErrConfiguration)
	}
	cfg := opts.Config
	skyline := background.NewGenerator(cfg.ScreenWidth, cfg.ScreenHeight/4).GenerateSkyline(opts.Seed)

	g := &Game{
		opts:      opts,
		track:     opts.Track,
		trackFile: opts.TrackFile,
		backdrop:  ebiten.NewImageFromImage(skyline),
		keeper:    race.NewKeeper(opts.Records, opts.RecordsFile),
		log:       log.Default().Named("game"),
	}

	if opts.Watch && opts.TrackFile != "" {
		reload, err := road.WatchFile(ctx, opts.TrackFile)
		if err != nil {
			return nil, fmt.Errorf("failed to watch track: %w", err)
		}
		g.reload = reload
	}

	if opts.Sound {
		player := audio.NewPlayer(opts.Volume)
		if err := player.Init(); err != nil {
			g.log.Warn("sound disabled", log.ErrorField(err))
		} else {
			g.player = player
		}
	}

	g.showTitle()
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	select {
	case <-g.reload:
		g.reloadTrack()
	default:
	}

	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the logical screen size from the configuration
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Config.ScreenWidth, g.opts.Config.ScreenHeight
}

// Close records a race still running and releases the audio device.
func (g *Game) Close() {
	g.recordRace()
	if g.player != nil {
		g.player.Close()
	}
}

func (g *Game) showTitle() {
	g.racing = false
	if g.player != nil {
		g.player.SetPaused(true)
	}
	g.currentScreen = ui.NewTitleScreen(g.track.Name, g.chooseTrack)
}

// chooseTrack shows the track menu when a track directory holds more than
// one track, and starts racing straight away otherwise.
func (g *Game) chooseTrack() {
	entries := g.trackEntries()
	if len(entries) < 2 {
		g.startRace()
		return
	}
	g.currentScreen = ui.NewTrackSelectScreen(entries, g.selectTrack, g.showTitle)
}

func (g *Game) trackEntries() []ui.TrackEntry {
	if g.opts.TrackDir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(g.opts.TrackDir, "*.yaml"))
	if err != nil {
		g.log.Warn("failed to list tracks", log.String("dir", g.opts.TrackDir), log.ErrorField(err))
		return nil
	}

	var entries []ui.TrackEntry
	for _, file := range files {
		layout, err := road.LoadLayout(file)
		if err != nil {
			g.log.Warn("skipping track", log.String("file", file), log.ErrorField(err))
			continue
		}
		entry := ui.TrackEntry{Name: layout.Name, File: file}
		if rec, ok := g.keeper.Best(layout.Name); ok {
			entry.BestLap = rec.BestLap
		}
		entries = append(entries, entry)
	}
	return entries
}

func (g *Game) selectTrack(entry ui.TrackEntry) {
	track, err := road.LoadTrack(entry.File, g.opts.Config)
	if err != nil {
		g.log.Error("failed to load track", log.String("file", entry.File), log.ErrorField(err))
		return
	}
	g.track = track
	g.trackFile = entry.File
	g.startRace()
}

// startRace transitions to the actual gameplay. A session it replaces is
// recorded first.
func (g *Game) startRace() {
	session, err := race.NewSession(g.opts.Config, g.track)
	if err != nil {
		g.log.Error("failed to start race", log.ErrorField(err))
		return
	}
	if err := g.keeper.Start(session); err != nil {
		g.log.Warn("failed to save records", log.String("file", g.opts.RecordsFile), log.ErrorField(err))
	}
	g.racing = true
	g.resume(NewGameplayScreen(session, g.backdrop, g.player, g.pause))
}

func (g *Game) resume(gs *GameplayScreen) {
	if g.player != nil {
		g.player.SetPaused(false)
	}
	g.currentScreen = gs
}

// pause freezes the session behind the pause screen
func (g *Game) pause(gs *GameplayScreen) {
	if g.player != nil {
		g.player.SetPaused(true)
	}
	record, _ := g.keeper.Best(g.track.Name)
	g.currentScreen = ui.NewPauseScreen(g.track.Name, gs.session.Snapshot(), record,
		func() { g.resume(gs) },
		g.finishRace)
}

// finishRace records the session's laps and returns to the title
func (g *Game) finishRace() {
	g.recordRace()
	g.showTitle()
}

func (g *Game) recordRace() {
	if err := g.keeper.Finish(); err != nil {
		g.log.Warn("failed to save records", log.String("file", g.opts.RecordsFile), log.ErrorField(err))
	}
}

func (g *Game) reloadTrack() {
	if g.trackFile != g.opts.TrackFile {
		g.log.Debug("ignoring change to a track not being raced", log.String("file", g.opts.TrackFile))
		return
	}
	track, err := road.LoadTrack(g.opts.TrackFile, g.opts.Config)
	if err != nil {
		g.log.Warn("keeping previous track", log.String("file", g.opts.TrackFile), log.ErrorField(err))
		return
	}
	if track.SegmentCount() == 0 {
		g.log.Warn("keeping previous track, new one is empty", log.String("file", g.opts.TrackFile))
		return
	}

	g.track = track
	g.log.Info("track reloaded", log.String("track", track.Name), log.Int("segments", track.SegmentCount()))
	if g.racing {
		g.startRace()
	} else {
		g.showTitle()
	}
}
