package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/circuit/log"
	"github.com/golangdaddy/circuit/pkg/audio"
	"github.com/golangdaddy/circuit/pkg/background"
	"github.com/golangdaddy/circuit/pkg/race"
	"github.com/golangdaddy/circuit/pkg/vehicle"
)

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	session   *race.Session
	target    *ebitenTarget
	parallax  background.Parallax
	carSprite *ebiten.Image
	player    *audio.Player
	steering  float64               // Smoothed horizontal input for the sprite tilt
	onPause   func(*GameplayScreen) // Callback when the player pauses the race
	log       *log.Logger
}

// NewGameplayScreen creates a new gameplay screen. player may be nil.
func NewGameplayScreen(session *race.Session, backdrop *ebiten.Image, player *audio.Player, onPause func(*GameplayScreen)) *GameplayScreen {
	cfg := session.Config()
	return &GameplayScreen{
		session:   session,
		target:    newEbitenTarget(cfg.ScreenWidth, cfg.ScreenHeight, backdrop),
		carSprite: carSprite(),
		player:    player,
		onPause:   onPause,
		log:       log.Default().Named("game").With(log.String("session", session.ID.String())),
	}
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onPause != nil {
			gs.onPause(gs)
		}
		return nil
	}

	in := readInput(ebiten.IsKeyPressed)
	if err := gs.session.Tick(in, gs.session.Config().FrameStep()); err != nil {
		return err
	}

	// Return steering to center when no input
	gs.steering += (in.Horizontal - gs.steering) * 0.15

	snap := gs.session.Snapshot()
	gs.parallax.Advance(snap.Curve, snap.SpeedRatio)
	if gs.player != nil {
		gs.player.Update(snap.SpeedRatio)
	}
	return nil
}

// Draw renders the road, the car and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.target.begin(screen, gs.parallax.Offset())
	if !gs.session.Render(gs.target) {
		gs.log.Debug("frame dropped")
	}

	snap := gs.session.Snapshot()
	gs.drawCar(screen, snap)
	drawHUD(screen, snap)
}

// drawCar renders the player's car centred near the bottom of the screen
func (gs *GameplayScreen) drawCar(screen *ebiten.Image, snap race.Snapshot) {
	w, h := gs.carSprite.Bounds().Dx(), gs.carSprite.Bounds().Dy()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	// Rotate car sprite based on steering (subtle rotation)
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(gs.steering * 0.1)
	op.GeoM.Translate(float64(sw)/2, float64(sh)-float64(h)/2-8)

	// Off-road shake
	if snap.OffRoad && snap.Vehicle.Speed > 0 {
		op.GeoM.Translate(0, float64(int(snap.Elapsed.Milliseconds()/50)%2))
	}
	screen.DrawImage(gs.carSprite, op)
}

// readInput maps the arrow keys and WASD to vehicle input
func readInput(pressed func(ebiten.Key) bool) vehicle.Input {
	var in vehicle.Input
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		in.Horizontal--
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		in.Horizontal++
	}
	if pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW) {
		in.Vertical++
	}
	if pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS) {
		in.Vertical--
	}
	return in
}
