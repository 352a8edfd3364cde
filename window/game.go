// Package window runs the game in a desktop window through ebiten
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/cube-dodge/config"
	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/render"
)

// Game implements ebiten.Game over one session
type Game struct {
	session *game.Session
	sound   game.Muter
	log     *zap.Logger

	camera *render.Camera
	scene  *render.SceneBuilder
	canvas canvas

	width, height int

	dragging     bool
	dragX, dragY int
}

// New wires a session to a window, sound may be nil
func New(session *game.Session, cfg config.Config, sound game.Muter, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		session: session,
		sound:   sound,
		log:     log,
		camera:  render.NewCamera(cfg.Camera.Position, cfg.Camera.Target, cfg.Camera.FOV),
		scene:   render.NewSceneBuilder(),
		width:   constants.WindowWidth,
		height:  constants.WindowHeight,
	}
}

// Run opens the window and blocks until it closes
// Closing through Esc is a normal exit
func Run(g *Game) error {
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowSize(constants.WindowWidth, constants.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constants.FramesPerSecond)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return errors.Wrap(err, "window")
}

// Update reads input and steps the simulation once
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		muted := g.sound.ToggleMute()
		g.log.Debug("sound toggled", zap.Bool("muted", muted))
	}

	g.updateCamera()
	g.session.Tick(controls(ebiten.IsKeyPressed))
	return nil
}

// controls maps held keys to steering, WASD with real key state
func controls(pressed func(ebiten.Key) bool) game.Controls {
	return game.Controls{
		Left:    pressed(ebiten.KeyA),
		Right:   pressed(ebiten.KeyD),
		Forward: pressed(ebiten.KeyW),
		Back:    pressed(ebiten.KeyS),
	}
}

func (g *Game) updateCamera() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.dragging {
			g.camera.Orbit(
				-float64(x-g.dragX)*constants.CameraDragRad,
				-float64(y-g.dragY)*constants.CameraDragRad,
			)
		}
		g.dragging = true
		g.dragX, g.dragY = x, y
	} else {
		g.dragging = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.camera.Zoom(zoomFactor(dy))
	}

	orbit := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		orbit -= constants.CameraOrbitRad
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		orbit += constants.CameraOrbitRad
	}
	tilt := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		tilt -= constants.CameraOrbitRad
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		tilt += constants.CameraOrbitRad
	}
	if orbit != 0 || tilt != 0 {
		g.camera.Orbit(orbit, tilt)
	}
}

// zoomFactor turns a wheel delta into a distance scale, scrolling up moves closer
func zoomFactor(dy float64) float64 {
	if dy > 0 {
		return 1 / constants.CameraZoomStep
	}
	return constants.CameraZoomStep
}

// Draw renders the scene and HUD
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	vp := render.Viewport{Width: g.width, Height: g.height, PixelAspect: 1}

	screen.Fill(rgba(render.Background))
	g.canvas.drawPolygons(screen, g.scene.Build(snap, g.camera.View(), vp))
	drawHUD(screen, snap, g.sound != nil && g.sound.Muted())
}

// Layout follows the window size one to one
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
