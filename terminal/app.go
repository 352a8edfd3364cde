// Package terminal runs the game full-screen in a terminal through tcell
package terminal

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cube-dodge/config"
	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/render"
)

// App owns the screen, input state and per-frame rendering of one session
type App struct {
	screen  tcell.Screen
	session *game.Session
	sound   game.Muter
	log     *zap.Logger

	camera *render.Camera
	scene  *render.SceneBuilder
	fb     *render.Framebuffer
	keys   *HoldTracker

	now func() time.Time
}

// New wires an initialized screen to a session, sound may be nil
func New(screen tcell.Screen, session *game.Session, cfg config.Config, sound game.Muter, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		screen:  screen,
		session: session,
		sound:   sound,
		log:     log,
		camera:  render.NewCamera(cfg.Camera.Position, cfg.Camera.Target, cfg.Camera.FOV),
		scene:   render.NewSceneBuilder(),
		fb:      render.NewFramebuffer(0, 0),
		keys:    NewHoldTracker(cfg.Terminal.InitialHold, cfg.Terminal.RepeatHold),
		now:     time.Now,
	}
}

// Run polls input and drives frames until the player quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	g.Go(func() error {
		return a.poll(ctx, events)
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("frame loop crashed: %v\n%s", r, debug.Stack())
			}
			cancel()
			// wake the poller blocked in PollEvent
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return a.loop(ctx, events)
	})

	return g.Wait()
}

func (a *App) poll(ctx context.Context, events chan<- tcell.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("event poller crashed: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// HandleEvent applies one input event and reports false when the player quits
func (a *App) HandleEvent(ev tcell.Event) bool {
	now := a.now()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.session.Start()
	case tcell.KeyLeft:
		a.camera.Orbit(-constants.CameraOrbitRad, 0)
	case tcell.KeyRight:
		a.camera.Orbit(constants.CameraOrbitRad, 0)
	case tcell.KeyUp:
		a.camera.Orbit(0, -constants.CameraOrbitRad)
	case tcell.KeyDown:
		a.camera.Orbit(0, constants.CameraOrbitRad)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune(), now)
	}
	return true
}

func (a *App) handleRune(r rune, now time.Time) bool {
	if act, ok := actionForRune(r); ok {
		a.keys.Press(act, now)
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		a.session.Start()
	case 'r', 'R':
		a.keys.ReleaseAll()
		a.session.Reset()
	case 'm', 'M':
		if a.sound != nil {
			muted := a.sound.ToggleMute()
			a.log.Debug("sound toggled", zap.Bool("muted", muted))
		}
	case '+', '=':
		a.camera.Zoom(1 / constants.CameraZoomStep)
	case '-', '_':
		a.camera.Zoom(constants.CameraZoomStep)
	}
	return true
}

// Frame advances the simulation one step and redraws
func (a *App) Frame() {
	a.session.Tick(a.keys.Controls(a.now()))
	a.draw()
}

func (a *App) draw() {
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	vp := render.Viewport{Width: w, Height: 2 * h, PixelAspect: 1}
	a.fb.Resize(vp.Width, vp.Height)

	snap := a.session.Snapshot()
	a.fb.DrawScene(a.scene.Build(snap, a.camera.View(), vp))

	blit(a.screen, a.fb)
	muted := a.sound != nil && a.sound.Muted()
	drawHUD(a.screen, a.fb, snap, muted)
	a.screen.Show()
}
