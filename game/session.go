package game

import (
	"go.uber.org/zap"
)

// EventSink consumes per-frame events, e.g. the sound manager
type EventSink interface {
	Handle(ev Events)
}

// Muter is the sound control a frontend exposes to the player
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Session drives a World on behalf of a frontend and fans out frame events
type Session struct {
	world *World
	sink  EventSink
	base  *zap.Logger
	log   *zap.Logger // base scoped to the current run
	boxes []BoxView
}

// NewSession wraps w, sink may be nil and log may be zap.NewNop()
func NewSession(w *World, sink EventSink, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		world: w,
		sink:  sink,
		base:  log,
	}
	s.scopeLogger()
	return s
}

func (s *Session) scopeLogger() {
	s.log = s.base.With(zap.Stringer("run_id", s.world.RunID))
}

// World exposes the underlying simulation
func (s *Session) World() *World {
	return s.world
}

// Start leaves the title screen
func (s *Session) Start() {
	if s.world.Start() {
		s.log.Info("run started", zap.Int("spawn_interval", s.world.SpawnInterval))
	}
}

// Reset begins a new run on the title screen
func (s *Session) Reset() {
	s.log.Info("run reset", zap.Int("score", s.world.Score), zap.Int("frames", s.world.Frames))
	s.world.Reset()
	s.scopeLogger()
}

// Tick advances one frame and forwards its events
func (s *Session) Tick(c Controls) Events {
	ev := s.world.Step(c)
	if ev == 0 {
		return 0
	}

	if s.sink != nil {
		s.sink.Handle(ev)
	}

	if ev.Has(EventFellOff) {
		s.log.Info("player fell off the platform", zap.Int("score", s.world.Score), zap.Int("frames", s.world.Frames))
	}
	if ev.Has(EventCollision) {
		s.log.Info("game over: collision",
			zap.Int("score", s.world.Score),
			zap.Int("frames", s.world.Frames),
			zap.Int("enemies", len(s.world.Enemies)),
		)
	}
	if ev.Has(EventStopped) {
		s.log.Info("game over: fell", zap.Int("score", s.world.Score), zap.Int("frames", s.world.Frames))
	}
	if ev.Has(EventSpawn) {
		s.log.Debug("enemy spawned", zap.Int("frame", s.world.Frames-1), zap.Int("interval", s.world.SpawnInterval))
	}

	return ev
}

// Snapshot returns the renderable state, reusing an internal buffer
// The returned Boxes slice is only valid until the next call
func (s *Session) Snapshot() Snapshot {
	snap := s.world.Snapshot(s.boxes)
	s.boxes = snap.Boxes
	return snap
}
