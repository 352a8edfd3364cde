package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/physics"
	"github.com/lixenwraith/cube-dodge/vmath"
)

// World is the complete simulation state of one run
// Not safe for concurrent use, frontends step and read it from one goroutine
type World struct {
	RunID uuid.UUID

	Player  *physics.Box
	Ground  *physics.Box
	Enemies []*physics.Box

	// Frames counts simulated frames since Start
	Frames int
	// SpawnInterval is the current frame gap between spawns
	SpawnInterval int
	// Score is survival time in units of ScoreEvery frames
	Score int

	tuning Tuning
	rng    *rand.Rand
	phase  Phase
}

// NewWorld builds a world in PhaseReady, seed drives enemy placement
func NewWorld(t Tuning, seed int64) *World {
	w := &World{
		tuning: t,
		rng:    rand.New(rand.NewSource(seed)),
	}
	w.build()
	return w
}

func (w *World) build() {
	t := w.tuning

	w.RunID = uuid.New()
	w.Player = w.newBox(
		cube(t.PlayerSize),
		vmath.Vec3F{},
		vmath.Vec3F{Y: t.PlayerStartVelY},
		constants.PlayerColor,
	)
	w.Ground = w.newBox(
		vmath.Vec3F{X: t.GroundWidth, Y: t.GroundHeight, Z: t.GroundDepth},
		vmath.Vec3F{Y: t.GroundY},
		vmath.Vec3F{},
		constants.GroundColor,
	)

	clear(w.Enemies)
	w.Enemies = w.Enemies[:0]
	w.Frames = 0
	w.SpawnInterval = t.SpawnInterval
	w.Score = 0
	w.phase = PhaseReady
}

func cube(edge float64) vmath.Vec3F {
	return vmath.Vec3F{X: edge, Y: edge, Z: edge}
}

func (w *World) newBox(size, pos, vel vmath.Vec3F, color uint32) *physics.Box {
	b := physics.NewBox(size, pos, vel, color)
	b.Gravity = w.tuning.Gravity
	b.Bounce = w.tuning.BounceDamping
	return b
}

// Tuning returns the settings the world was built with
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Phase returns the current lifecycle stage
func (w *World) Phase() Phase {
	return w.phase
}

// Start begins simulation from the title screen, no-op in any other phase
func (w *World) Start() bool {
	if w.phase != PhaseReady {
		return false
	}
	w.phase = PhaseRunning
	return true
}

// Reset discards the run and returns to PhaseReady with a new RunID
// The random source continues, so the next run places enemies differently
func (w *World) Reset() {
	w.build()
}

// Step advances exactly one frame and reports what happened
// Outside Running and Falling it does nothing
func (w *World) Step(c Controls) Events {
	if !w.phase.Simulating() {
		return 0
	}

	var ev Events
	t := w.tuning
	p := w.Player

	p.Velocity.X = 0
	p.Velocity.Z = 0
	if w.phase == PhaseRunning {
		if c.Left {
			p.Velocity.X = -t.PlayerSpeed
		}
		if c.Right {
			p.Velocity.X = t.PlayerSpeed
		}
		if c.Forward {
			p.Velocity.Z = -t.PlayerSpeed
		}
		if c.Back {
			p.Velocity.Z = t.PlayerSpeed
		}
	}

	if p.Update(w.Ground) && p.Velocity.Y > constants.AudibleBounceSpeed {
		ev |= EventBounce
	}

	for _, e := range w.Enemies {
		e.Update(w.Ground)
		if physics.BorderTouch(p, e) && w.phase != PhaseOver {
			w.phase = PhaseOver
			ev |= EventCollision
		}
	}

	if w.phase == PhaseRunning && !physics.OverPlatform(p, w.Ground) {
		w.phase = PhaseFalling
		ev |= EventFellOff
	}

	if p.Sides.Top() < t.KillPlaneY && w.phase != PhaseOver {
		w.phase = PhaseOver
		ev |= EventStopped
	}

	if w.Frames%w.SpawnInterval == 0 {
		if w.Frames%t.SpawnRampEvery == 0 && w.SpawnInterval > t.MinSpawnInterval {
			w.SpawnInterval = max(w.SpawnInterval-t.SpawnRampStep, 1)
		}
		w.spawnEnemy()
		ev |= EventSpawn
	}

	if w.Frames%t.ScoreEvery == 0 {
		w.Score++
		ev |= EventScore
	}

	w.Frames++
	w.cull()

	return ev
}

func (w *World) spawnEnemy() {
	t := w.tuning
	x := (w.rng.Float64() - 0.5) * t.GroundWidth

	e := w.newBox(
		cube(t.EnemySize),
		vmath.Vec3F{X: x, Y: t.EnemySpawnY, Z: t.EnemySpawnZ},
		vmath.Vec3F{Z: t.EnemyStartVelZ},
		constants.EnemyColor,
	)
	e.ZAccel = t.ZAcceleration
	w.Enemies = append(w.Enemies, e)
}

// cullY is the height below which an enemy is out of reach
// A live player keeps its top above KillPlaneY and falls far less than GroundDepth per frame,
// so its predicted bottom never gets this low
func (w *World) cullY() float64 {
	return w.tuning.KillPlaneY - w.tuning.GroundDepth
}

// cull drops enemies that sank out of the player's reach, compacting in place
func (w *World) cull() {
	floor := w.cullY()
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Sides.Top() >= floor {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
}
