package game

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/cube-dodge/constants"
)

// Tuning holds every gameplay constant of a run, all rates are per frame
type Tuning struct {
	Gravity       float64 `yaml:"gravity"`
	BounceDamping float64 `yaml:"bounce_damping"`
	ZAcceleration float64 `yaml:"z_acceleration"`
	KillPlaneY    float64 `yaml:"kill_plane_y"`

	PlayerSize      float64 `yaml:"player_size"`
	PlayerSpeed     float64 `yaml:"player_speed"`
	PlayerStartVelY float64 `yaml:"player_start_vel_y"`

	GroundWidth  float64 `yaml:"ground_width"`
	GroundHeight float64 `yaml:"ground_height"`
	GroundDepth  float64 `yaml:"ground_depth"`
	GroundY      float64 `yaml:"ground_y"`

	EnemySize      float64 `yaml:"enemy_size"`
	EnemySpawnY    float64 `yaml:"enemy_spawn_y"`
	EnemySpawnZ    float64 `yaml:"enemy_spawn_z"`
	EnemyStartVelZ float64 `yaml:"enemy_start_vel_z"`

	SpawnInterval    int `yaml:"spawn_interval"`
	SpawnRampEvery   int `yaml:"spawn_ramp_every"`
	SpawnRampStep    int `yaml:"spawn_ramp_step"`
	MinSpawnInterval int `yaml:"min_spawn_interval"`

	ScoreEvery int `yaml:"score_every"`
}

// DefaultTuning returns the stock arcade settings
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       constants.Gravity,
		BounceDamping: constants.BounceDamping,
		ZAcceleration: constants.ZAcceleration,
		KillPlaneY:    constants.KillPlaneY,

		PlayerSize:      constants.PlayerSize,
		PlayerSpeed:     constants.PlayerSpeed,
		PlayerStartVelY: constants.PlayerStartVelY,

		GroundWidth:  constants.GroundWidth,
		GroundHeight: constants.GroundHeight,
		GroundDepth:  constants.GroundDepth,
		GroundY:      constants.GroundY,

		EnemySize:      constants.EnemySize,
		EnemySpawnY:    constants.EnemySpawnY,
		EnemySpawnZ:    constants.EnemySpawnZ,
		EnemyStartVelZ: constants.EnemyStartVelZ,

		SpawnInterval:    constants.InitialSpawnInterval,
		SpawnRampEvery:   constants.SpawnRampEvery,
		SpawnRampStep:    constants.SpawnRampStep,
		MinSpawnInterval: constants.MinSpawnInterval,

		ScoreEvery: constants.ScoreEvery,
	}
}

// ErrInvalidTuning is the cause of every Validate failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects settings the simulation cannot run with
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"player_size", t.PlayerSize},
		{"ground_width", t.GroundWidth},
		{"ground_height", t.GroundHeight},
		{"ground_depth", t.GroundDepth},
		{"enemy_size", t.EnemySize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.Wrapf(ErrInvalidTuning, "%s must be positive, got %g", p.name, p.v)
		}
	}

	if t.BounceDamping < 0 || t.BounceDamping > 1 {
		return errors.Wrapf(ErrInvalidTuning, "bounce_damping must be within [0,1], got %g", t.BounceDamping)
	}
	if t.PlayerSpeed < 0 {
		return errors.Wrapf(ErrInvalidTuning, "player_speed must not be negative, got %g", t.PlayerSpeed)
	}
	if t.KillPlaneY >= t.GroundY {
		return errors.Wrapf(ErrInvalidTuning, "kill_plane_y %g must be below ground_y %g", t.KillPlaneY, t.GroundY)
	}

	intervals := []struct {
		name string
		v    int
	}{
		{"spawn_interval", t.SpawnInterval},
		{"spawn_ramp_every", t.SpawnRampEvery},
		{"min_spawn_interval", t.MinSpawnInterval},
		{"score_every", t.ScoreEvery},
	}
	for _, p := range intervals {
		if p.v <= 0 {
			return errors.Wrapf(ErrInvalidTuning, "%s must be positive, got %d", p.name, p.v)
		}
	}
	if t.SpawnRampStep < 0 {
		return errors.Wrapf(ErrInvalidTuning, "spawn_ramp_step must not be negative, got %d", t.SpawnRampStep)
	}

	return nil
}
