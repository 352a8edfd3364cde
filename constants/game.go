package constants

import "time"

// Frame Loop Timing
const (
	// FramesPerSecond matches a display refresh loop, all per-frame tuning assumes it
	FramesPerSecond = 60

	// FrameUpdateInterval is the duration of one simulation frame
	FrameUpdateInterval = time.Second / FramesPerSecond
)

// Body Physics (units per frame)
const (
	// Gravity is added to vertical velocity every frame
	Gravity = -0.002

	// BounceDamping scales vertical speed on ground contact before reflection
	BounceDamping = 0.6

	// ZAcceleration is added to an enemy's z velocity every frame
	ZAcceleration = 0.0005

	// KillPlaneY ends the run once the player's top falls below it
	KillPlaneY = -8.0

	// AudibleBounceSpeed is the rebound speed below which a ground contact is resting, not a bounce
	AudibleBounceSpeed = 0.01
)

// Player
const (
	PlayerSize      = 1.0
	PlayerSpeed     = 0.08
	PlayerStartVelY = -0.05
	PlayerColor     = 0x64e224
)

// Ground Platform
const (
	GroundWidth  = 10.0
	GroundHeight = 0.5
	GroundDepth  = 50.0
	GroundY      = -2.0
	GroundColor  = 0x1877ca
)

// Enemy Spawning
const (
	EnemySize      = 1.0
	EnemyColor     = 0xff0000
	EnemySpawnY    = 0.0
	EnemySpawnZ    = -25.0
	EnemyStartVelZ = 0.003

	// InitialSpawnInterval is the frame gap between spawns at the start of a run
	InitialSpawnInterval = 200

	// SpawnRampEvery is the frame period at which the interval may shrink
	SpawnRampEvery = 200

	// SpawnRampStep is subtracted from the interval at each ramp
	SpawnRampStep = 20

	// MinSpawnInterval is the floor; ramping stops once the interval reaches it
	MinSpawnInterval = 20
)

// Scoring
const (
	// ScoreEvery is the frame period of one score point
	ScoreEvery = 100
)
