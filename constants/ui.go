package constants

import "time"

// Camera defaults
const (
	CameraFOV      = 75.0
	CameraNear     = 0.1
	CameraX        = 2.0
	CameraY        = 3.0
	CameraZ        = 8.0
	CameraMinDist  = 3.0
	CameraMaxDist  = 40.0
	CameraOrbitRad = 0.05
	CameraZoomStep = 1.1
	CameraDragRad  = 0.01 // orbit per dragged pixel
)

// Lighting
const (
	LightX         = 0.0
	LightY         = 3.0
	LightZ         = 1.0
	LightIntensity = 1.0
	AmbientLevel   = 0.5
)

// Terminal key hold emulation
// Terminals only report presses, a key stays held until its release deadline
const (
	// InitialHold covers the gap between the first press and the terminal's auto-repeat
	InitialHold = 550 * time.Millisecond

	// RepeatHold is the extension granted by each auto-repeat event
	RepeatHold = 120 * time.Millisecond
)

// Window frontend
const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "Cube Dodge"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "cube-dodge.log"
)
