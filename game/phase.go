package game

// Phase is the lifecycle stage of a run
type Phase uint8

const (
	// PhaseReady shows the title and rules, nothing is simulated
	PhaseReady Phase = iota
	// PhaseRunning accepts controls
	PhaseRunning
	// PhaseFalling is game over by leaving the platform, the cube keeps falling
	PhaseFalling
	// PhaseOver halts the simulation
	PhaseOver
)

var phaseNames = [...]string{
	PhaseReady:   "ready",
	PhaseRunning: "running",
	PhaseFalling: "falling",
	PhaseOver:    "over",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Simulating reports whether Step advances the world in this phase
func (p Phase) Simulating() bool {
	return p == PhaseRunning || p == PhaseFalling
}

// GameOver reports whether the game over panel is shown
func (p Phase) GameOver() bool {
	return p == PhaseFalling || p == PhaseOver
}
