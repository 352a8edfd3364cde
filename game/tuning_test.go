package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestTuningValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
		field  string
	}{
		{"zero player", func(t *Tuning) { t.PlayerSize = 0 }, "player_size"},
		{"negative ground", func(t *Tuning) { t.GroundDepth = -1 }, "ground_depth"},
		{"bounce above one", func(t *Tuning) { t.BounceDamping = 1.5 }, "bounce_damping"},
		{"negative speed", func(t *Tuning) { t.PlayerSpeed = -0.1 }, "player_speed"},
		{"kill plane above ground", func(t *Tuning) { t.KillPlaneY = 0 }, "kill_plane_y"},
		{"zero spawn interval", func(t *Tuning) { t.SpawnInterval = 0 }, "spawn_interval"},
		{"zero score period", func(t *Tuning) { t.ScoreEvery = 0 }, "score_every"},
		{"negative ramp", func(t *Tuning) { t.SpawnRampStep = -20 }, "spawn_ramp_step"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTuning()
			tc.mutate(&tun)

			err := tun.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTuning))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestPhaseHelpers(t *testing.T) {
	assert.False(t, PhaseReady.Simulating())
	assert.True(t, PhaseRunning.Simulating())
	assert.True(t, PhaseFalling.Simulating())
	assert.False(t, PhaseOver.Simulating())

	assert.False(t, PhaseRunning.GameOver())
	assert.True(t, PhaseFalling.GameOver())
	assert.True(t, PhaseOver.GameOver())

	assert.Equal(t, "falling", PhaseFalling.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

func TestEventsString(t *testing.T) {
	assert.Equal(t, "none", Events(0).String())
	assert.Equal(t, "spawn|score", (EventSpawn | EventScore).String())
	assert.True(t, (EventSpawn | EventCollision).Has(EventCollision))
	assert.False(t, EventSpawn.Has(EventSpawn|EventScore))
}
