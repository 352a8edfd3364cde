package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cube-dodge/game"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeOverridesOnlyGivenFields(t *testing.T) {
	src := `
tuning:
  player_speed: 0.1
  spawn_interval: 120
audio:
  muted: true
terminal:
  repeat_hold: 80ms
camera:
  position: {x: 0, y: 6, z: 12}
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 0.1, cfg.Tuning.PlayerSpeed)
	assert.Equal(t, 120, cfg.Tuning.SpawnInterval)
	assert.Equal(t, def.Tuning.Gravity, cfg.Tuning.Gravity)
	assert.True(t, cfg.Audio.Muted)
	assert.Equal(t, 1.0, cfg.Audio.Volume)
	assert.Equal(t, 80*time.Millisecond, cfg.Terminal.RepeatHold)
	assert.Equal(t, def.Terminal.InitialHold, cfg.Terminal.InitialHold)
	assert.Equal(t, 6.0, cfg.Camera.Position.Y)
	assert.Equal(t, def.Camera.FOV, cfg.Camera.FOV)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("tuning:\n  gravty: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravty")
}

func TestDecodeRejectsInvalidTuning(t *testing.T) {
	_, err := Decode(strings.NewReader("tuning:\n  bounce_damping: 2\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrInvalidTuning))
}

func TestValidateSections(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Terminal.RepeatHold = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Camera.FOV = 180
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Camera.Position = cfg.Camera.Target
	assert.Error(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube-dodge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tuning:\n  score_every: 60\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Tuning.ScoreEvery)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
