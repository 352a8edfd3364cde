// Package config loads the optional YAML settings file
package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cube-dodge/constants"
	"github.com/lixenwraith/cube-dodge/game"
	"github.com/lixenwraith/cube-dodge/vmath"
)

// Config is the full settings tree, every field has a default
type Config struct {
	Tuning   game.Tuning    `yaml:"tuning"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
	Camera   CameraConfig   `yaml:"camera"`
}

type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // linear gain, 1 = unchanged
}

// TerminalConfig tunes key hold emulation, terminals report presses but not releases
type TerminalConfig struct {
	InitialHold time.Duration `yaml:"initial_hold"`
	RepeatHold  time.Duration `yaml:"repeat_hold"`
}

type CameraConfig struct {
	FOV      float64     `yaml:"fov"`
	Position vmath.Vec3F `yaml:"position"`
	Target   vmath.Vec3F `yaml:"target"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Tuning: game.DefaultTuning(),
		Audio: AudioConfig{
			Volume: 1.0,
		},
		Terminal: TerminalConfig{
			InitialHold: constants.InitialHold,
			RepeatHold:  constants.RepeatHold,
		},
		Camera: CameraConfig{
			FOV:      constants.CameraFOV,
			Position: vmath.Vec3F{X: constants.CameraX, Y: constants.CameraY, Z: constants.CameraZ},
		},
	}
}

// Load reads path over the defaults, an empty path yields Default()
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode yaml")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section
func (c Config) Validate() error {
	if err := c.Tuning.Validate(); err != nil {
		return err
	}
	if c.Audio.Volume < 0 {
		return errors.Errorf("audio.volume must not be negative, got %g", c.Audio.Volume)
	}
	if c.Terminal.InitialHold <= 0 || c.Terminal.RepeatHold <= 0 {
		return errors.New("terminal hold durations must be positive")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return errors.Errorf("camera.fov must be within (0,180), got %g", c.Camera.FOV)
	}
	if c.Camera.Position == c.Camera.Target {
		return errors.New("camera.position must differ from camera.target")
	}
	return nil
}
