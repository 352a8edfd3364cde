package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// SoundType identifies one effect
type SoundType int

const (
	SoundSpawn SoundType = iota
	SoundBounce
	SoundCrash
	SoundFall
)

// Effect timings
const (
	spawnDuration  = 90 * time.Millisecond
	bounceDuration = 120 * time.Millisecond
	crashDuration  = 450 * time.Millisecond
	fallDuration   = 900 * time.Millisecond
	shortAttack    = 5 * time.Millisecond
)

// CreateSpawnSound is a short rising blip for an enemy entering the far end
func CreateSpawnSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(440, 660, spawnDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, spawnDuration, shortAttack, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.12*vol)
}

// CreateBounceSound is a low thud for the cube landing
func CreateBounceSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(140, 60, bounceDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, bounceDuration, shortAttack, 100*time.Millisecond, rate)
	return newVolume(shaped, 0.5*vol)
}

// CreateCrashSound mixes a noise burst with a falling saw for a collision
func CreateCrashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, crashDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, crashDuration, shortAttack, 400*time.Millisecond, rate)

	saw := NewSweep(220, 55, crashDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, crashDuration, shortAttack, 300*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(sawShaped, 0.4),
	)
	// bounded to crashDuration
	return newVolume(beep.Take(rate.N(crashDuration), mixed), 0.6*vol)
}

// CreateFallSound is a descending whistle for leaving the platform
func CreateFallSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(1200, 180, fallDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, fallDuration, 20*time.Millisecond, 250*time.Millisecond, rate)
	return newVolume(shaped, 0.3*vol)
}

// GetSoundEffect returns a fresh streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	switch soundType {
	case SoundSpawn:
		return CreateSpawnSound(rate, vol)
	case SoundBounce:
		return CreateBounceSound(rate, vol)
	case SoundCrash:
		return CreateCrashSound(rate, vol)
	case SoundFall:
		return CreateFallSound(rate, vol)
	default:
		return nil
	}
}
