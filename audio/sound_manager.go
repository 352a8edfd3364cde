package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cube-dodge/game"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays game event sounds through a single mixer on the speaker
// Every method is safe before Initialize and after Cleanup, those calls are silent no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       atomic.Bool

	// play hands a built effect to the output, swapped in tests
	play func(SoundType, beep.Streamer)
}

var (
	_ game.EventSink = (*SoundManager)(nil)
	_ game.Muter     = (*SoundManager)(nil)
)

// NewSoundManager creates an uninitialized manager with linear gain volume
func NewSoundManager(volume float64) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	sm.play = sm.addToMixer
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// SetMuted toggles output without closing the speaker
func (sm *SoundManager) SetMuted(m bool) {
	sm.muted.Store(m)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play starts one effect
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if s := GetSoundEffect(st, sampleRate, sm.volume); s != nil {
		sm.play(st, s)
	}
}

// Handle maps frame events to effects, the end-of-run sounds take precedence over spawn and bounce
func (sm *SoundManager) Handle(ev game.Events) {
	switch {
	case ev.Has(game.EventCollision):
		sm.Play(SoundCrash)
		return
	case ev.Has(game.EventFellOff):
		sm.Play(SoundFall)
		return
	}

	if ev.Has(game.EventBounce) {
		sm.Play(SoundBounce)
	}
	if ev.Has(game.EventSpawn) {
		sm.Play(SoundSpawn)
	}
}

func (sm *SoundManager) addToMixer(_ SoundType, s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
