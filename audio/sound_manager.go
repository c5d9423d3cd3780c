package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/gravity-slingshot/engine"
	"github.com/lixenwraith/gravity-slingshot/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays simulation cues through the speaker
// Every method is safe to call before Initialize or after a failed one; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	lastPlayed  [cueCount]time.Time
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager, muted managers never touch the speaker
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play starts cue unless the same cue played within MinSoundGap
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allow(cue, time.Now()) {
		return
	}

	s := buildLogged(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// buildLogged builds cue at the speaker rate, logging and returning nil on failure
func buildLogged(cue Cue) beep.Streamer {
	s, err := Build(cue, sampleRate)
	if err != nil {
		log.Printf("audio: %s cue dropped: %v", cue, err)
		return nil
	}
	return s
}

// allow applies the per-cue rate limit, caller holds mu
func (sm *SoundManager) allow(cue Cue, now time.Time) bool {
	if cue < 0 || cue >= cueCount {
		return false
	}
	if last := sm.lastPlayed[cue]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[cue] = now
	return true
}

// CuesFor returns the cues implied by a tick, prev is the stats before that tick
func CuesFor(snap engine.Snapshot, prev engine.Stats) []Cue {
	var cues []Cue
	if snap.Stats.Launched > prev.Launched {
		cues = append(cues, CueLaunch)
	}
	if snap.Collisions() > 0 {
		cues = append(cues, CueImpact)
	}
	if snap.Escapes() > 0 {
		cues = append(cues, CueEscape)
	}
	return cues
}
