package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"

	"github.com/lixenwraith/gravity-slingshot/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freqFrom to freqTo
type oscillator struct {
	freqFrom float64
	freqTo   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqFrom: from,
		freqTo:   to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freqFrom + (o.freqTo-o.freqFrom)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream and cuts it at duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.totalSamples - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies gain in beep's log2 scale
func newVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// mixGain scales a stream linearly, 0 silences it
func mixGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return newVolume(s, math.Log2(gain))
}

// CreateLaunchSound generates a rising chirp
func CreateLaunchSound(rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(parameter.LaunchSoundFreqLow, parameter.LaunchSoundFreqHigh, parameter.LaunchSoundDuration, WaveSine, rate)
	return NewEnvelope(sweep, parameter.LaunchSoundDuration, parameter.LaunchSoundAttack, parameter.LaunchSoundRelease, rate)
}

// CreateImpactSound generates a low thud layered with noise
func CreateImpactSound(rate beep.SampleRate) beep.Streamer {
	tone := NewOscillator(parameter.ImpactSoundFreq, parameter.ImpactSoundDuration, WaveSquare, rate)
	noise := NewOscillator(0, parameter.ImpactSoundDuration, WaveNoise, rate)

	mixed := beep.Mix(
		mixGain(tone, 1-parameter.ImpactSoundNoiseMix),
		mixGain(noise, parameter.ImpactSoundNoiseMix),
	)
	return NewEnvelope(mixed, parameter.ImpactSoundDuration, parameter.ImpactSoundAttack, parameter.ImpactSoundRelease, rate)
}

// CreateEscapeSound generates a short high blip
func CreateEscapeSound(rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, parameter.EscapeSoundFreq)
	if err != nil {
		return nil, errors.Wrap(err, "escape tone")
	}
	blip := beep.Take(rate.N(parameter.EscapeSoundDuration), tone)
	return NewEnvelope(blip, parameter.EscapeSoundDuration, parameter.EscapeSoundAttack, parameter.EscapeSoundRelease, rate), nil
}

// Build returns a fresh streamer for cue at the master volume
func Build(cue Cue, rate beep.SampleRate) (beep.Streamer, error) {
	var s beep.Streamer
	switch cue {
	case CueLaunch:
		s = CreateLaunchSound(rate)
	case CueImpact:
		s = CreateImpactSound(rate)
	case CueEscape:
		var err error
		if s, err = CreateEscapeSound(rate); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown cue %d", int(cue))
	}
	return newVolume(s, parameter.AudioVolume), nil
}
