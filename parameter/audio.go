package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Launch Sound
const (
	LaunchSoundDuration = 90 * time.Millisecond
	LaunchSoundFreqLow  = 330.0
	LaunchSoundFreqHigh = 990.0
	LaunchSoundAttack   = 5 * time.Millisecond
	LaunchSoundRelease  = 40 * time.Millisecond
)

// Impact Sound
const (
	ImpactSoundDuration = 160 * time.Millisecond
	ImpactSoundFreq     = 110.0
	ImpactSoundNoiseMix = 0.6
	ImpactSoundAttack   = 2 * time.Millisecond
	ImpactSoundRelease  = 120 * time.Millisecond
)

// Escape Sound
const (
	EscapeSoundDuration = 60 * time.Millisecond
	EscapeSoundFreq     = 1320.0
	EscapeSoundAttack   = 5 * time.Millisecond
	EscapeSoundRelease  = 30 * time.Millisecond
)

// Master volume in beep's log2 scale (0 = unity)
const AudioVolume = -1.5
