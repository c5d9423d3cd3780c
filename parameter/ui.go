package parameter

import "time"

// Layout & Margins
const (
	// BottomMargin reserves the status line
	BottomMargin = 1
)

// Glyphs
const (
	PlanetChar     = '█'
	PlanetEdgeChar = '▓'
	ProjectileChar = '●'
	PreviewChar    = '○'
	AimChar        = '·'
	TrailChar      = '•'
)

// Trails
const (
	// TrailLength is the number of past cells kept per projectile
	TrailLength = 12

	// TrailMaxAge is how long a trail point of a removed projectile stays visible
	TrailMaxAge = 400 * time.Millisecond
)

// Speed colour ramp, in world units per tick
const (
	SpeedColorMin = 0.0
	SpeedColorMax = 12.0
)
