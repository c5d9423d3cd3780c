package audio

// Cue identifies a sound effect triggered by a simulation event
type Cue int

const (
	CueLaunch Cue = iota // Projectile released
	CueImpact            // Projectile hit the planet
	CueEscape            // Projectile left the playfield
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueImpact:
		return "impact"
	case CueEscape:
		return "escape"
	default:
		return "unknown"
	}
}
