package parameter

// Playfield dimensions in world units
const (
	PlayfieldWidth  = 800.0
	PlayfieldHeight = 600.0
)

// Gravity source
const (
	// GravitationalConstant is scaled for the world unit system, not SI
	GravitationalConstant = 5.0

	PlanetMass   = 100.0
	PlanetRadius = 50.0
)

// Launched bodies
const (
	// ProjectileMass is carried for completeness, acceleration does not depend on it
	ProjectileMass = 10.0

	// ProjectileRadius is visual only, collision treats projectiles as points
	ProjectileRadius = 10.0

	// VelocityScale divides the drag vector (world units) into velocity (units per tick)
	VelocityScale = 50.0
)

// DegenerateDistance is the distance below which no force is ever computed
const DegenerateDistance = 1e-9
