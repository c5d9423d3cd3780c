package engine

import (
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/gravity-slingshot/parameter"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

// Config holds the simulation constants
// Created once at startup and read-only afterwards
type Config struct {
	Width, Height float64

	PlanetMass   float64
	PlanetRadius float64

	ProjectileMass float64

	// G is the gravitational constant in world units
	G float64

	// VelocityScale divides the gesture drag vector into a per-tick velocity
	VelocityScale float64

	TickRate int
}

// DefaultConfig returns the constants from the parameter package
func DefaultConfig() Config {
	return Config{
		Width:          parameter.PlayfieldWidth,
		Height:         parameter.PlayfieldHeight,
		PlanetMass:     parameter.PlanetMass,
		PlanetRadius:   parameter.PlanetRadius,
		ProjectileMass: parameter.ProjectileMass,
		G:              parameter.GravitationalConstant,
		VelocityScale:  parameter.VelocityScale,
		TickRate:       parameter.TickRate,
	}
}

// Validate rejects constants the physics cannot run with
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"planet mass", c.PlanetMass},
		{"planet radius", c.PlanetRadius},
		{"projectile mass", c.ProjectileMass},
		{"gravitational constant", c.G},
		{"velocity scale", c.VelocityScale},
	}
	for _, f := range positive {
		if !(f.value > 0) {
			return errors.Errorf("invalid config: %s must be positive, got %v", f.name, f.value)
		}
	}
	if c.TickRate <= 0 {
		return errors.Errorf("invalid config: tick rate must be positive, got %d", c.TickRate)
	}
	return nil
}

// Bounds returns the playfield rectangle
func (c Config) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.Width, Height: c.Height}
}

// PlanetCenter returns the planet position, the middle of the playfield in whole units
func (c Config) PlanetCenter() r2.Point {
	return r2.Point{X: float64(int(c.Width) / 2), Y: float64(int(c.Height) / 2)}
}

// TickInterval returns the wall-clock duration of one tick
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
