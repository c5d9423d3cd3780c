package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/gravity-slingshot/core"
)

func TestRemoval(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want Outcome
	}{
		{"inside playfield", 100, 100, OutcomeActive},
		{"on left edge", 0, 100, OutcomeActive},
		{"on far corner", 800, 600, OutcomeActive},
		{"left of playfield", -0.001, 100, OutcomeOffBounds},
		{"right of playfield", 800.5, 100, OutcomeOffBounds},
		{"above playfield", 100, -3, OutcomeOffBounds},
		{"below playfield", 100, 601, OutcomeOffBounds},
		{"on planet surface", 450, 300, OutcomeCollision},
		{"inside planet", 420, 290, OutcomeCollision},
		{"just outside planet", 450.01, 300, OutcomeActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := core.NewProjectile(tc.x, tc.y, 0, 0, 10)
			assert.Equal(t, tc.want, Removal(p, testPlanet, testBounds))
		})
	}
}

func TestRemoval_BothConditionsReportedOnce(t *testing.T) {
	// Planet overlapping the playfield corner
	planet := core.NewPlanet(0, 0, 100, 50)
	p := core.NewProjectile(-10, -10, 0, 0, 10)

	assert.Equal(t, OutcomeCollision, Removal(p, planet, testBounds))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "active", OutcomeActive.String())
	assert.Equal(t, "collision", OutcomeCollision.String())
	assert.Equal(t, "off-bounds", OutcomeOffBounds.String())
	assert.False(t, OutcomeActive.Removed())
	assert.True(t, OutcomeOffBounds.Removed())
}

func TestRemoval_AgreesWithStepForPointPlanet(t *testing.T) {
	// Radius smaller than the degenerate distance
	planet := core.NewPlanet(400, 300, 100, 1e-12)
	p := core.NewProjectile(400+1e-10, 300, 0, 0, 10)

	assert.Equal(t, OutcomeCollision, Removal(p, planet, testBounds))

	before := p.Position
	assert.Equal(t, OutcomeCollision, Step(p, planet, testG, testBounds))
	assert.Equal(t, before, p.Position)
}
