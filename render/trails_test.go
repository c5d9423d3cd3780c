package render

import (
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/engine"
	"github.com/lixenwraith/gravity-slingshot/parameter"
	"github.com/lixenwraith/gravity-slingshot/physics"
)

func TestTrails_LengthCapped(t *testing.T) {
	tr := NewTrails()
	p := core.NewProjectile(0, 0, 1, 0, parameter.ProjectileMass)
	now := time.Now()

	for i := 0; i < parameter.TrailLength*2; i++ {
		p.Position = r2.Point{X: float64(i), Y: 0}
		tr.Update(engine.Snapshot{Projectiles: []core.ProjectileState{p.State()}}, now)
	}

	require.Equal(t, 1, tr.Len())
	points := tr.byID[p.ID].points
	assert.Len(t, points, parameter.TrailLength)
	assert.Equal(t, float64(parameter.TrailLength*2-1), points[len(points)-1].X)
}

func TestTrails_FadeOrder(t *testing.T) {
	tr := NewTrails()
	p := core.NewProjectile(0, 0, 1, 0, parameter.ProjectileMass)
	now := time.Now()

	for i := 0; i < 3; i++ {
		p.Position = r2.Point{X: float64(i), Y: 0}
		tr.Update(engine.Snapshot{Projectiles: []core.ProjectileState{p.State()}}, now)
	}

	var fades []float64
	tr.Each(now, func(_ r2.Point, fade float64) { fades = append(fades, fade) })
	require.Len(t, fades, 3)
	assert.Greater(t, fades[0], fades[1])
	assert.Greater(t, fades[1], fades[2])
	assert.Equal(t, 0.0, fades[2])
}

func TestTrails_RemovedExpire(t *testing.T) {
	tr := NewTrails()
	p := core.NewProjectile(10, 10, 1, 0, parameter.ProjectileMass)
	now := time.Now()

	tr.Update(engine.Snapshot{Projectiles: []core.ProjectileState{p.State()}}, now)
	tr.Update(engine.Snapshot{
		Removed: []engine.Removal{{Projectile: p.State(), Outcome: physics.OutcomeOffBounds}},
	}, now)
	require.Equal(t, 1, tr.Len())

	// Still fading
	tr.Update(engine.Snapshot{}, now.Add(parameter.TrailMaxAge/2))
	assert.Equal(t, 1, tr.Len())

	tr.Update(engine.Snapshot{}, now.Add(parameter.TrailMaxAge+time.Millisecond))
	assert.Equal(t, 0, tr.Len())
}
