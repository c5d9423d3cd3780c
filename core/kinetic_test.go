package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProjectile_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := NewProjectile(1, 2, 3, 4, 10)
		id := p.ID.String()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestProjectile_StateIsDetached(t *testing.T) {
	p := NewProjectile(10, 20, 3, 4, 10)
	assert.InDelta(t, 5.0, p.Speed(), 1e-9)
	st := p.State()

	p.Position.X = 999
	p.Velocity.Y = -1

	assert.Equal(t, 10.0, st.Position.X)
	assert.Equal(t, 4.0, st.Velocity.Y)
	assert.Equal(t, p.ID, st.ID)
}

func TestNewPlanet(t *testing.T) {
	pl := NewPlanet(400, 300, 100, 50)
	assert.Equal(t, 400.0, pl.Position.X)
	assert.Equal(t, 300.0, pl.Position.Y)
	assert.Equal(t, 100.0, pl.Mass)
	assert.Equal(t, 50.0, pl.Radius)
}
