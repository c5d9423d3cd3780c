package render

import (
	"time"

	"github.com/golang/geo/r2"
	uuid "github.com/satori/go.uuid"

	"github.com/lixenwraith/gravity-slingshot/engine"
	"github.com/lixenwraith/gravity-slingshot/parameter"
)

type trail struct {
	points    []r2.Point
	removed   bool
	removedAt time.Time
}

// Trails remembers recent positions per projectile for fading paths
// Trails of removed projectiles linger for TrailMaxAge
type Trails struct {
	byID  map[uuid.UUID]*trail
	order []uuid.UUID // insertion order for stable drawing
}

func NewTrails() *Trails {
	return &Trails{byID: make(map[uuid.UUID]*trail)}
}

// Update records the snapshot positions and expires old trails
func (t *Trails) Update(snap engine.Snapshot, now time.Time) {
	for _, p := range snap.Projectiles {
		t.record(p.ID, p.Position)
	}
	for _, r := range snap.Removed {
		tr := t.record(r.Projectile.ID, r.Projectile.Position)
		tr.removed = true
		tr.removedAt = now
	}

	kept := t.order[:0]
	for _, id := range t.order {
		tr := t.byID[id]
		if tr.removed && now.Sub(tr.removedAt) > parameter.TrailMaxAge {
			delete(t.byID, id)
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
}

func (t *Trails) record(id uuid.UUID, pos r2.Point) *trail {
	tr, ok := t.byID[id]
	if !ok {
		tr = &trail{points: make([]r2.Point, 0, parameter.TrailLength)}
		t.byID[id] = tr
		t.order = append(t.order, id)
	}
	if len(tr.points) == parameter.TrailLength {
		copy(tr.points, tr.points[1:])
		tr.points = tr.points[:len(tr.points)-1]
	}
	tr.points = append(tr.points, pos)
	return tr
}

// Each calls fn for every trail point, oldest first
// fade runs 0 (fresh) to 1 (about to vanish), combining point age and removal age
func (t *Trails) Each(now time.Time, fn func(pos r2.Point, fade float64)) {
	for _, id := range t.order {
		tr := t.byID[id]
		base := 0.0
		if tr.removed {
			base = float64(now.Sub(tr.removedAt)) / float64(parameter.TrailMaxAge)
		}
		n := len(tr.points)
		for i, pos := range tr.points {
			age := float64(n-1-i) / float64(parameter.TrailLength)
			fn(pos, clamp01(base+age))
		}
	}
}

// Len returns the number of tracked trails
func (t *Trails) Len() int {
	return len(t.order)
}
