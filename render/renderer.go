package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r2"

	"github.com/lixenwraith/gravity-slingshot/core"
	"github.com/lixenwraith/gravity-slingshot/engine"
	"github.com/lixenwraith/gravity-slingshot/parameter"
	"github.com/lixenwraith/gravity-slingshot/physics"
	"github.com/lixenwraith/gravity-slingshot/vmath"
)

const statusHint = "drag to launch · q quit"

// Renderer draws simulation snapshots onto a tcell screen
// Reads snapshots only; never touches the simulation
type Renderer struct {
	screen tcell.Screen
	world  physics.Bounds
	view   Viewport

	trails     *Trails
	showTrails bool

	base tcell.Style
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen, world physics.Bounds, showTrails bool) *Renderer {
	r := &Renderer{
		screen:     screen,
		world:      world,
		trails:     NewTrails(),
		showTrails: showTrails,
		base:       tcell.StyleDefault.Background(RgbBackground),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.view = NewViewport(cols, rows, r.world)
}

// Viewport returns the current playfield mapping
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap engine.Snapshot, now time.Time) {
	r.screen.SetStyle(r.base)
	r.screen.Clear()

	if r.showTrails {
		r.trails.Update(snap, now)
		r.drawTrails(now)
	}
	r.drawPlanet(snap.Planet)
	if snap.Aiming {
		r.drawAim(snap)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(p)
	}
	r.drawStatus(snap)

	r.screen.Show()
}

func (r *Renderer) drawPlanet(planet core.Planet) {
	// Only scan the cells covering the planet's bounding box
	minCol, minRow, _ := r.view.ToCell(planet.Position.Sub(vmath.Vec(planet.Radius, planet.Radius)))
	maxCol, maxRow, _ := r.view.ToCell(planet.Position.Add(vmath.Vec(planet.Radius, planet.Radius)))

	for row := max(minRow, 0); row <= min(maxRow, r.view.PlayRows()-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, r.view.Cols-1); col++ {
			d := vmath.Distance(r.view.ToPlayfield(col, row), planet.Position)
			if d > planet.Radius {
				continue
			}
			depth := d / planet.Radius
			ch := parameter.PlanetChar
			if depth > 0.8 {
				ch = parameter.PlanetEdgeChar
			}
			r.screen.SetContent(col, row, ch, nil, r.base.Foreground(PlanetColor(depth)))
		}
	}
}

func (r *Renderer) drawTrails(now time.Time) {
	r.trails.Each(now, func(pos r2.Point, fade float64) {
		col, row, ok := r.view.ToCell(pos)
		if !ok || fade >= 1 {
			return
		}
		r.screen.SetContent(col, row, parameter.TrailChar, nil, r.base.Foreground(TrailColor(fade)))
	})
}

func (r *Renderer) drawAim(snap engine.Snapshot) {
	x0, y0, _ := r.view.ToCell(snap.Aim.Start)
	x1, y1, _ := r.view.ToCell(snap.Aim.End)
	style := r.base.Foreground(RgbAim)

	Line(x0, y0, x1, y1, func(x, y int) {
		if x >= 0 && x < r.view.Cols && y >= 0 && y < r.view.PlayRows() {
			r.screen.SetContent(x, y, parameter.AimChar, nil, style)
		}
	})

	// Ghost of the ship at the launch point
	if col, row, ok := r.view.ToCell(snap.Aim.Start); ok {
		r.screen.SetContent(col, row, parameter.PreviewChar, nil, r.base.Foreground(RgbPreview))
	}
}

func (r *Renderer) drawProjectile(p core.ProjectileState) {
	col, row, ok := r.view.ToCell(p.Position)
	if !ok {
		return
	}
	style := r.base.Foreground(SpeedColor(vmath.Speed(p.Velocity))).Bold(true)
	r.screen.SetContent(col, row, parameter.ProjectileChar, nil, style)
}

func (r *Renderer) drawStatus(snap engine.Snapshot) {
	row := r.view.Rows - 1
	if row < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)

	text := fmt.Sprintf(" tick %d  active %d  launched %d  hit %d  escaped %d ",
		snap.Tick, len(snap.Projectiles), snap.Stats.Launched, snap.Stats.Collided, snap.Stats.Escaped)

	col := 0
	for _, ch := range text {
		if col >= r.view.Cols {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	for ; col < r.view.Cols; col++ {
		r.screen.SetContent(col, row, ' ', nil, style)
	}

	// Right-aligned hint when it fits
	hint := []rune(statusHint)
	start := r.view.Cols - len(hint) - 1
	if start > len([]rune(text)) {
		for i, ch := range hint {
			r.screen.SetContent(start+i, row, ch, nil, style)
		}
	}
}
