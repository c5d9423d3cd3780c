package main

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-slingshot/audio"
	"github.com/lixenwraith/gravity-slingshot/engine"
	"github.com/lixenwraith/gravity-slingshot/event"
	"github.com/lixenwraith/gravity-slingshot/render"
)

// game wires the terminal, the simulation and the speaker together
// The poller goroutine owns mouse translation; everything else runs on the loop goroutine
type game struct {
	sim      *engine.Simulation
	screen   tcell.Screen
	renderer *render.Renderer
	sounds   *audio.SoundManager

	queue   *event.Queue
	mouse   *render.MouseTracker
	view    atomic.Pointer[render.Viewport]
	control chan tcell.Event

	stats engine.Stats
}

func newGame(sim *engine.Simulation, screen tcell.Screen, sounds *audio.SoundManager, trails bool) *game {
	g := &game{
		sim:      sim,
		screen:   screen,
		renderer: render.NewRenderer(screen, sim.Config().Bounds(), trails),
		sounds:   sounds,
		queue:    event.NewQueue(),
		mouse:    render.NewMouseTracker(),
		control:  make(chan tcell.Event, 16),
	}
	g.storeViewport()
	return g
}

func (g *game) storeViewport() {
	v := g.renderer.Viewport()
	g.view.Store(&v)
}

// poll forwards terminal events until the screen is finalized
// Mouse reports go to the lock-free queue, everything else to the control channel
func (g *game) poll() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		g.dispatch(ev)
	}
}

func (g *game) dispatch(ev tcell.Event) {
	if mev, ok := ev.(*tcell.EventMouse); ok {
		for _, pe := range g.mouse.Translate(mev, *g.view.Load()) {
			g.queue.Push(pe)
		}
		return
	}

	select {
	case g.control <- ev:
	default:
		log.Printf("control event dropped: %T", ev)
	}
}

// handleControl reacts to keys and resizes, returns false when the game should exit
func (g *game) handleControl(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if e.Rune() == 'q' || e.Rune() == 'Q' {
				return false
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
		g.storeViewport()
		log.Printf("resized to %dx%d", g.renderer.Viewport().Cols, g.renderer.Viewport().Rows)
	}
	return true
}

// frame runs one tick on the drained input and presents the result
func (g *game) frame(now time.Time) engine.Snapshot {
	snap := g.sim.Tick(g.queue.Consume())
	g.renderer.Draw(snap, now)

	for _, cue := range audio.CuesFor(snap, g.stats) {
		g.sounds.Play(cue)
	}
	g.stats = snap.Stats
	return snap
}

// run drives the fixed-rate loop until a quit key arrives
func (g *game) run() {
	go g.poll()

	ticker := time.NewTicker(g.sim.Config().TickInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-g.control:
			if !g.handleControl(ev) {
				return
			}
		case now := <-ticker.C:
			g.frame(now)
		}
	}
}
