package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/lixenwraith/gravity-slingshot/audio"
	"github.com/lixenwraith/gravity-slingshot/engine"
	"github.com/lixenwraith/gravity-slingshot/render"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "slingshot: %v\n", err)
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "slingshot"
	app.Usage = "Launch projectiles around a planet in your terminal"
	app.Description = "Press, drag and release the mouse to launch; the drag sets the launch velocity"

	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "debug", Usage: "Write debug log to logs/slingshot.log"},
		cli.BoolFlag{Name: "mute", Usage: "Disable sound"},
		cli.BoolTFlag{Name: "trails", Usage: "Draw fading trails behind projectiles"},
	}

	app.Action = func(c *cli.Context) error {
		return run(c.Bool("debug"), c.Bool("mute"), c.BoolT("trails"))
	}

	return app
}

func run(debugLog, mute, trails bool) error {
	if logFile := setupLogging(debugLog); logFile != nil {
		defer logFile.Close()
	}

	sim, err := engine.NewSimulation(engine.DefaultConfig())
	if err != nil {
		return errors.Wrap(err, "create simulation")
	}

	screen, err := render.NewScreen()
	if err != nil {
		return err
	}

	// Panic Recovery: restore the terminal before reporting the crash
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSLINGSHOT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sounds := audio.NewSoundManager(mute)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, runs silent
		log.Printf("audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	cfg := sim.Config()
	log.Printf("playfield %.0fx%.0f, planet mass %.0f radius %.0f, G %.0f, %d ticks/s",
		cfg.Width, cfg.Height, cfg.PlanetMass, cfg.PlanetRadius, cfg.G, cfg.TickRate)

	newGame(sim, screen, sounds, trails).run()

	final := sim.Snapshot().Stats
	log.Printf("exit: launched %d, hit %d, escaped %d", final.Launched, final.Collided, final.Escaped)
	return nil
}
