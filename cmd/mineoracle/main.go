package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli"

	"github.com/fenwick-labs/mineoracle/internal/app"
	"github.com/fenwick-labs/mineoracle/internal/mineengine"
	"github.com/fenwick-labs/mineoracle/internal/ui"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

var policyByName = map[string]mineengine.Judge{
	"random":        mineengine.Random,
	"strict":        mineengine.Strict,
	"kind":          mineengine.Kind,
	"local":         mineengine.Local,
	"global":        mineengine.Global,
	"kaboom_global": mineengine.KaboomGlobal,
	"kaboom_local":  mineengine.KaboomLocal,
}

func main() {
	myApp := cli.NewApp()
	myApp.Name = "mineoracle"
	myApp.Usage = "a lazy, probabilistic minesweeper"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.Float64Flag{
			Name:  "density",
			Usage: "prior mine probability in [0, 1]; skips the menu and starts a game directly",
		},
		cli.StringFlag{
			Name:  "policy",
			Value: "kind",
			Usage: "fairness policy: random, strict, kind, local, global, kaboom_global, kaboom_local",
		},
		cli.BoolFlag{
			Name:  "no-solvable",
			Usage: "disable the solvability-preserving sampler restriction",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "finite board width; 0 leaves the board unbounded",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "finite board height; 0 leaves the board unbounded",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "RNG seed; 0 seeds from the wall clock",
		},
	}
	myApp.Action = run

	if err := myApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var model tea.Model
	if c.IsSet("density") {
		m, err := quickGame(c)
		if err != nil {
			return err
		}
		model = m
	} else {
		model = app.New()
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithFPS(30))
	_, err := p.Run()
	return err
}

// quickGame builds a Field straight from flags, bypassing the splash
// screen and menu -- useful for scripted sessions and quick restarts of
// a known configuration.
func quickGame(c *cli.Context) (tea.Model, error) {
	density := float32(c.Float64("density"))
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("density must be in [0, 1], got %v", density)
	}

	policyName := c.String("policy")
	judge, ok := policyByName[policyName]
	if !ok {
		return nil, fmt.Errorf("unknown policy %q", policyName)
	}

	var size *mineengine.Size
	width, height := c.Int("width"), c.Int("height")
	if width > 0 && height > 0 {
		size = &mineengine.Size{Width: int32(width), Height: int32(height)}
	}

	opts := &mineengine.Options{Seed: c.Int64("seed")}
	field := mineengine.New(density, judge, !c.Bool("no-solvable"), size, opts)
	m := ui.New(field, judge, "custom", policyName)
	return &m, nil
}
