// Command lorentz runs a 2D Lorentz gas simulation: electrons bouncing
// among a square lattice of atoms.
//
// Usage
//
// The lorentz command takes one optional argument:
//  lorentz [config_file]
// It is the path to a TOML config file.
// If no config file is specified, an interactive simulation
// with default parameters will run in a window.
//
// Config file
//
// The config file is written in TOML. If you are not familiar with TOML,
// fear not! It's basically a modern version of INI. Very very simple.
// See https://github.com/toml-lang/toml for the full language spec.
// Setting Output to a directory path switches to a headless run that
// writes the residence probability, wall pressure and spatial density
// charts into that directory.
//
// Interactive mode
//
// In interactive mode, the simulation can be paused/resumed with space.
// While in pause, pressing right arrow will perform a single step.
// A left click injects an electron at the cursor. Up and down arrows
// grow and shrink the electron count, B toggles the bin overlay,
// T toggles the trajectory preview, C clears the simulation.
// Pressing Esc or closing the window will quit.
package main

import (
	"fmt"
	"os"
	"time"

	lorentzgas "github.com/romovpa/Lorentz-gas"
	"github.com/romovpa/Lorentz-gas/display"
	"github.com/romovpa/Lorentz-gas/plot"
)

const usage = `Usage: lorentz [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in a window.
`

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	// setup simulation
	sim := setup(conf)

	// run interactively or not depending on config
	if conf.Output == "" {
		err = display.Run(sim, &display.Config{
			Title:      "Lorentz gas",
			Dt:         conf.Dt,
			TraceSteps: conf.TraceSteps,
			ShowBins:   conf.ShowBins,
		})
	} else {
		err = plot.Run(sim, &plot.Config{
			Dir:   conf.Output,
			Steps: conf.Steps,
			Dt:    conf.Dt,
		})
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// setup initializes the simulation state from the config.
func setup(conf *Config) *lorentzgas.Simulation {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := lorentzgas.New(lorentzgas.Params{
		Width:         conf.Width,
		Height:        conf.Height,
		Side:          conf.Side,
		AtomR:         conf.AtomR,
		ElectronR:     conf.ElectronR,
		Speed:         conf.Speed,
		Bins:          conf.Bins,
		Bin:           conf.Bin,
		MeasurePeriod: conf.MeasurePeriod,
	}, seed)
	sim.SetCount(conf.Electrons)
	return sim
}
