package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Output is either a directory (path) for the rendered history
	// charts, or the empty string for an interactive simulation.
	Output string

	Steps int     // number of time steps (headless only)
	Dt    float64 // duration of time steps in simulated seconds
	Seed  int64   // PRNG seed, 0 means seed from the clock

	// Arena and lattice parameters
	Width  float64 // unit: length
	Height float64 // unit: length
	Side   float64 // lattice spacing, unit: length
	AtomR  float64 // atom radius, unit: length

	// Electron parameters
	Electrons int     // initial number of electrons
	ElectronR float64 // electron radius, unit: length
	Speed     float64 // unit: length/second

	// Statistics parameters
	Bins          int     // number of x-axis bins
	Bin           int     // distinguished bin index
	MeasurePeriod float64 // unit: second

	// Interactive mode parameters
	TraceSteps int  // length of the trajectory preview
	ShowBins   bool // start with the bin overlay on
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:        "",
	Steps:         100000,
	Dt:            0.02,
	Seed:          0,
	Width:         400,
	Height:        400,
	Side:          25,
	AtomR:         5,
	Electrons:     20,
	ElectronR:     2,
	Speed:         100,
	Bins:          10,
	Bin:           4,
	MeasurePeriod: 0.5,
	TraceSteps:    25,
	ShowBins:      false,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}
