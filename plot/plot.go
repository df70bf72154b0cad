// Package plot records a headless simulation run and renders its
// history series to PNG charts.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	lorentzgas "github.com/romovpa/Lorentz-gas"
)

// Config holds the parameters of a headless recording run.
type Config struct {
	Dir   string  // output directory for the rendered charts
	Steps int     // number of simulation steps
	Dt    float64 // simulated seconds per step
}

// Run advances the simulation Steps times, printing progress, and
// writes probability.png, pressure.png and density.png into Dir.
func Run(s *lorentzgas.Simulation, conf *Config) error {
	if err := os.MkdirAll(conf.Dir, 0755); err != nil {
		return err
	}
	for k := 0; k < conf.Steps; k++ {
		fmt.Printf("\r% 3d%%", 100*k/conf.Steps)
		s.Step(conf.Dt)
	}
	fmt.Printf("\r100%%\n")
	return Render(s, conf.Dir)
}

// Render writes the three history charts of a simulation into dir.
// At least two samples must have been recorded.
func Render(s *lorentzgas.Simulation, dir string) error {
	t := s.Time()
	if len(t) < 2 {
		return fmt.Errorf("plot: %d history samples recorded, need at least 2", len(t))
	}

	if err := writeLine(filepath.Join(dir, "probability.png"),
		"Residence probability", t, s.Prob(), chart.ColorRed); err != nil {
		return err
	}

	// pressure is the cumulative impulse divided by elapsed time;
	// samples at t=0 carry no pressure reading
	imp := s.Impulses()
	pt := make([]float64, 0, len(t))
	pv := make([]float64, 0, len(t))
	for i := range t {
		if t[i] == 0 {
			continue
		}
		pt = append(pt, t[i])
		pv = append(pv, imp[i]/t[i])
	}
	if len(pt) >= 2 {
		if err := writeLine(filepath.Join(dir, "pressure.png"),
			"Wall pressure", pt, pv, chart.ColorBlue); err != nil {
			return err
		}
	}

	return writeDensity(filepath.Join(dir, "density.png"), s.Density())
}

// writeLine renders one time series as a line chart.
func writeLine(path, title string, xs, ys []float64, c drawing.Color) error {
	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: "time"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: c, StrokeWidth: 2},
			},
		},
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}

// writeDensity renders the spatial density histogram as a bar chart.
func writeDensity(path string, density []float64) error {
	bars := make([]chart.Value, len(density))
	for b, v := range density {
		bars[b] = chart.Value{Value: v, Label: fmt.Sprintf("%d", b)}
	}
	graph := chart.BarChart{
		Title:    "Spatial density",
		BarWidth: 30,
		Bars:     bars,
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}
