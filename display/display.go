// Package display runs an interactive lorentzgas simulation in a window.
//
// Atoms are drawn black, electrons red, on a white background, with an
// optional overlay of the statistics bins. A left click injects an
// electron at the cursor. Space pauses and resumes, right arrow
// performs a single step while paused, up and down arrows grow and
// shrink the electron count, B toggles the bin overlay, T toggles the
// trajectory preview, C clears the simulation, Esc quits.
package display

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	lorentzgas "github.com/romovpa/Lorentz-gas"
)

// Config holds the parameters of the interactive front end.
type Config struct {
	Title      string
	Dt         float64 // simulated seconds per tick
	TraceSteps int     // length of the trajectory preview
	ShowBins   bool    // start with the bin overlay on
	ForcePause bool    // step manually only?
}

// Run opens a window and runs the simulation interactively until the
// window is closed or Esc is pressed.
func Run(s *lorentzgas.Simulation, conf *Config) error {
	par := s.Params()
	ebiten.SetWindowSize(int(par.Width), int(par.Height))
	ebiten.SetWindowTitle(conf.Title)
	return ebiten.RunGame(&game{
		sim:      s,
		conf:     conf,
		pause:    conf.ForcePause,
		showBins: conf.ShowBins,
	})
}

type game struct {
	sim  *lorentzgas.Simulation
	conf *Config

	pause     bool
	step      bool // perform exactly one step while paused
	showBins  bool
	showTrace bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.conf.ForcePause {
		g.pause = !g.pause
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && g.pause {
		g.step = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sim.SetCount(g.sim.Count() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sim.SetCount(g.sim.Count() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.showBins = !g.showBins
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.showTrace = !g.showTrace
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.sim.Add(float64(x), float64(y), 2*math.Pi*rand.Float64())
	}

	if !g.pause || g.step {
		g.step = false
		g.sim.Step(g.conf.Dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	par := g.sim.Params()
	if g.showBins {
		g.drawBins(screen, par)
	}
	g.drawAtoms(screen, par)
	if g.showTrace {
		g.drawTrace(screen)
	}
	for _, e := range g.sim.Electrons() {
		vector.DrawFilledCircle(screen,
			float32(e.Pos.X), float32(e.Pos.Y), float32(par.ElectronR),
			color.RGBA{R: 0xff, A: 0xff}, true)
	}

	hud := fmt.Sprintf("n=%d  t=%.1fs  impulse=%.1f", g.sim.Count(), g.sim.TimeFull(), g.sim.ImpulseSum())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.Black)
}

func (g *game) drawAtoms(screen *ebiten.Image, par lorentzgas.Params) {
	lat := g.sim.Lattice()
	for y := lat.YBegin; y < par.Height; y += lat.Side {
		for x := lat.XBegin; x < par.Width; x += lat.Side {
			vector.DrawFilledCircle(screen,
				float32(x), float32(y), float32(lat.AtomR), color.Black, true)
		}
	}
}

// drawBins shades every other bin and highlights the distinguished one.
func (g *game) drawBins(screen *ebiten.Image, par lorentzgas.Params) {
	if par.Bins < 1 {
		return
	}
	bw := par.Width / float64(par.Bins)
	for b := 0; b < par.Bins; b++ {
		var fill color.RGBA
		switch {
		case b == par.Bin:
			fill = color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0x50}
		case b%2 == 0:
			fill = color.RGBA{A: 0x10}
		default:
			continue
		}
		vector.DrawFilledRect(screen,
			float32(bw*float64(b)), 0, float32(bw), float32(par.Height), fill, false)
	}
}

// drawTrace previews the short-term trajectory of every electron.
func (g *game) drawTrace(screen *ebiten.Image) {
	gray := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	for _, path := range g.sim.Trace(g.conf.Dt, g.conf.TraceSteps) {
		for i := 1; i < len(path); i++ {
			vector.StrokeLine(screen,
				float32(path[i-1].X), float32(path[i-1].Y),
				float32(path[i].X), float32(path[i].Y), 1, gray, true)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	par := g.sim.Params()
	return int(par.Width), int(par.Height)
}
