//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	log "github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Freblyhet/Wave-Simulator/internal/core"
	"github.com/Freblyhet/Wave-Simulator/internal/preset"
	"github.com/Freblyhet/Wave-Simulator/internal/render"
	"github.com/Freblyhet/Wave-Simulator/internal/sim"
	"github.com/Freblyhet/Wave-Simulator/internal/ui"
)

// Tool selects which edit operation a mouse click performs.
type Tool int

const (
	ToolAddSource Tool = iota
	ToolRemoveSource
	ToolDrawWall
	ToolEraseWall
	ToolSnapWall
	ToolImpulse
)

func (t Tool) String() string {
	switch t {
	case ToolAddSource:
		return "add source"
	case ToolRemoveSource:
		return "remove source"
	case ToolDrawWall:
		return "draw wall"
	case ToolEraseWall:
		return "erase wall"
	case ToolSnapWall:
		return "snap wall"
	case ToolImpulse:
		return "impulse"
	}
	return "unknown"
}

// Defaults for interactively placed sources and impulses.
const (
	newSourceFreq   = 3.0
	newSourceAmp    = 1.5
	impulseRadius   = 6.0
	impulseStrength = 2.0
)

var presetKeys = map[ebiten.Key]string{
	ebiten.KeyF2: preset.DoubleSlit,
	ebiten.KeyF3: preset.RippleTank,
	ebiten.KeyF4: preset.Interference,
	ebiten.KeyF5: preset.Reflection,
	ebiten.KeyF6: preset.CircularArena,
}

// Game adapts the wave simulator to the ebiten.Game interface: it feeds
// real frame deltas into the integrator and turns mouse input into edit
// operations.
type Game struct {
	sim     *sim.Sim
	painter *render.WavePainter
	hud     *ui.HUD
	clock   *core.FrameClock
	snap    *sim.SnapWall

	tool     Tool
	scale    int
	paused   bool
	stepOnce bool

	// Previous drag cell for the wall tools, -1 while not dragging.
	lastX, lastY int
}

// New constructs a Game for the provided simulation.
func New(s *sim.Sim, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	size := s.Size()
	return &Game{
		sim:     s,
		painter: render.NewWavePainter(size.W, size.H),
		hud:     ui.NewHUD(),
		clock:   &core.FrameClock{},
		snap:    &sim.SnapWall{},
		scale:   scale,
		lastX:   -1,
		lastY:   -1,
	}
}

// Update handles input and advances the simulation by the elapsed
// wall-clock time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.ClearWaves()
		log.Info("cleared waves")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		log.Info("reset simulation")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if _, pending := g.snap.First(); pending {
			g.snap.Cancel()
			log.Info("snap wall: cancelled pending point")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.hud.Toggle()
	}
	g.handleToolKeys()
	g.handlePresetKeys()
	g.handleMouse()

	delta := g.clock.Delta()
	if !g.paused || g.stepOnce {
		g.sim.Advance(delta)
		g.stepOnce = false
	}
	return nil
}

func (g *Game) handleToolKeys() {
	keys := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	}
	for i, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			if g.tool == ToolSnapWall && Tool(i) != ToolSnapWall {
				g.snap.Cancel()
			}
			g.tool = Tool(i)
			log.V(1).Infof("tool: %s", g.tool)
		}
	}
}

func (g *Game) handlePresetKeys() {
	for key, name := range presetKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := preset.Apply(g.sim, name); err != nil {
			log.Errorf("preset %q: %v", name, err)
			continue
		}
		g.snap.Cancel()
		log.Infof("loaded preset %q", name)
	}
}

func (g *Game) cursorCell() (int, int) {
	mx, my := ebiten.CursorPosition()
	return mx / g.scale, my / g.scale
}

func (g *Game) inGrid(x, y int) bool {
	size := g.sim.Size()
	return x >= 0 && x < size.W && y >= 0 && y < size.H
}

func (g *Game) handleMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.lastX, g.lastY = -1, -1
		return
	}
	x, y := g.cursorCell()
	just := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch g.tool {
	case ToolAddSource:
		if just && g.inGrid(x, y) {
			src := g.sim.AddSource(float64(x), float64(y), newSourceFreq, newSourceAmp)
			log.Infof("added %s at (%d, %d)", src.Name, x, y)
		}
	case ToolRemoveSource:
		if just {
			if n := g.sim.RemoveSourcesNear(float64(x), float64(y)); n > 0 {
				log.Infof("removed %d source(s) near (%d, %d)", n, x, y)
			}
		}
	case ToolImpulse:
		if just {
			g.sim.Impulse(float64(x), float64(y), impulseRadius, impulseStrength)
		}
	case ToolSnapWall:
		if just && g.inGrid(x, y) {
			if _, pending := g.snap.First(); pending {
				log.Infof("snap wall: second point (%d, %d)", x, y)
			} else {
				log.Infof("snap wall: first point (%d, %d)", x, y)
			}
			g.snap.Click(g.sim, x, y)
		}
	case ToolDrawWall, ToolEraseWall:
		set := g.tool == ToolDrawWall
		if g.lastX >= 0 {
			g.sim.StrokeWall(g.lastX, g.lastY, x, y, set)
		} else if set {
			g.sim.PaintWall(x, y)
		} else {
			g.sim.EraseWall(x, y)
		}
		g.lastX, g.lastY = x, y
	}
}

// Draw renders the field, wall overlay, source markers, and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Walls(), g.scale)

	for _, src := range g.sim.Sources() {
		clr := color.RGBA{255, 64, 64, 255}
		if !src.Active {
			clr = color.RGBA{110, 110, 110, 255}
		}
		g.drawMarker(screen, int(src.X), int(src.Y), clr)
	}
	if p, pending := g.snap.First(); pending {
		g.drawMarker(screen, p.X, p.Y, color.RGBA{64, 255, 64, 255})
	}

	g.hud.Draw(screen, g.statusText())
}

func (g *Game) statusText() string {
	status := fmt.Sprintf("tool: %s (1-6)\nsim time: %.2fs  sources: %d\nfps: %.1f",
		g.tool, g.sim.Clock(), len(g.sim.Sources()), ebiten.ActualFPS())
	if g.paused {
		status += "\npaused (space resumes, n steps)"
	}
	if p, pending := g.snap.First(); pending {
		status += fmt.Sprintf("\nsnap wall: first point (%d, %d), click second or esc", p.X, p.Y)
	}
	return status
}

func (g *Game) drawMarker(screen *ebiten.Image, cx, cy int, clr color.RGBA) {
	r := g.scale + 1
	px, py := cx*g.scale, cy*g.scale
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			screen.Set(px+dx, py+dy, clr)
		}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W * g.scale, size.H * g.scale
}
