package cui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenButtons maps engine buttons to ebiten buttons.
var ebitenButtons = [mouseButtonCount]ebiten.MouseButton{
	MouseButtonLeft:    ebiten.MouseButtonLeft,
	MouseButtonRight:   ebiten.MouseButtonRight,
	MouseButtonMiddle:  ebiten.MouseButtonMiddle,
	MouseButtonBack:    ebiten.MouseButton3,
	MouseButtonForward: ebiten.MouseButton4,
}

// game adapts a Context to ebiten.Game. Input is polled in Update and the
// frame runs in Draw.
type game struct {
	ctx     *Context
	surface *EbitenSurface
	frame   func(*Context)
	showFPS bool
	fps     *ebiten.Image
	fpsAge  float64
}

// Run opens a window and calls frame once per displayed frame between
// BeginFrame and EndFrame. Frames aborted by a contract violation are
// logged and the loop continues. Run blocks until the window closes.
func Run(cfg Config, frame func(*Context)) error {
	face, err := DefaultFace(cfg.FontSize)
	if err != nil {
		return err
	}
	surface := NewEbitenSurface(nil, face)
	ctx, err := NewContext(surface, cfg)
	if err != nil {
		return err
	}
	if cfg.TestScript != "" {
		runner, err := LoadTestScriptFile(cfg.TestScript)
		if err != nil {
			return err
		}
		ctx.SetTestRunner(runner)
	}

	g := &game{ctx: ctx, surface: surface, frame: frame, showFPS: cfg.ShowFPS}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	if g.showFPS {
		g.fpsAge += 1 / float64(ebiten.TPS())
	}
	if g.ctx.Injecting() {
		return nil
	}
	x, y := ebiten.CursorPosition()
	g.ctx.PointerMove(float64(x), float64(y))
	for b, eb := range ebitenButtons {
		switch {
		case inpututil.IsMouseButtonJustPressed(eb):
			g.ctx.PointerDown(MouseButton(b))
		case inpututil.IsMouseButtonJustReleased(eb):
			g.ctx.PointerUp(MouseButton(b))
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	if err := g.ctx.Frame(g.frame); err != nil {
		logf("frame %d aborted: %v", g.ctx.FrameCount(), err)
	}
	if g.showFPS {
		g.drawFPS(screen)
	}
}

// drawFPS refreshes the readout about twice a second.
func (g *game) drawFPS(screen *ebiten.Image) {
	if g.fps == nil {
		g.fps = ebiten.NewImage(100, 32)
		g.fpsAge = 1
	}
	if g.fpsAge >= 0.5 {
		g.fpsAge = 0
		g.fps.Clear()
		g.fps.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(g.fps, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(g.fps, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
