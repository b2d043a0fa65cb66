// Package window hosts the editor in a desktop window.
package window

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/matzehuels/papernet/pkg/editor"
)

// Options configures the window.
type Options struct {
	Title  string
	Zoom   int // Window pixels per canvas pixel
	TPS    int
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = "papernet"
	}
	if o.Zoom <= 0 {
		o.Zoom = 1
	}
	if o.TPS <= 0 {
		o.TPS = 60
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// Run opens a window on ed and blocks until the session ends. Closing the
// window saves like a quit key; a cancelled ctx does the same.
func Run(ctx context.Context, ed *editor.Editor, opts Options) error {
	opts.setDefaults()

	g := &game{
		ctx:    ctx,
		ed:     ed,
		canvas: ed.NewCanvas(),
		start:  time.Now(),
		logger: opts.Logger,
	}
	defer g.canvas.Close()

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(ed.Net.CanvasW*opts.Zoom, ed.Net.CanvasH*opts.Zoom)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TPS)

	opts.Logger.Debug("opening editor window", "width", ed.Net.CanvasW, "height", ed.Net.CanvasH)
	err := ebiten.RunGame(g)
	if stderrors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil {
		err = g.err
	}
	return err
}

type game struct {
	ctx    context.Context
	ed     *editor.Editor
	canvas *editor.Canvas
	screen *ebiten.Image
	input  input
	start  time.Time
	logger *log.Logger
	err    error
}

func (g *game) Update() error {
	events := g.input.poll()
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		events = append(events, editor.Quit())
	}
	done, err := g.ed.Frame(events, time.Since(g.start))
	if err != nil {
		g.err = err
		return ebiten.Termination
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ed.Paint(g.canvas)
	pm := g.canvas.Pixmap
	if g.screen == nil {
		g.screen = ebiten.NewImage(pm.Width(), pm.Height())
	}
	g.screen.WritePixels(pm.Data())
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ed.Net.CanvasW, g.ed.Net.CanvasH
}
