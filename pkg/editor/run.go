package editor

import (
	"context"
	"image"
	"time"

	"github.com/gogpu/gg"
)

// Substrate is a display and input source the editor can be driven from.
type Substrate interface {
	// Poll returns the events since the previous call.
	Poll() []Event
	// Now returns a monotonic clock reading.
	Now() time.Duration
	// Present shows a finished frame.
	Present(frame image.Image) error
}

// Canvas is a drawing surface of the net's canvas size.
type Canvas struct {
	Pixmap  *gg.Pixmap
	Context *gg.Context
}

// NewCanvas returns a surface matching the editor's net.
func (ed *Editor) NewCanvas() *Canvas {
	w, h := ed.Net.CanvasW, ed.Net.CanvasH
	pm := gg.NewPixmap(w, h)
	return &Canvas{Pixmap: pm, Context: gg.NewContext(w, h, gg.WithPixmap(pm))}
}

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.Context.Close() }

// Paint draws the current state onto c.
func (ed *Editor) Paint(c *Canvas) {
	ed.Draw(c.Context)
	_ = c.Context.FlushGPU()
}

// Run drives the editor from sub until the session ends or ctx is done.
// A cancelled context saves like a window close.
func Run(ctx context.Context, ed *Editor, sub Substrate) error {
	canvas := ed.NewCanvas()
	defer canvas.Close()

	for {
		events := sub.Poll()
		if ctx.Err() != nil {
			events = append(events, Quit())
		}
		done, err := ed.Frame(events, sub.Now())
		if done || err != nil {
			return err
		}
		ed.Paint(canvas)
		if err := sub.Present(canvas.Pixmap); err != nil {
			return err
		}
	}
}
