package editor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/layout"
	"github.com/matzehuels/papernet/pkg/netfile"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Default control speeds.
const (
	DefaultRotateSpeed = 3.0 // radians per second
	DefaultScaleSpeed  = 1.0 // edge length units per second
)

// Mode is the pointer state of the editor.
type Mode int

const (
	Idle Mode = iota
	Dragging
)

func (m Mode) String() string {
	if m == Dragging {
		return "dragging"
	}
	return "idle"
}

// PersistFunc saves the net at the end of a session.
type PersistFunc func(*netfile.Net) error

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger (default log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(ed *Editor) { ed.logger = l }
}

// WithPersist sets the function called on quit.
func WithPersist(fn PersistFunc) Option {
	return func(ed *Editor) { ed.persist = fn }
}

// WithSpeeds sets the rotate and scale velocities of the held controls.
func WithSpeeds(rotate, scale float64) Option {
	return func(ed *Editor) { ed.rotateSpeed, ed.scaleSpeed = rotate, scale }
}

// WithFace sets the font of the status line. Without one it is not drawn.
func WithFace(f text.Face) Option {
	return func(ed *Editor) { ed.face = f }
}

// Editor is the interactive net designer.
type Editor struct {
	Net    *netfile.Net
	Engine *layout.Engine

	logger      *log.Logger
	persist     PersistFunc
	rotateSpeed float64
	scaleSpeed  float64
	face        text.Face

	mode     Mode
	pointer  gg.Point
	offset   gg.Point
	selected int
	edgeCell int
	edge     int

	rotVel   float64
	scaleVel float64
	last     time.Duration
	clocked  bool

	status string
	done   bool
}

// New returns an editor over a created net and lays it out once.
func New(n *netfile.Net, opts ...Option) (*Editor, error) {
	if !n.Created || n.Store == nil || n.Store.Len() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "net has no cells to edit")
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	ed := &Editor{
		Net:         n,
		Engine:      layout.New(n.Store, n.EdgeLength),
		logger:      log.Default(),
		rotateSpeed: DefaultRotateSpeed,
		scaleSpeed:  DefaultScaleSpeed,
		edgeCell:    topology.None,
		edge:        topology.None,
	}
	for _, opt := range opts {
		opt(ed)
	}
	if err := ed.Engine.Propagate(); err != nil {
		return nil, err
	}
	ed.updateSelection()
	return ed, nil
}

// Mode returns the pointer state.
func (ed *Editor) Mode() Mode { return ed.mode }

// Selected returns the cell nearest to the pointer.
func (ed *Editor) Selected() int { return ed.selected }

// NearestEdge returns the glue-able edge nearest to the pointer, or
// topology.None twice when no edge has a neighbour.
func (ed *Editor) NearestEdge() (cell, edge int) { return ed.edgeCell, ed.edge }

// Status returns the status line.
func (ed *Editor) Status() string { return ed.status }

// Done reports whether the session has ended.
func (ed *Editor) Done() bool { return ed.done }

// Frame runs one iteration of the editor loop at clock reading now.
// It reports whether the session has ended; the error is that of the final
// save, or a broken layout.
func (ed *Editor) Frame(events []Event, now time.Duration) (bool, error) {
	var err error
	for _, ev := range events {
		if err = ed.handle(ev); ed.done {
			return true, err
		}
	}

	dt := 0.0
	if ed.clocked {
		dt = (now - ed.last).Seconds()
	}
	ed.last, ed.clocked = now, true
	if dt > 0 {
		if ed.rotVel != 0 {
			ed.Net.Store.Cell(ed.selected).Rotation += ed.rotVel * dt
		}
		if ed.scaleVel != 0 {
			ed.Engine.SetEdgeLength(ed.Engine.EdgeLength + ed.scaleVel*dt)
		}
	}

	if err := ed.Engine.Propagate(); err != nil {
		return false, err
	}
	if ed.mode == Idle {
		ed.updateSelection()
	}
	return false, nil
}

func (ed *Editor) handle(ev Event) error {
	switch ev.Kind {
	case EventQuit:
		ed.done = true
		return ed.save()

	case EventPointerDown:
		ed.pointer = gg.Pt(ev.X, ev.Y)
		if ev.Button != ButtonPrimary || ed.mode == Dragging {
			return nil
		}
		ed.updateSelection()
		root := ed.Engine.Root(ed.selected)
		if root == topology.None {
			return nil
		}
		ed.offset = ed.Net.Store.Cell(root).Center.Sub(ed.pointer)
		ed.mode = Dragging

	case EventPointerUp:
		ed.pointer = gg.Pt(ev.X, ev.Y)
		if ev.Button == ButtonPrimary {
			ed.mode = Idle
		}

	case EventPointerMove:
		ed.pointer = gg.Pt(ev.X, ev.Y)
		if ed.mode == Dragging {
			if root := ed.Engine.Root(ed.selected); root != topology.None {
				ed.Net.Store.Cell(root).Center = ed.pointer.Add(ed.offset)
			}
		}

	case EventKeyDown:
		return ed.keyDown(ev)

	case EventKeyUp:
		switch {
		case ev.Key == KeyPageUp || ev.Key == KeyPageDown:
			ed.rotVel = 0
		case ev.Key == KeyRune && (ev.Rune == 'z' || ev.Rune == 'x'):
			ed.scaleVel = 0
		}
	}
	return nil
}

func (ed *Editor) keyDown(ev Event) error {
	switch ev.Key {
	case KeyPageUp:
		ed.rotVel = ed.rotateSpeed
	case KeyPageDown:
		ed.rotVel = -ed.rotateSpeed
	case KeyEscape, KeyF10:
		return ed.quit()
	case KeyRune:
		switch ev.Rune {
		case 'z':
			ed.scaleVel = ed.scaleSpeed
		case 'x':
			ed.scaleVel = -ed.scaleSpeed
		case 'g':
			ed.toggle()
		case 'q':
			return ed.quit()
		}
	}
	return nil
}

func (ed *Editor) toggle() {
	if ed.edgeCell == topology.None {
		return
	}
	res := ed.Engine.ToggleGlue(ed.edgeCell, ed.edge)
	ed.status = fmt.Sprintf("cell %d edge %d: %s", ed.edgeCell, ed.edge, res)
	ed.logger.Debug("toggled glue", "cell", ed.edgeCell, "edge", ed.edge, "result", res)
}

// quit saves and ends the session; a failed save keeps it open.
func (ed *Editor) quit() error {
	if err := ed.save(); err != nil {
		ed.status = "could not save: " + errors.UserMessage(err)
		ed.logger.Error("save failed, still editing", "err", err)
		return nil
	}
	ed.done = true
	return nil
}

func (ed *Editor) save() error {
	ed.Net.EdgeLength = ed.Engine.EdgeLength
	if ed.persist == nil {
		return nil
	}
	if err := ed.persist(ed.Net); err != nil {
		return err
	}
	ed.logger.Info("saved layout", "cells", ed.Net.Store.Len(), "edge", ed.Net.EdgeLength)
	return nil
}

// updateSelection finds the cell centre and the glue-able edge midpoint
// nearest to the pointer.
func (ed *Editor) updateSelection() {
	best, bestEdge := -1.0, -1.0
	ed.edgeCell, ed.edge = topology.None, topology.None
	for i, c := range ed.Net.Store.Cells() {
		if d := c.Center.Sub(ed.pointer).LengthSquared(); best < 0 || d < best {
			best, ed.selected = d, i
		}
		for e, j := range c.Neighbors {
			if j == topology.None {
				continue
			}
			if d := ed.Engine.EdgeMid(i, e).Sub(ed.pointer).LengthSquared(); bestEdge < 0 || d < bestEdge {
				bestEdge, ed.edgeCell, ed.edge = d, i, e
			}
		}
	}
}
