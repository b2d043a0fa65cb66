package editor

import (
	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/render/flat"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Editor palette.
var (
	ColorBackground = gg.Black
	ColorPageGrid   = gg.Hex("#404080")
	ColorSelected   = gg.Hex("#40FF40")
	ColorGlued      = gg.Hex("#303030")
	ColorUnglued    = gg.Hex("#C0C0C0")
	ColorBorder     = gg.Hex("#808080")
	ColorTab        = gg.Hex("#FFC0C0")
	ColorRoot       = gg.Hex("#FF4040")
	ColorStatus     = gg.Hex("#E0E0E0")
)

// Marker radii in canvas units.
const (
	selectedRadius = 10
	edgeCellRadius = 5
	rootRadius     = 7
)

// EdgeColor returns the colour edge e of cell i is drawn in. The glue
// candidate is highlighted on both of its sides.
func (ed *Editor) EdgeColor(i, e int) gg.RGBA {
	s := ed.Net.Store
	switch {
	case ed.isCandidate(i, e):
		return ColorSelected
	case s.Cell(i).Neighbors[e] == topology.None:
		return ColorBorder
	case s.Glued(i, e):
		return ColorGlued
	default:
		return ColorUnglued
	}
}

func (ed *Editor) isCandidate(i, e int) bool {
	if ed.edgeCell == topology.None {
		return false
	}
	if i == ed.edgeCell && e == ed.edge {
		return true
	}
	j, back, ok := ed.Net.Store.BackEdge(ed.edgeCell, ed.edge)
	return ok && i == j && e == back
}

// Draw paints the editor view onto dc. The context is expected to be the
// canvas size of the net.
func (ed *Editor) Draw(dc *gg.Context) {
	dc.ClearWithColor(ColorBackground)
	ed.drawPageGrid(dc)

	s := ed.Net.Store
	for i, c := range s.Cells() {
		vs := ed.Engine.Vertices(i)
		n := len(vs)
		for e := range c.Neighbors {
			a, b := vs[e], vs[(e+1)%n]
			dc.SetColor(ed.EdgeColor(i, e).Color())
			dc.SetLineWidth(1)
			dc.DrawLine(a.X, a.Y, b.X, b.Y)
			_ = dc.Stroke()

			if c.Neighbors[e] != topology.None && !s.Glued(i, e) {
				apex := flat.Tab(c.Center, a, b)
				dc.SetColor(ColorTab.Color())
				dc.MoveTo(a.X, a.Y)
				dc.LineTo(apex.X, apex.Y)
				dc.LineTo(b.X, b.Y)
				_ = dc.Stroke()
			}
		}
	}

	ed.drawMarkers(dc)

	if ed.face != nil && ed.status != "" {
		dc.SetFont(ed.face)
		dc.SetColor(ColorStatus.Color())
		dc.DrawString(ed.status, 8, float64(dc.Height())-8)
	}
}

func (ed *Editor) drawPageGrid(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	p := ed.Net.Params
	dc.SetColor(ColorPageGrid.Color())
	dc.SetLineWidth(1)
	for k := 1; k < p.PagesX; k++ {
		x := w * float64(k) / float64(p.PagesX)
		dc.DrawLine(x, 0, x, h)
	}
	for k := 1; k < p.PagesY; k++ {
		y := h * float64(k) / float64(p.PagesY)
		dc.DrawLine(0, y, w, y)
	}
	_ = dc.Stroke()
}

func (ed *Editor) drawMarkers(dc *gg.Context) {
	s := ed.Net.Store
	for _, r := range s.Roots() {
		c := s.Cell(r).Center
		dc.SetColor(ColorRoot.Color())
		dc.DrawCircle(c.X, c.Y, rootRadius)
		_ = dc.Stroke()
	}

	if ed.edgeCell != topology.None {
		dc.SetColor(ColorSelected.Color())
		c := s.Cell(ed.edgeCell).Center
		dc.DrawCircle(c.X, c.Y, edgeCellRadius)
		_ = dc.Stroke()
		if j := s.Cell(ed.edgeCell).Neighbors[ed.edge]; j != topology.None {
			c = s.Cell(j).Center
			dc.DrawCircle(c.X, c.Y, edgeCellRadius)
			_ = dc.Stroke()
		}
	}

	c := s.Cell(ed.selected).Center
	dc.SetColor(ColorSelected.Color())
	dc.DrawCircle(c.X, c.Y, selectedRadius)
	_ = dc.Stroke()
}
