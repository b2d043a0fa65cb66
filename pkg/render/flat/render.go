package flat

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/layout"
	"github.com/matzehuels/papernet/pkg/render/transfer"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Sampler looks up source-space colours.
type Sampler interface {
	At(p hyperbolic.Point) gg.RGBA
}

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	width, height int
	scale         float64
	lineWidth     float64
	face          text.Face
	texture       bool
}

// WithCanvas sets the canvas size in layout units (default 800×600).
func WithCanvas(w, h int) Option {
	return func(r *renderer) { r.width, r.height = w, h }
}

// WithScale sets the output pixels per layout unit (default 1).
func WithScale(s float64) Option {
	return func(r *renderer) { r.scale = s }
}

// WithLineWidth sets the outline width in output pixels (default 1).
func WithLineWidth(w float64) Option {
	return func(r *renderer) { r.lineWidth = w }
}

// WithFace sets the label font. Without one, tabs are drawn unlabelled.
func WithFace(f text.Face) Option {
	return func(r *renderer) { r.face = f }
}

// WithoutTexture skips the texture phase, leaving cells white.
func WithoutTexture() Option {
	return func(r *renderer) { r.texture = false }
}

// Stats describes a finished render.
type Stats struct {
	Width, Height int
	Tabs          int
	Transfer      transfer.Stats
}

// LabelSize returns the label glyph size for an edge length in output pixels.
func LabelSize(edge float64) float64 { return edge * 12 / 27 }

// Render draws the net laid out by g. Labels are reassigned on g.Store.
func Render(g *layout.Engine, src Sampler, opts ...Option) (*gg.Pixmap, Stats) {
	r := renderer{width: 800, height: 600, scale: 1, lineWidth: 1, texture: true}
	for _, opt := range opts {
		opt(&r)
	}

	w := int(math.Round(float64(r.width) * r.scale))
	h := int(math.Round(float64(r.height) * r.scale))
	pm := gg.NewPixmap(w, h)
	pm.Clear(gg.White)
	st := Stats{Width: w, Height: h}

	if r.texture && src != nil {
		st.Transfer = r.copyTexture(g, src, pm)
	}

	st.Tabs = AssignLabels(g.Store)
	dc := gg.NewContext(w, h, gg.WithPixmap(pm))
	defer dc.Close()
	r.drawOutlines(dc, g)
	return pm, st
}

func (r *renderer) vertices(g *layout.Engine, i int) []gg.Point {
	v := g.Vertices(i)
	for k := range v {
		v[k] = v[k].Mul(r.scale)
	}
	return v
}

// copyTexture transfers every wedge of every cell in index order. Pixels on
// shared wedge borders keep the colour of the last wedge drawn.
func (r *renderer) copyTexture(g *layout.Engine, src Sampler, pm *gg.Pixmap) transfer.Stats {
	cp := &transfer.Copier[hyperbolic.Point]{
		Dst:       pm,
		Sample:    src.At,
		SourceMid: hyperbolic.Mid,
	}
	for i, c := range g.Store.Cells() {
		v := r.vertices(g, i)
		centre := c.Center.Mul(r.scale)
		n := c.Degree()
		for e := 0; e < n; e++ {
			cp.Triangle(centre, v[e], v[(e+1)%n], c.CenterAnchor, c.Anchor(e), c.Anchor(e+1))
		}
	}
	return cp.Stats
}

// Tab returns the apex of the tab on the edge v1-v2 of a cell centred at
// centre. The apex lies outside the cell at √3/6 of the edge length.
func Tab(centre, v1, v2 gg.Point) gg.Point {
	d := v2.Sub(v1)
	mid := v1.Add(v2).Div(2)
	out := gg.Pt(-d.Y, d.X).Mul(math.Sqrt(3) / 6)
	if out.Dot(mid.Sub(centre)) < 0 {
		out = out.Mul(-1)
	}
	return mid.Add(out)
}

func (r *renderer) drawOutlines(dc *gg.Context, g *layout.Engine) {
	dc.SetLineWidth(r.lineWidth)
	labelled := r.face != nil
	if labelled {
		dc.SetFont(r.face)
	}

	for i, c := range g.Store.Cells() {
		v := r.vertices(g, i)
		centre := c.Center.Mul(r.scale)
		n := c.Degree()
		for e := 0; e < n; e++ {
			v1, v2 := v[e], v[(e+1)%n]
			if l := c.Labels[e]; l != topology.None {
				v4 := Tab(centre, v1, v2)
				dc.SetColor(TabColor(l).Color())
				dc.MoveTo(v1.X, v1.Y)
				dc.LineTo(v2.X, v2.Y)
				dc.LineTo(v4.X, v4.Y)
				dc.ClosePath()
				_ = dc.Fill()

				dc.SetRGB(0, 0, 0)
				dc.MoveTo(v1.X, v1.Y)
				dc.LineTo(v4.X, v4.Y)
				dc.LineTo(v2.X, v2.Y)
				_ = dc.Stroke()

				if labelled {
					at := v1.Add(v2).Add(v4).Div(3)
					dc.DrawStringAnchored(Symbol(l), at.X, at.Y, 0.5, 0.5)
				}
			}
			dc.SetRGB(0, 0, 0)
			dc.DrawLine(v1.X, v1.Y, v2.X, v2.Y)
			_ = dc.Stroke()
		}
	}
}
