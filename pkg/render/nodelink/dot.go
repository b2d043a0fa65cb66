package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/papernet/pkg/render/flat"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds degree and flat position to node labels.
	// When false, only the cell index is shown.
	Detailed bool

	// Tabs draws dashed links for unglued neighbour edges.
	Tabs bool
}

// ToDOT converts the gluing forest of s to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(s *topology.Store, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, margin=\"0.05\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	for i, c := range s.Cells() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(i, c, opts.Detailed))}
		if c.IsRoot() {
			attrs = append(attrs, "fillcolor=\"#ffc0c0\"", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  c%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, c := range s.Cells() {
		if !c.IsRoot() {
			fmt.Fprintf(&buf, "  c%d -> c%d;\n", c.Parent, i)
		}
	}

	if opts.Tabs {
		buf.WriteString("\n")
		for i, c := range s.Cells() {
			for e, j := range c.Neighbors {
				if j == topology.None || j < i || s.Glued(i, e) {
					continue
				}
				attrs := []string{"dir=none", "style=dashed", "color=grey", "constraint=false"}
				if l := c.Labels[e]; l != topology.None {
					attrs = append(attrs, fmt.Sprintf("label=%q", flat.Symbol(l)))
				}
				fmt.Fprintf(&buf, "  c%d -> c%d [%s];\n", i, j, strings.Join(attrs, ", "))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, c *topology.Cell, detailed bool) string {
	if !detailed {
		return strconv.Itoa(i)
	}
	return fmt.Sprintf("%d\ndeg %d\n(%.0f, %.0f)", i, c.Degree(), c.Center.X, c.Center.Y)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
