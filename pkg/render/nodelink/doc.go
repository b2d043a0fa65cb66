// Package nodelink renders the gluing forest as a node-link diagram.
//
// # Overview
//
// Each cell becomes a node; each glue parent points at its children with a
// solid arrow, so every tree of the diagram is one rigid assembly of the
// net. Edges that have a neighbour but are not glued are drawn as dashed
// lines without layout weight, labelled with their tab symbol when labels
// have been assigned. Root cells are filled so assemblies are easy to count.
//
// # Usage
//
//	dot := nodelink.ToDOT(store, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with circular
// nodes, roots at the top.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
