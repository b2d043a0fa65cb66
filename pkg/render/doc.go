// Package render groups the renderers of papernet.
//
// # Overview
//
// A net is drawn three ways:
//
//   - [flat]: the printable net, every cell textured from the source image
//     and every open edge given a labelled glue tab
//   - [scope]: the source image itself, the complex seen in the Poincaré disc
//   - [nodelink]: the glue forest as a Graphviz diagram
//
// The [transfer] subpackage holds the recursive triangle copier that maps
// curved-space texture onto flat triangles; [flat] drives it per cell.
//
//	src := scope.Render(store, 4096)
//	pm, stats := flat.Render(engine, hyperbolic.NewSampler(src), flat.WithScale(4))
//	pages := flat.Pages(pm, 2, 2)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the glue forest using Graphviz. Roots
// are drawn at the top with children below their parents.
//
//	dot := nodelink.ToDOT(store, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [flat]: github.com/matzehuels/papernet/pkg/render/flat
// [scope]: github.com/matzehuels/papernet/pkg/render/scope
// [nodelink]: github.com/matzehuels/papernet/pkg/render/nodelink
// [transfer]: github.com/matzehuels/papernet/pkg/render/transfer
package render
