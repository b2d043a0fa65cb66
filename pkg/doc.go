// Package pkg provides the libraries behind papernet, a tool that unfolds a
// complex of polygonal cells from the hyperbolic plane into a flat paper net
// with glue tabs.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Geometry and topology: [hyperbolic], [topology], [layout]
//  2. Persistence: [netfile] (the layout file) and [io] (JSON interchange)
//  3. Rendering: [render] and its subpackages, [fonts]
//  4. Orchestration: [pipeline], [editor], [cache], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	complex.json
//	     ↓
//	[io] package (read the cell complex)
//	     ↓
//	[topology] package (cells, neighbours, glue forest)
//	     ↓
//	[netfile] package (papermodeldata.txt)
//	     ↓                     ↘
//	[editor] (arrange by hand)  [pipeline] (scope → layout → transfer)
//	     ↓                            ↓
//	papermodeldata.txt         PNG/BMP net, source and page tiles
//
// # Quick Start
//
// Lay out a saved net and export it:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	n, err := runner.Load("papermodeldata.txt")
//	if err != nil {
//	    return err
//	}
//	res, err := runner.Export(ctx, n, pipeline.ExportOptions{OutputDir: "out"})
//
// # Main Packages
//
// [hyperbolic] - Points on the hyperboloid, geodesic midpoints, projection
// into the Poincaré disc and texture sampling.
//
// [topology] - The cell store: neighbours, anchors, glue parents, and the
// provider contract that builds a store from any source of cells.
//
// [layout] - The glue engine. Propagates root positions down the glue forest
// and toggles glue on an edge while keeping the forest acyclic.
//
// [netfile] - Reads and writes the whitespace-separated layout file.
//
// [render/flat] - Renders the textured net with tabs and cuts it into pages.
//
// [editor] - The interactive session: selection, dragging, rotation,
// scaling and glue toggling, independent of any window system.
//
// [pipeline] - The batch path used by the CLI and the preview server.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//
// [hyperbolic]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/hyperbolic
// [topology]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/topology
// [layout]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/layout
// [netfile]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/netfile
// [io]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/render
// [render/flat]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/render/flat
// [fonts]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/pipeline
// [editor]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/editor
// [cache]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/papernet/pkg/observability
package pkg
