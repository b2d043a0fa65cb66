// Package layout derives the flat placement of every cell from the gluing
// forest.
//
// # Geometry
//
// Every cell is drawn as a regular polygon with side length EdgeLength. Its
// vertex k sits at Center + ray·dir(Rotation + 2πk/n) and edge e joins
// vertex e to vertex e+1. [Radii] gives the circumradius and the
// centre-to-edge distance.
//
// # Gluing
//
// A non-root cell is placed relative to its glue parent by [Engine.ApplyGlue]
// so that the shared edge coincides on both cells with opposite orientation.
// [Engine.Propagate] applies that rule to every cell in a breadth-first
// order from the roots, so each cell is placed after its parent.
//
// [Engine.ToggleGlue] is the only way the editor changes the forest. It
// unglues an existing pair, or glues a rootless cell to a cell of another
// assembly, and rejects everything else, so the parent pointers remain a
// forest whatever order toggles arrive in.
package layout
