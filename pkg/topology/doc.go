// Package topology holds the cell complex that is unfolded into a net.
//
// # Overview
//
// A [Store] is an ordered collection of [Cell] records indexed 0..N−1. Each
// cell knows its degree, the cell across each of its edges, and the exact
// source-space anchors of its boundary vertices and interior reference
// point. Those fields are captured once, by [Build] from a [Provider] or by
// the layout file codec, and never change afterwards.
//
// The remaining fields (Center, Rotation, Parent and Labels) describe the
// flat placement of the cell. They are mutated by the layout engine and the
// editor only.
//
// # Edges and anchors
//
// Edge e of a cell runs from anchor e to anchor e+1 (mod degree), and
// Neighbors[e] is the cell across it, or [None] on the border of the
// complex. The neighbour relation must be symmetric: if Neighbors[e] of cell
// i is j, some edge of j points back to i. [Store.Validate] checks this and
// the other structural rules and reports violations as coded errors.
//
// # Gluing forest
//
// Parent is the cell this cell is glued to, or [None] for a root. Parent
// pointers form a forest and a parent is always a neighbour. [Store.SeedForest]
// produces the initial forest of a freshly built complex.
//
// # Capacity
//
// A store holds at most [MaxCells] cells of degree [MinDegree] to
// [MaxDegree]. Both limits come from the packed layout file format and are
// enforced before any cell is stored.
package topology
