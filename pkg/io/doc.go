// Package io provides JSON import and export for cell complexes and their
// flat layouts.
//
// # Complex format
//
// A complex is an array of cells. Each cell lists its neighbours by index
// (-1 for a border edge), its boundary anchors in source space, and an
// interior reference point:
//
//	[
//	  {"neighbors": [1, -1, -1, -1],
//	   "anchors": [{"x": 0.1, "y": 0}, {"x": 0, "y": 0.1}, ...],
//	   "center": {"x": 0, "y": 0}},
//	  ...
//	]
//
// Anchor e and anchor e+1 bound edge e. [ReadComplex] validates the
// complex with [topology.Build], so an imported file is symmetric and
// in range, and every cell has between three and seven edges.
// [WriteComplex] writes the same format back, which makes it the way to
// feed a geometry generator's output into a layout file.
//
// # Layout format
//
// [WriteLayout] emits the planar vertices of every cell after propagation,
// together with parents and tab labels, for external tools that want to
// cut or plot the net themselves:
//
//	{"edge_length": 40, "cells": [{"index": 0, "parent": -1,
//	  "center": {"x": 400, "y": 300}, "rotation": 0,
//	  "vertices": [{"x": ..., "y": ...}, ...], "labels": [-1, 3, ...]}]}
package io
