// Package netfile reads and writes the text layout file.
//
// # Format
//
// The file is a whitespace-separated stream of fields:
//
//	CELLS SX SY PX PY SCALE BASE EL CREATED
//	degree × CELLS
//	16 anchor coordinates × CELLS      (pairs 0..6 boundary, pair 7 centre)
//	a b e ... -1 -1 -1                  (Neighbors[e] of cell a is b)
//	cx cy rot parent × CELLS
//
// A header with CREATED = 0 ends the file: the complex has not been laid
// out yet. Anchors are written with six decimals and placements with seven,
// so a save followed by a load reproduces the layout to that precision.
//
// # Errors
//
// [Load] reports a missing file or an unreadable header as
// [ErrNothingToLoad]; callers treat that as an empty workspace and proceed
// to a fresh build. Anything wrong after a valid header is a real error.
package netfile
