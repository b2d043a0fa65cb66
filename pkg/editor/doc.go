// Package editor implements the interactive net designer.
//
// The [Editor] is driven one frame at a time by [Editor.Frame], which takes
// the input events since the previous frame and a monotonic clock reading.
// A frame applies the events, integrates the held rotate and scale controls
// by the elapsed time, re-propagates the layout and, unless a drag is in
// progress, recomputes which cell and which glue-able edge are nearest to
// the pointer. [Editor.Draw] paints the current state onto a gg context.
//
// # Controls
//
//	primary button   drag the whole assembly under the pointer
//	PageUp/PageDown  rotate the selected cell (held)
//	z / x            grow / shrink the edge length (held)
//	g                glue or unglue the highlighted edge
//	q, Esc, F10      save and quit
//
// Dragging always moves the root of the picked assembly, so glued cells
// move together. Quitting saves through the injected persist function; if
// that fails on a quit key the session goes on with the error in the status
// line, while closing the window ends the session regardless.
//
// The editor is the only writer of the layout while it runs. [Run] drives it
// from any [Substrate] that can be polled; the ebiten window host lives in
// internal/window.
package editor
