// Package flat renders the printable net.
//
// Rendering runs in two phases over the laid-out cells. The texture phase
// copies each wedge of each cell (centre and two consecutive vertices) from
// the source-space image with a [transfer.Copier]. The outline phase then
// draws cell edges in black and, on every edge that has a neighbour but is
// not glued, a labelled tab that tells the reader which other edge it is
// glued to by hand.
//
// Labels are assigned by [AssignLabels] in cell and edge order from
// [Alphabet]; tab colours derive from the label index alone via [TabColor],
// so matching tabs look alike. [Pages] cuts the finished image into the grid
// of printable pages.
package flat
