// Package hyperbolic models the curved source space the net is cut from.
//
// # Model
//
// Points live on the upper sheet of the hyperboloid z² − x² − y² = 1. Only
// the x and y coordinates are stored (as in the layout file); [Point.Z]
// recovers the third. This is the representation the geometry provider
// supplies anchors in and the one the texture transfer subdivides.
//
// # Midpoints
//
// [Mid] is the geodesic midpoint: the normalised sum of the two points. It is
// the source-space midpoint operator handed to the rasterizer, so every
// subdivided source triangle stays on the surface.
//
// # Projection
//
// [Projector] maps points into the Poincaré disk and from there into the
// pixel grid of a square source image. [Sampler] combines a projector with a
// pixmap to look up the colour of a source point.
package hyperbolic
