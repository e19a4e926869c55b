// Package physics provides the axis-aligned collision and containment
// queries used by game logic during the update phase.
package physics

import "github.com/lixenwraith/cellforge/registry"

// Box is an axis-aligned rectangle in cell coordinates.
type Box struct {
	X, Y int
	W, H int
}

// Overlaps reports whether a and b intersect. Intervals are half-open:
// boxes that only touch along an edge do not overlap. The result is
// symmetric in its arguments.
func Overlaps(a, b Box) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Contains reports whether the point (x, y) lies inside b, edges
// inclusive. Hover queries use the inclusive form.
func Contains(b Box, x, y int) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// BoxOf returns the bounding box of an object.
func BoxOf(o *registry.Object) Box {
	return Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Colliding reports whether the bounding boxes of two objects overlap.
// It is a pure query: neither object is read beyond its geometry, so
// standalone hitboxes work the same as registered objects.
func Colliding(a, b *registry.Object) bool {
	return Overlaps(BoxOf(a), BoxOf(b))
}
