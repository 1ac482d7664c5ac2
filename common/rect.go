package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world pixels. Y grows downward, so
// BB().B is the top edge in screen terms; only relative ordering matters for
// the overlap tests.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// BB converts the rect to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Intersects reports whether the two rects overlap (edge contact counts).
func (r Rect) Intersects(other Rect) bool {
	return r.BB().Intersects(other.BB())
}

// Center returns the rect's midpoint.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
