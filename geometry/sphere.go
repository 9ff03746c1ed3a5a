package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Sphere is a sphere of fixed Radius centered at Center. Every probe
// sphere in the search shares the same Radius (the target bondlength);
// the core never models non-uniform bond radii.
type Sphere struct {
	center r3.Vec
	radius float64
}

// NewSphere builds a sphere. radius must be positive; callers at the
// search boundary are responsible for rejecting a zero or negative
// bondlength before it reaches here.
func NewSphere(center r3.Vec, radius float64) Sphere {
	return Sphere{center: center, radius: radius}
}

func (s Sphere) Center() r3.Vec { return s.center }
func (s Sphere) Radius() float64 { return s.radius }

// PointAtSurface returns the point on the sphere's surface in the given
// (unit) direction from the center.
func (s Sphere) PointAtSurface(direction r3.Vec) r3.Vec {
	return r3.Add(s.center, r3.Scale(s.radius, direction))
}
