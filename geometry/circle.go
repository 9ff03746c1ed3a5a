package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Circle3d is a circle of Radius centered at Center, lying in the plane
// through Center with unit normal N.
type Circle3d struct {
	center r3.Vec
	radius float64
	n      r3.Vec
}

// NewCircle3d builds a circle. n is expected to already be a unit vector.
func NewCircle3d(center r3.Vec, radius float64, n r3.Vec) Circle3d {
	return Circle3d{center: center, radius: radius, n: r3.Unit(n)}
}

func (c Circle3d) Center() r3.Vec  { return c.center }
func (c Circle3d) Radius() float64 { return c.radius }
func (c Circle3d) N() r3.Vec       { return c.n }

// PlaneOfCircle returns the plane the circle lies in.
func (c Circle3d) PlaneOfCircle() Plane {
	return PlaneFromNormalAndPoint(c.n, c.center)
}

// inPlaneBasis picks an arbitrary orthonormal pair (u, v) spanning the
// circle's plane, with v = n x u. The original source (coord_circle.rs,
// visualize.rs) calls a get_point_on_circle helper whose definition
// wasn't retrievable; this basis construction is the natural way to
// parametrize points around a 3-D circle given only its center, radius
// and normal.
func (c Circle3d) inPlaneBasis() (u, v r3.Vec) {
	reference := r3.Vec{X: 0, Y: 0, Z: 1}
	if math.Abs(r3.Dot(reference, c.n)) > 0.9 {
		reference = r3.Vec{X: 1, Y: 0, Z: 0}
	}
	u = r3.Unit(r3.Cross(c.n, reference))
	v = r3.Unit(r3.Cross(c.n, u))
	return u, v
}

// PointOnCircle returns the point on the circle at angle theta, measured
// from an arbitrary but fixed reference direction in the circle's plane.
// theta = pi/2 is the convention the rest of the package uses as "the"
// representative point on a circle (visualize.rs, coord_circle.rs).
func (c Circle3d) PointOnCircle(theta float64) r3.Vec {
	u, v := c.inPlaneBasis()
	offset := r3.Add(r3.Scale(math.Cos(theta), u), r3.Scale(math.Sin(theta), v))
	return r3.Add(c.center, r3.Scale(c.radius, offset))
}

// PointToCircleDistanceRange returns the [min, max] distance from point
// to any point on the circle.
func (c Circle3d) PointToCircleDistanceRange(point r3.Vec) (min, max float64) {
	op := r3.Sub(point, c.center)
	opNorm := r3.Norm(op)
	var cosAngle float64
	if opNorm > 0 {
		cosAngle = r3.Dot(op, c.n) / opNorm
		if cosAngle > 1 {
			cosAngle = 1
		} else if cosAngle < -1 {
			cosAngle = -1
		}
	}
	sinAngle := sqrt1MinusSquare(cosAngle)
	projectionDistance := opNorm * sinAngle
	projectionHeight := opNorm * cosAngle
	minX := math.Abs(projectionDistance - c.radius)
	maxX := projectionDistance + c.radius
	min = math.Hypot(minX, projectionHeight)
	max = math.Hypot(maxX, projectionHeight)
	return min, max
}
