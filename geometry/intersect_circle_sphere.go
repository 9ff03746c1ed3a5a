package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CircleSphereKind tags the result of intersecting a circle with a
// sphere.
type CircleSphereKind int

const (
	// CircleSphereInvalid is returned only when the coplanar circle-circle
	// step yields a kind this mapping does not recognise. The degenerate
	// cases where the circle sits inside the sphere, or the sphere's cut
	// sits inside the circle, have their own kinds (InsideSphere,
	// SphereInCircle); Stage 2 drops the circle for all three.
	CircleSphereInvalid CircleSphereKind = iota
	CircleSphereZero
	CircleSphereInsideSphere
	CircleSphereSphereInCircle
	CircleSphereSingle
	CircleSphereDouble
	CircleSphereCircle
)

// CircleSphereResult is the tagged result of Circle3d.IntersectSphere.
type CircleSphereResult struct {
	Kind   CircleSphereKind
	Point1 r3.Vec
	Point2 r3.Vec
	Circle Circle3d
}

// IntersectSphere intersects the circle with a sphere by cutting the
// sphere with the circle's plane (yielding zero or a coplanar circle)
// and reducing to the coplanar circle-circle case.
func (c Circle3d) IntersectSphere(s Sphere) CircleSphereResult {
	csCC := r3.Sub(c.Center(), s.Center())
	cutAt := r3.Dot(c.N(), csCC)

	switch ApproxCmp(math.Abs(cutAt), s.Radius()) {
	case Greater:
		return CircleSphereResult{Kind: CircleSphereZero}
	case Equal:
		projectedDist := math.Sqrt(r3.Norm2(csCC) - s.Radius()*s.Radius())
		switch ApproxCmp(projectedDist, c.Radius()) {
		case Less:
			return CircleSphereResult{Kind: CircleSphereSphereInCircle}
		case Equal:
			p := r3.Add(s.Center(), r3.Scale(cutAt, c.N()))
			return CircleSphereResult{Kind: CircleSphereSingle, Point1: p}
		default:
			return CircleSphereResult{Kind: CircleSphereZero}
		}
	default: // Less: the plane genuinely cuts through the sphere
		newCenter := r3.Add(s.Center(), r3.Scale(cutAt, c.N()))
		newRadius := math.Sqrt(s.Radius()*s.Radius() - cutAt*cutAt)
		newCircle := NewCircle3d(newCenter, newRadius, c.N())
		cc := coplanarCircleCircleIntersect(c, newCircle)
		switch cc.Kind {
		case CircleCircleEmpty:
			return CircleSphereResult{Kind: CircleSphereZero}
		case CircleCircleSingle:
			return CircleSphereResult{Kind: CircleSphereSingle, Point1: cc.Point1}
		case CircleCircleDouble:
			return CircleSphereResult{Kind: CircleSphereDouble, Point1: cc.Point1, Point2: cc.Point2}
		case CircleCircleOverlap:
			return CircleSphereResult{Kind: CircleSphereCircle, Circle: cc.Overlap}
		case CircleCircleContains:
			// No more floating point calculation happened in producing
			// cc.Inner/cc.Outer from c/newCircle, so an exact compare
			// against c's radius tells us which one is "the circle."
			if cc.Inner.Radius() == c.Radius() {
				return CircleSphereResult{Kind: CircleSphereInsideSphere}
			}
			return CircleSphereResult{Kind: CircleSphereSphereInCircle}
		default:
			return CircleSphereResult{Kind: CircleSphereInvalid}
		}
	}
}
