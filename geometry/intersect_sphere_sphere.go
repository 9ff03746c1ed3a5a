package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SphereSphereKind tags the locus produced by intersecting two spheres.
type SphereSphereKind int

const (
	SphereSphereEmpty SphereSphereKind = iota
	SphereSpherePoint
	SphereSphereCircle
	SphereSphereOverlap
)

// SphereSphereResult is the tagged result of Sphere.IntersectSphere. Only
// the field(s) matching Kind are meaningful.
type SphereSphereResult struct {
	Kind   SphereSphereKind
	Point  r3.Vec
	Circle Circle3d
	Sphere Sphere
}

// sphereSphereRelationship classifies the two spheres by edge case before
// any locus is computed, mirroring the case analysis in spec.md S4.2.
type sphereSphereRelationship int

const (
	relTooFarAway sphereSphereRelationship = iota
	relOverlaps
	relInsideOutOfReach
	relInsideCut
	relOutsideCut
	relIntersect
)

func determineSphereSphereRelationship(s1, s2 Sphere) (rel sphereSphereRelationship, larger, smaller Sphere) {
	d := r3.Sub(s2.Center(), s1.Center())
	dNorm2 := r3.Norm2(d)
	sumSq := (s1.Radius() + s2.Radius()) * (s1.Radius() + s2.Radius())
	largerR := math.Max(s1.Radius(), s2.Radius())
	smallerR := math.Min(s1.Radius(), s2.Radius())
	diffSq := (largerR - smallerR) * (largerR - smallerR)

	switch ApproxCmp(sumSq, dNorm2) {
	case Less:
		return relTooFarAway, s1, s2
	case Equal:
		return relOutsideCut, s1, s2
	default: // Greater: sum of radii exceeds the center distance
		switch ApproxCmp(diffSq, dNorm2) {
		case Less:
			return relIntersect, s1, s2
		case Equal:
			if ApproxCmp(diffSq, 0) == Equal {
				return relOverlaps, s1, s2
			}
			larger, smaller = cmpSphereBySize(s1, s2)
			return relInsideCut, larger, smaller
		default: // Greater
			return relInsideOutOfReach, s1, s2
		}
	}
}

// cmpSphereBySize returns (larger, smaller) by radius; ties favor s1.
func cmpSphereBySize(s1, s2 Sphere) (larger, smaller Sphere) {
	if s1.Radius()-s2.Radius() > 5*epsMachine {
		return s1, s2
	}
	if s1.Radius()-s2.Radius() < -5*epsMachine {
		return s2, s1
	}
	return s1, s2
}

const epsMachine = 2.220446049250313e-16

// IntersectSphere computes the intersection locus of s and rhs: empty,
// a single tangent point, a circle, or (when the two spheres coincide)
// an overlap carrying the first sphere.
func (s Sphere) IntersectSphere(rhs Sphere) SphereSphereResult {
	rel, larger, smaller := determineSphereSphereRelationship(s, rhs)
	switch rel {
	case relTooFarAway, relInsideOutOfReach:
		return SphereSphereResult{Kind: SphereSphereEmpty}
	case relOverlaps:
		return SphereSphereResult{Kind: SphereSphereOverlap, Sphere: s}
	case relOutsideCut:
		d := r3.Sub(rhs.Center(), s.Center())
		return SphereSphereResult{Kind: SphereSpherePoint, Point: s.PointAtSurface(r3.Unit(d))}
	case relInsideCut:
		direction := r3.Unit(r3.Sub(smaller.Center(), larger.Center()))
		return SphereSphereResult{Kind: SphereSpherePoint, Point: larger.PointAtSurface(direction)}
	default: // relIntersect
		return sphereSphereCircleResult(s, rhs)
	}
}

// sphereSphereCircleResult computes the intersection circle of two
// genuinely overlapping spheres (spec.md S4.2's general-intersect case).
func sphereSphereCircleResult(s1, s2 Sphere) SphereSphereResult {
	d := r3.Sub(s2.Center(), s1.Center())
	dNorm := r3.Norm(d)
	d1 := 0.5*dNorm + 0.5*(s1.Radius()*s1.Radius()-s2.Radius()*s2.Radius())/dNorm
	h := math.Sqrt((s1.Radius() + d1) * (s1.Radius() - d1))
	norm := r3.Unit(d)
	center := r3.Add(s1.Center(), r3.Scale(d1, norm))
	return SphereSphereResult{Kind: SphereSphereCircle, Circle: NewCircle3d(center, h, norm)}
}
