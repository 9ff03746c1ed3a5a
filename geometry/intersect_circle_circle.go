package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CircleCircleKind tags the locus produced by intersecting two circles.
type CircleCircleKind int

const (
	CircleCircleEmpty CircleCircleKind = iota
	CircleCircleSingle
	CircleCircleDouble
	CircleCircleOverlap
	// CircleCircleContains holds an (inner, outer) pair of coplanar,
	// concentric, non-touching circles.
	CircleCircleContains
)

// CircleCircleResult is the tagged result of Circle3d.IntersectCircle.
type CircleCircleResult struct {
	Kind         CircleCircleKind
	Point1       r3.Vec
	Point2       r3.Vec
	Overlap      Circle3d
	Inner, Outer Circle3d
}

// IntersectCircle computes the intersection locus of c and rhs, handling
// both the coplanar and non-coplanar cases via their planes'
// relationship.
func (c Circle3d) IntersectCircle(rhs Circle3d) CircleCircleResult {
	p1 := c.PlaneOfCircle()
	p2 := rhs.PlaneOfCircle()
	switch pp := p1.IntersectPlane(p2); pp.Kind {
	case PlanePlaneParallel:
		return CircleCircleResult{Kind: CircleCircleEmpty}
	case PlanePlaneSame:
		return coplanarCircleCircleIntersect(c, rhs)
	default: // PlanePlaneIntersect
		return noncoplanarCircleCircleIntersect(c, rhs, pp.Line)
	}
}

// coplanarCircleCircleIntersect handles two circles known to lie in the
// same plane: concentric overlap/containment, tangency, a two-point
// general intersection, or no intersection at all.
func coplanarCircleCircleIntersect(c1, c2 Circle3d) CircleCircleResult {
	c1c2 := r3.Sub(c2.Center(), c1.Center())
	c1c2Norm2 := r3.Norm2(c1c2)

	if ApproxCmp(c1c2Norm2, 0) == Equal {
		switch ApproxCmp(c1.Radius(), c2.Radius()) {
		case Equal:
			return CircleCircleResult{Kind: CircleCircleOverlap, Overlap: c1}
		case Less:
			return CircleCircleResult{Kind: CircleCircleContains, Inner: c1, Outer: c2}
		default:
			return CircleCircleResult{Kind: CircleCircleContains, Inner: c2, Outer: c1}
		}
	}

	sumSq := (c1.Radius() + c2.Radius()) * (c1.Radius() + c2.Radius())
	switch ApproxCmp(c1c2Norm2, sumSq) {
	case Equal:
		direction := r3.Unit(c1c2)
		p := r3.Add(c1.Center(), r3.Scale(c1.Radius(), direction))
		return CircleCircleResult{Kind: CircleCircleSingle, Point1: p}
	case Greater:
		return CircleCircleResult{Kind: CircleCircleEmpty}
	default: // Less
		diffSq := (c1.Radius() - c2.Radius()) * (c1.Radius() - c2.Radius())
		switch ApproxCmp(c1c2Norm2, diffSq) {
		case Less:
			return CircleCircleResult{Kind: CircleCircleEmpty}
		case Equal:
			larger, smaller := cmpCircleBySize(c1, c2)
			direction := r3.Unit(r3.Sub(smaller.Center(), larger.Center()))
			p := r3.Add(larger.Center(), r3.Scale(larger.Radius(), direction))
			return CircleCircleResult{Kind: CircleCircleSingle, Point1: p}
		default: // Greater: the general two-point case
			c1c2Unit := r3.Unit(c1c2)
			c1c2Perp := r3.Unit(r3.Cross(c1.N(), c1c2Unit))
			h := (c1c2Norm2 + c1.Radius()*c1.Radius() - c2.Radius()*c2.Radius()) / (2 * r3.Norm(c1c2))
			dy := math.Sqrt(c1.Radius()*c1.Radius() - h*h)
			pDx := r3.Add(c1.Center(), r3.Scale(h, c1c2Unit))
			p1 := r3.Add(pDx, r3.Scale(dy, c1c2Perp))
			p2 := r3.Sub(pDx, r3.Scale(dy, c1c2Perp))
			return CircleCircleResult{Kind: CircleCircleDouble, Point1: p1, Point2: p2}
		}
	}
}

// cmpCircleBySize returns (larger, smaller) by radius; ties favor c1.
func cmpCircleBySize(c1, c2 Circle3d) (larger, smaller Circle3d) {
	if ApproxCmp(c1.Radius(), c2.Radius()) == Less {
		return c2, c1
	}
	return c1, c2
}

// noncoplanarCircleCircleIntersect projects both circles onto the line
// where their planes cross and pairs up the (0, 1, or 2) intersection
// points each circle has with that line.
func noncoplanarCircleCircleIntersect(c1, c2 Circle3d, line Line) CircleCircleResult {
	r1 := c1.IntersectCoplanarLine(line)
	r2 := c2.IntersectCoplanarLine(line)

	if r1.Kind == CircleLineEmpty || r2.Kind == CircleLineEmpty {
		return CircleCircleResult{Kind: CircleCircleEmpty}
	}

	if r1.Kind == CircleLineSingle && r2.Kind == CircleLineSingle {
		if ApproxEqPoint(r1.Point1, r2.Point1) == Eq {
			return CircleCircleResult{Kind: CircleCircleSingle, Point1: r1.Point1}
		}
		return CircleCircleResult{Kind: CircleCircleEmpty}
	}

	if r1.Kind == CircleLineSingle && r2.Kind == CircleLineDouble {
		return singleAgainstDouble(r1.Point1, r2.Point1, r2.Point2)
	}
	if r1.Kind == CircleLineDouble && r2.Kind == CircleLineSingle {
		return singleAgainstDouble(r2.Point1, r1.Point1, r1.Point2)
	}

	// Both Double: the full case discussion from the original source,
	// trying both pairings before concluding there is no common point.
	p1, p2 := r1.Point1, r1.Point2
	p3, p4 := r2.Point1, r2.Point2
	eq13, eq24 := ApproxEqPoint(p1, p3), ApproxEqPoint(p2, p4)
	switch {
	case eq13 == NotEq && eq24 == Eq:
		return CircleCircleResult{Kind: CircleCircleSingle, Point1: p2}
	case eq13 == Eq && eq24 == NotEq:
		return CircleCircleResult{Kind: CircleCircleSingle, Point1: p1}
	case eq13 == Eq && eq24 == Eq:
		return CircleCircleResult{Kind: CircleCircleDouble, Point1: p1, Point2: p2}
	default:
		eq14, eq23 := ApproxEqPoint(p1, p4), ApproxEqPoint(p2, p3)
		switch {
		case eq14 == NotEq && eq23 == Eq:
			return CircleCircleResult{Kind: CircleCircleSingle, Point1: p2}
		case eq14 == Eq && eq23 == NotEq:
			return CircleCircleResult{Kind: CircleCircleSingle, Point1: p1}
		case eq14 == Eq && eq23 == Eq:
			return CircleCircleResult{Kind: CircleCircleDouble, Point1: p1, Point2: p2}
		default:
			return CircleCircleResult{Kind: CircleCircleEmpty}
		}
	}
}

func singleAgainstDouble(single, a, b r3.Vec) CircleCircleResult {
	if ApproxEqPoint(single, a) == Eq {
		return CircleCircleResult{Kind: CircleCircleSingle, Point1: single}
	}
	if ApproxEqPoint(single, b) == Eq {
		return CircleCircleResult{Kind: CircleCircleSingle, Point1: single}
	}
	return CircleCircleResult{Kind: CircleCircleEmpty}
}
