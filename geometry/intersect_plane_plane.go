package geometry

import "gonum.org/v1/gonum/spatial/r3"

// PlanePlaneKind tags the relationship between two planes.
type PlanePlaneKind int

const (
	PlanePlaneSame PlanePlaneKind = iota
	PlanePlaneParallel
	PlanePlaneIntersect
)

// PlanePlaneResult is the tagged result of Plane.IntersectPlane.
type PlanePlaneResult struct {
	Kind PlanePlaneKind
	Line Line
}

// IntersectPlane computes the relationship between p and rhs: identical,
// parallel (never touching), or crossing along a line.
func (p Plane) IntersectPlane(rhs Plane) PlanePlaneResult {
	n1 := p.Normal()
	n2 := rhs.Normal()
	n3 := r3.Cross(n1, n2)
	if r3.Norm2(n3) < epsMachine {
		if ApproxCmp(p.D(), rhs.D()) == Equal {
			return PlanePlaneResult{Kind: PlanePlaneSame}
		}
		return PlanePlaneResult{Kind: PlanePlaneParallel}
	}
	h1 := -p.D()
	h2 := -rhs.D()
	n1DotN2 := r3.Dot(n1, n2)
	denom := 1 - n1DotN2*n1DotN2
	d1 := (h1 - h2*n1DotN2) / denom
	d2 := (h2 - h1*n1DotN2) / denom
	x0 := r3.Add(r3.Scale(d1, n1), r3.Scale(d2, n2))
	return PlanePlaneResult{Kind: PlanePlaneIntersect, Line: NewLine(x0, r3.Unit(n3))}
}
