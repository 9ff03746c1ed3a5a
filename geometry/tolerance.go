// Package geometry implements the pure-geometry primitives (sphere, plane,
// line, circle) and their pairwise intersection algebra used by the
// coordination-site search. All float comparisons in the package route
// through Epsilon and the two tolerance predicates below rather than
// comparing raw floats.
package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Epsilon is the fixed absolute tolerance used across every float
// comparison in this package. Crystallographic coordinates are
// ångström-scale; 1e-5 Å is below any chemically meaningful distinction
// and above the rounding noise produced by the square roots and dot
// products used here. Tune it here, nowhere else.
const Epsilon = 1.0e-5

// Ordering is the result of an epsilon-tolerant float comparison.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// ApproxCmp compares a and b within Epsilon.
func ApproxCmp(a, b float64) Ordering {
	switch d := a - b; {
	case d > Epsilon:
		return Greater
	case d < -Epsilon:
		return Less
	default:
		return Equal
	}
}

// PointEquality is the result of an epsilon-tolerant point comparison.
type PointEquality int

const (
	NotEq PointEquality = iota
	Eq
)

// ApproxEqPoint reports whether p and q are equal within the tolerance
// |p-q|^2 < 3*Epsilon^2 (the squared distance at which every axis would
// differ by exactly Epsilon).
func ApproxEqPoint(p, q r3.Vec) PointEquality {
	d := r3.Sub(p, q)
	if r3.Norm2(d) < 3*Epsilon*Epsilon {
		return Eq
	}
	return NotEq
}
