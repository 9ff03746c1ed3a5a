package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Line is a parametric line through Origin in (unit) Direction.
type Line struct {
	origin    r3.Vec
	direction r3.Vec
}

// NewLine builds a line. direction is expected to already be a unit vector.
func NewLine(origin, direction r3.Vec) Line {
	return Line{origin: origin, direction: r3.Unit(direction)}
}

func (l Line) Origin() r3.Vec    { return l.origin }
func (l Line) Direction() r3.Vec { return l.direction }

// Point returns the point at parameter t along the line.
func (l Line) Point(t float64) r3.Vec {
	return r3.Add(l.origin, r3.Scale(t, l.direction))
}

// PointToLineDistance returns the perpendicular distance from point to
// the line.
func (l Line) PointToLineDistance(point r3.Vec) float64 {
	op := r3.Sub(point, l.origin)
	opNorm := r3.Norm(op)
	if opNorm == 0 {
		return 0
	}
	cosAngle := r3.Dot(op, l.direction) / opNorm
	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	sinAngle := sqrt1MinusSquare(cosAngle)
	return opNorm * sinAngle
}
