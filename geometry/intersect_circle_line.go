package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CircleLineKind tags the result of intersecting a circle with a line
// known to lie in the circle's own plane.
type CircleLineKind int

const (
	CircleLineEmpty CircleLineKind = iota
	CircleLineSingle
	CircleLineDouble
)

// CircleLineResult is the tagged result of Circle3d.IntersectCoplanarLine.
type CircleLineResult struct {
	Kind   CircleLineKind
	Point1 r3.Vec
	Point2 r3.Vec
}

// IntersectCoplanarLine intersects the circle with a line the caller
// guarantees lies in the circle's plane (the non-coplanar circle-circle
// case projects onto the planes' intersection line before calling this).
func (c Circle3d) IntersectCoplanarLine(line Line) CircleLineResult {
	distanceToLine := line.PointToLineDistance(c.center)
	switch ApproxCmp(distanceToLine, c.radius) {
	case Less:
		lineOriginToCenter := r3.Sub(c.center, line.Origin())
		originDist := r3.Norm(lineOriginToCenter)
		var cosAngle float64
		if originDist > 0 {
			cosAngle = r3.Dot(lineOriginToCenter, line.Direction()) / originDist
		}
		h := math.Sqrt(c.radius*c.radius - distanceToLine*distanceToLine)
		t1 := originDist*cosAngle + h
		t2 := originDist*cosAngle - h
		return CircleLineResult{Kind: CircleLineDouble, Point1: line.Point(t1), Point2: line.Point(t2)}
	case Equal:
		t := r3.Dot(r3.Sub(c.center, line.Origin()), line.Direction())
		return CircleLineResult{Kind: CircleLineSingle, Point1: line.Point(t)}
	default:
		return CircleLineResult{Kind: CircleLineEmpty}
	}
}
