package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestCircleIntersectCircleCoplanarDoublePoint(t *testing.T) {
	normal := r3.Vec{X: 0, Y: 0, Z: 1}
	c1 := NewCircle3d(r3.Vec{X: -0.5, Y: 0, Z: 0}, 1.0, normal)
	c2 := NewCircle3d(r3.Vec{X: 0.5, Y: 0, Z: 0}, 1.0, normal)

	result := c1.IntersectCircle(c2)
	if result.Kind != CircleCircleDouble {
		t.Fatalf("got kind %v, want CircleCircleDouble", result.Kind)
	}
	if ApproxCmp(result.Point1.X, 0) != Equal || ApproxCmp(result.Point2.X, 0) != Equal {
		t.Errorf("expected both points on the perpendicular bisector x=0, got %+v and %+v", result.Point1, result.Point2)
	}
}

func TestCircleIntersectCircleConcentricSameRadiusOverlaps(t *testing.T) {
	normal := r3.Vec{X: 0, Y: 0, Z: 1}
	c1 := NewCircle3d(r3.Vec{X: 0, Y: 0, Z: 0}, 1.0, normal)
	c2 := NewCircle3d(r3.Vec{X: 0, Y: 0, Z: 0}, 1.0, normal)

	result := c1.IntersectCircle(c2)
	if result.Kind != CircleCircleOverlap {
		t.Fatalf("got kind %v, want CircleCircleOverlap", result.Kind)
	}
}

func TestCircleIntersectCircleParallelPlanesAreEmpty(t *testing.T) {
	c1 := NewCircle3d(r3.Vec{X: 0, Y: 0, Z: 0}, 1.0, r3.Vec{X: 0, Y: 0, Z: 1})
	c2 := NewCircle3d(r3.Vec{X: 0, Y: 0, Z: 1}, 1.0, r3.Vec{X: 0, Y: 0, Z: 1})

	result := c1.IntersectCircle(c2)
	if result.Kind != CircleCircleEmpty {
		t.Fatalf("got kind %v, want CircleCircleEmpty", result.Kind)
	}
}

func TestPointOnCircleStaysOnCircle(t *testing.T) {
	c := NewCircle3d(r3.Vec{X: 1, Y: 2, Z: 3}, 2.5, r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1}))
	for _, theta := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		p := c.PointOnCircle(theta)
		dist := r3.Norm(r3.Sub(p, c.Center()))
		if math.Abs(dist-c.Radius()) > 1e-9 {
			t.Errorf("theta=%f: point %+v is distance %f from center, want radius %f", theta, p, dist, c.Radius())
		}
		if !c.PlaneOfCircle().PointInPlane(p) {
			t.Errorf("theta=%f: point %+v is not in the circle's plane", theta, p)
		}
	}
}
