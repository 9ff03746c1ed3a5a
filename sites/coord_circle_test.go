package sites

import (
	"math"
	"testing"

	"github.com/TonyWu20/chemrust-nasl/geometry"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGetPossiblePointFindsAPositionAwayFromCrowd(t *testing.T) {
	// Two anchors on the x-axis, probe spheres of radius sqrt(2) give an
	// intersection circle in the x=0 plane centered on the origin.
	cloud := []r3.Vec{{X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	index := spatial.NewSiteIndex(cloud)

	circle := geometry.NewCircle3d(r3.Vec{X: 0, Y: 0, Z: 0}, 1.0, r3.Vec{X: 1, Y: 0, Z: 0})
	cc := NewCoordCircle(circle, Pair{0, 1})

	point, ok := cc.GetPossiblePoint(index, math.Sqrt2)
	if !ok {
		t.Fatal("expected a viable position on the circle")
	}
	if point.AtomIDs != (Pair{0, 1}) {
		t.Errorf("got atom ids %v, want {0, 1}", point.AtomIDs)
	}
	if geometry.ApproxCmp(point.Point.X, 0) != geometry.Equal {
		t.Errorf("expected the delegate point to stay in the circle's plane, got x=%f", point.Point.X)
	}
}

func TestCommonNeighboursIntersectSurvivesAsCircleWithNoNeighbours(t *testing.T) {
	cloud := []r3.Vec{{X: -1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	index := spatial.NewSiteIndex(cloud)

	circle := geometry.NewCircle3d(r3.Vec{X: 0, Y: 0, Z: 0}, 1.0, r3.Vec{X: 1, Y: 0, Z: 0})
	cc := NewCoordCircle(circle, Pair{0, 1})

	result, ok := cc.CommonNeighboursIntersect(index, 1.0)
	if !ok {
		t.Fatal("expected the circle to survive with no common neighbours")
	}
	if result.Kind != ResultCircle {
		t.Errorf("got kind %v, want ResultCircle", result.Kind)
	}
}

func TestNewCoordCircleSortsAtomIDs(t *testing.T) {
	circle := geometry.NewCircle3d(r3.Vec{}, 1.0, r3.Vec{X: 0, Y: 0, Z: 1})
	cc := NewCoordCircle(circle, Pair{5, 1})
	if cc.AtomIDs != (Pair{1, 5}) {
		t.Errorf("got %v, want {1, 5}", cc.AtomIDs)
	}
}
