package sites

import (
	"math"

	"github.com/TonyWu20/chemrust-nasl/geometry"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"gonum.org/v1/gonum/spatial/r3"
)

// CoordCircle is the circle formed by intersecting two probe spheres of
// the target bondlength centered on AtomIDs[0] and AtomIDs[1].
// AtomIDs[0] < AtomIDs[1] always.
type CoordCircle struct {
	Circle  geometry.Circle3d
	AtomIDs Pair
}

func NewCoordCircle(circle geometry.Circle3d, atomIDs Pair) CoordCircle {
	if atomIDs[0] > atomIDs[1] {
		atomIDs[0], atomIDs[1] = atomIDs[1], atomIDs[0]
	}
	return CoordCircle{Circle: circle, AtomIDs: atomIDs}
}

// doubleSweepSteps is the number of angular positions the Stage 4 sweep
// tries around a circle before giving up, starting at theta=pi/2.
const doubleSweepSteps = 32

// doubleSweepStep is the angular step between positions: pi/32.
const doubleSweepStep = math.Pi / 32

// GetPossiblePoint runs the Stage 4 double-coordinated sweep: the first
// angular position on the circle whose neighborhood (radius dist+10*eps)
// contains at most two cloud atoms and none strictly closer than dist.
func (c CoordCircle) GetPossiblePoint(index *spatial.SiteIndex, dist float64) (DelegatePoint[Pair], bool) {
	queryRadius := dist + 10*geometry.Epsilon
	queryRadius2 := queryRadius * queryRadius
	dist2 := dist * dist

	for i := 0; i < doubleSweepSteps; i++ {
		theta := math.Pi/2 + float64(i)*doubleSweepStep
		query := c.Circle.PointOnCircle(theta)
		neighbours := index.WithinSquared(query, queryRadius2)

		tooClose := false
		for _, nb := range neighbours {
			if geometry.ApproxCmp(nb.SquaredDist, dist2) == geometry.Less {
				tooClose = true
				break
			}
		}
		if !tooClose && len(neighbours) <= 2 {
			return NewDelegatePoint(query, c.AtomIDs), true
		}
	}
	return DelegatePoint[Pair]{}, false
}

// commonNeighbours returns the union of cloud-atom indices within
// squared distance (2*(dist+10*eps))^2 of either anchor, excluding the
// two anchors themselves -- the set of atoms that could plausibly close
// a third bond onto this circle.
func (c CoordCircle) commonNeighbours(index *spatial.SiteIndex, dist float64) map[int]struct{} {
	r := 2 * (dist + 10*geometry.Epsilon)
	r2 := r * r

	common := make(map[int]struct{})
	for _, anchor := range c.AtomIDs {
		for _, nb := range index.WithinSquared(index.Point(anchor), r2) {
			common[nb.Index] = struct{}{}
		}
	}
	for _, anchor := range c.AtomIDs {
		delete(common, anchor)
	}
	return common
}

// circleSphereToResult maps one common-neighbor's circle-sphere
// intersection into the per-neighbor CoordResult Stage 2 classifies:
// Empty when the sphere misses the circle, SinglePoint (tie-broken by
// larger z on a Double hit) when it touches, Invalid for every
// degenerate case that can't occur with equal-radius probe spheres.
func circleSphereToResult(circleIDs Pair, sphereID int, csr geometry.CircleSphereResult) CoordResult {
	switch csr.Kind {
	case geometry.CircleSphereZero:
		return CoordResult{Kind: ResultEmpty}
	case geometry.CircleSphereSingle:
		return CoordResult{Kind: ResultSinglePoint, SinglePoint: tripleCoordPoint(circleIDs, sphereID, csr.Point1)}
	case geometry.CircleSphereDouble:
		p := csr.Point1
		if geometry.ApproxCmp(csr.Point2.Z, csr.Point1.Z) == geometry.Greater {
			p = csr.Point2
		}
		return CoordResult{Kind: ResultSinglePoint, SinglePoint: tripleCoordPoint(circleIDs, sphereID, p)}
	default:
		// Circle / InsideSphere / SphereInCircle / Invalid: impossible to
		// turn into a valid triple-coordinated point with equal-radius
		// probe spheres; spec.md S4.4 Stage 2 drops the whole circle.
		return CoordResult{Kind: ResultInvalid}
	}
}

func tripleCoordPoint(circleIDs Pair, sphereID int, point r3.Vec) MultiCoordPoint {
	return NewMultiCoordPoint(point, []int{circleIDs[0], circleIDs[1], sphereID})
}

// CommonNeighboursIntersect runs the Stage 2 circle sweep for this
// circle: intersect it with the sphere of every common neighbor, then
// classify the aggregate. Returns ok=false when any neighbor produced an
// Invalid result (the whole circle is dropped); otherwise returns either
// a Circle result (the circle survives as a pure double-coordinated
// candidate) or a Points result (the set of triple-coordinated
// candidates it produced).
func (c CoordCircle) CommonNeighboursIntersect(index *spatial.SiteIndex, dist float64) (CoordResult, bool) {
	neighbours := c.commonNeighbours(index, dist)

	results := make([]CoordResult, 0, len(neighbours))
	for nbID := range neighbours {
		sphere := geometry.NewSphere(index.Point(nbID), dist)
		csr := c.Circle.IntersectSphere(sphere)
		results = append(results, circleSphereToResult(c.AtomIDs, nbID, csr))
	}

	allEmpty := true
	points := make([]MultiCoordPoint, 0, len(results))
	for _, r := range results {
		switch r.Kind {
		case ResultInvalid:
			return CoordResult{}, false
		case ResultEmpty:
			// allEmpty stays true
		case ResultSinglePoint:
			allEmpty = false
			points = append(points, r.SinglePoint)
		}
	}

	if allEmpty {
		return CoordResult{Kind: ResultCircle, Circle: c}, true
	}
	return CoordResult{Kind: ResultPoints, Points: points}, true
}
