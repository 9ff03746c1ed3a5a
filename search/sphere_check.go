package search

import (
	"sort"

	"github.com/TonyWu20/chemrust-nasl/geometry"
	"github.com/TonyWu20/chemrust-nasl/sites"
	"github.com/TonyWu20/chemrust-nasl/spatial"
)

// sphereCheckResult is the Stage 1 output: two-anchor points found
// directly from tangent pairwise sphere intersections, and the circles
// left over for Stage 2 to check against the rest of the neighborhood.
type sphereCheckResult struct {
	singlePoints     []sites.MultiCoordPoint
	uncheckedCircles []sites.CoordCircle
}

// idPair is an unordered pair of atom IDs, always stored with the
// smaller ID first, used to avoid running the same sphere-sphere
// intersection twice from either direction.
type idPair [2]int

func newIDPair(a, b int) idPair {
	if a > b {
		a, b = b, a
	}
	return idPair{a, b}
}

// sphereCheck runs Stage 1: for every atom to probe, intersect its probe
// sphere against the sphere of each atom within twice the bondlength,
// visiting every unordered pair exactly once, with each probe's
// neighbours taken in ascending atom index. A point intersection that
// survives the no-closer-than-bondlength check becomes a two-anchor
// candidate; a circle intersection is carried to Stage 2 unresolved.
func sphereCheck(index *spatial.SiteIndex, config Config) sphereCheckResult {
	dist := config.Bondlength
	queryRadius2 := 4 * dist * dist

	visited := make(map[idPair]struct{})
	var points []sites.MultiCoordPoint
	var circles []sites.CoordCircle

	for _, probe := range config.ToCheck {
		sphere := geometry.NewSphere(probe.Point, dist)
		neighbours := index.WithinSquared(probe.Point, queryRadius2)
		if len(neighbours) <= 1 {
			continue
		}
		sort.Slice(neighbours, func(i, j int) bool { return neighbours[i].Index < neighbours[j].Index })

		for _, nb := range neighbours {
			if nb.Index == probe.AtomID {
				continue
			}
			pair := newIDPair(probe.AtomID, nb.Index)
			if _, seen := visited[pair]; seen {
				continue
			}
			visited[pair] = struct{}{}

			nbSphere := geometry.NewSphere(index.Point(nb.Index), dist)
			result := sphere.IntersectSphere(nbSphere)
			switch result.Kind {
			case geometry.SphereSpherePoint:
				candidate := sites.NewMultiCoordPoint(result.Point, []int{pair[0], pair[1]})
				if validated, ok := candidate.NoCloserAtoms(index, dist); ok {
					points = append(points, validated)
				}
			case geometry.SphereSphereCircle:
				circles = append(circles, sites.NewCoordCircle(result.Circle, sites.Pair{pair[0], pair[1]}))
			}
			// SphereSphereEmpty and SphereSphereOverlap contribute nothing.
		}
	}

	return sphereCheckResult{singlePoints: points, uncheckedCircles: circles}
}
