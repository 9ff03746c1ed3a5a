package sites

import (
	"sort"

	"github.com/TonyWu20/chemrust-nasl/geometry"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"gonum.org/v1/gonum/spatial/r3"
)

// MultiCoordPoint is a candidate site simultaneously at the target
// bondlength from several anchor atoms: three or more from Stage 2, two
// for a tangent point from Stage 1. AtomIDs is always kept sorted and
// duplicate-free.
type MultiCoordPoint struct {
	Point   r3.Vec
	AtomIDs []int
}

// NewMultiCoordPoint builds a MultiCoordPoint, sorting and deduplicating
// atomIDs.
func NewMultiCoordPoint(point r3.Vec, atomIDs []int) MultiCoordPoint {
	return MultiCoordPoint{Point: point, AtomIDs: sortedUniqueInts(atomIDs)}
}

func sortedUniqueInts(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	sort.Ints(out)
	deduped := out[:0]
	for i, id := range out {
		if i == 0 || id != out[i-1] {
			deduped = append(deduped, id)
		}
	}
	return deduped
}

// mergeWith returns the merge of p and rhs when their points are equal
// under geometry.ApproxEqPoint: the same point, with the sorted union of
// both atom-ID lists. ok is false when the points do not match.
func (p MultiCoordPoint) mergeWith(rhs MultiCoordPoint) (merged MultiCoordPoint, ok bool) {
	if geometry.ApproxEqPoint(p.Point, rhs.Point) != geometry.Eq {
		return MultiCoordPoint{}, false
	}
	union := append(append([]int{}, p.AtomIDs...), rhs.AtomIDs...)
	return NewMultiCoordPoint(p.Point, union), true
}

// NoCloserAtoms reports whether no point in index lies strictly closer
// than dist to p.Point (the no-closer-than-d validation every candidate
// site must pass), returning p unchanged when it does.
func (p MultiCoordPoint) NoCloserAtoms(index *spatial.SiteIndex, dist float64) (MultiCoordPoint, bool) {
	dist2 := dist * dist
	for _, nb := range index.WithinSquared(p.Point, dist2) {
		if geometry.ApproxCmp(nb.SquaredDist, dist2) == geometry.Less {
			return MultiCoordPoint{}, false
		}
	}
	return p, true
}

// DedupPoints merges every pair of points in the slice that are equal
// under geometry.ApproxEqPoint, unioning their atom-ID lists, then drops
// any surviving point with a cloud atom strictly closer than dist (the
// defensive second no-closer check spec.md S4.4 Stage 5 calls for).
// Passing an already-deduplicated slice back through DedupPoints returns
// the same set (up to ordering).
func DedupPoints(points []MultiCoordPoint, index *spatial.SiteIndex, dist float64) []MultiCoordPoint {
	visited := make([]bool, len(points))
	merged := make([]MultiCoordPoint, 0, len(points))

	for i, p := range points {
		if visited[i] {
			continue
		}
		visited[i] = true
		acc := p
		for j := i + 1; j < len(points); j++ {
			if visited[j] {
				continue
			}
			if m, ok := acc.mergeWith(points[j]); ok {
				visited[j] = true
				acc = m
			}
		}
		merged = append(merged, acc)
	}

	out := make([]MultiCoordPoint, 0, len(merged))
	for _, p := range merged {
		if validated, ok := p.NoCloserAtoms(index, dist); ok {
			out = append(out, validated)
		}
	}
	return out
}

// Single and Pair are the fixed-size atom-ID carriers for a
// DelegatePoint: Single for a one-anchor candidate, Pair for a
// two-anchor one.
type Single = [1]int
type Pair = [2]int

// DelegatePoint is a single representative candidate on a geometric
// locus (a sphere's surface for Single, an intersection circle's
// circumference for Pair) that otherwise admits an infinite family of
// candidates.
type DelegatePoint[T Single | Pair] struct {
	Point   r3.Vec
	AtomIDs T
}

func NewDelegatePoint[T Single | Pair](point r3.Vec, atomIDs T) DelegatePoint[T] {
	return DelegatePoint[T]{Point: point, AtomIDs: atomIDs}
}
