// Package spatial provides the immutable spatial index the search driver
// uses to bound the cost of neighbor queries over the atom cloud.
package spatial

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Neighbor is one hit from a SiteIndex radius query: the cloud index and
// its squared Euclidean distance from the query point.
type Neighbor struct {
	Index       int
	SquaredDist float64
}

// SiteIndex is an immutable 3-D k-d tree over a point cloud. It supports
// "all points within squared distance r^2 of q" queries and is safe for
// concurrent read from multiple goroutines; it holds no mutable state
// beyond the points and the tree built once at construction. Rebuild is
// not supported -- build a new SiteIndex from a new point slice instead.
type SiteIndex struct {
	points []r3.Vec
	tree   *kdtree.Tree
}

// NewSiteIndex builds a spatial index over points. The returned index
// keeps its own copy of points so the caller's slice can be mutated or
// discarded afterward.
func NewSiteIndex(points []r3.Vec) *SiteIndex {
	owned := make([]r3.Vec, len(points))
	copy(owned, points)

	items := make(indexedPoints, len(owned))
	for i, p := range owned {
		items[i] = indexedPoint{idx: i, pos: p}
	}
	tree := kdtree.New(items, false)
	return &SiteIndex{points: owned, tree: tree}
}

// Len returns the number of points in the cloud.
func (s *SiteIndex) Len() int { return len(s.points) }

// Point returns the cloud point at index i.
func (s *SiteIndex) Point(i int) r3.Vec { return s.points[i] }

// Points returns the full backing point cloud. Callers must not mutate
// the returned slice.
func (s *SiteIndex) Points() []r3.Vec { return s.points }

// WithinSquared returns every cloud point within squared distance r2 of
// query, in no particular order, with no duplicates.
func (s *SiteIndex) WithinSquared(query r3.Vec, r2 float64) []Neighbor {
	keeper := kdtree.NewDistKeeper(r2)
	s.tree.NearestSet(keeper, indexedPoint{idx: -1, pos: query})

	out := make([]Neighbor, 0, len(keeper.Heap))
	for _, cd := range keeper.Heap {
		ip := cd.Comparable.(indexedPoint)
		out = append(out, Neighbor{Index: ip.idx, SquaredDist: cd.Distance})
	}
	return out
}

// indexedPoint adapts a cloud point (plus its original index) to
// gonum.org/v1/gonum/spatial/kdtree.Comparable. kdtree.Point's own
// Distance convention is squared Euclidean, which this implementation
// follows for the same reason: radius queries avoid a sqrt per
// candidate.
type indexedPoint struct {
	idx int
	pos r3.Vec
}

func (p indexedPoint) coord(d kdtree.Dim) float64 {
	switch d {
	case 0:
		return p.pos.X
	case 1:
		return p.pos.Y
	default:
		return p.pos.Z
	}
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.coord(d) - q.coord(d)
}

func (p indexedPoint) Dims() int { return 3 }

func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	dx := p.pos.X - q.pos.X
	dy := p.pos.Y - q.pos.Y
	dz := p.pos.Z - q.pos.Z
	return dx*dx + dy*dy + dz*dz
}

// indexedPoints implements kdtree.Interface over a mutable slice of
// indexedPoint, partitioning itself in place around the per-dimension
// median the same way kdtree.Points does.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexedPoints) Len() int                      { return len(p) }
func (p indexedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

func (p indexedPoints) Pivot(d kdtree.Dim) int {
	sort.Sort(byDim{indexedPoints: p, dim: d})
	return len(p) / 2
}

type byDim struct {
	indexedPoints
	dim kdtree.Dim
}

func (b byDim) Less(i, j int) bool {
	return b.indexedPoints[i].coord(b.dim) < b.indexedPoints[j].coord(b.dim)
}
func (b byDim) Swap(i, j int) {
	b.indexedPoints[i], b.indexedPoints[j] = b.indexedPoints[j], b.indexedPoints[i]
}
