package sites

import (
	"testing"

	"github.com/TonyWu20/chemrust-nasl/spatial"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMultiCoordPointSortsAndDedupesAtomIDs(t *testing.T) {
	p := NewMultiCoordPoint(r3.Vec{X: 1, Y: 2, Z: 3}, []int{5, 1, 3, 1, 5})
	want := []int{1, 3, 5}
	if diff := cmp.Diff(want, p.AtomIDs); diff != "" {
		t.Errorf("AtomIDs mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeWithUnionsAtomIDsAtSamePoint(t *testing.T) {
	a := NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{1, 2})
	b := NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{2, 3})

	merged, ok := a.mergeWith(b)
	if !ok {
		t.Fatal("expected points at the same location to merge")
	}
	want := []int{1, 2, 3}
	if diff := cmp.Diff(want, merged.AtomIDs); diff != "" {
		t.Errorf("AtomIDs mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeWithRejectsDifferentPoints(t *testing.T) {
	a := NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{1})
	b := NewMultiCoordPoint(r3.Vec{X: 10, Y: 0, Z: 0}, []int{2})

	if _, ok := a.mergeWith(b); ok {
		t.Fatal("expected distant points not to merge")
	}
}

func TestDedupPointsMergesDuplicatesAndIsIdempotent(t *testing.T) {
	cloud := []r3.Vec{{X: -5, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}}
	index := spatial.NewSiteIndex(cloud)

	points := []MultiCoordPoint{
		NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{0, 1}),
		NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{1, 2}),
	}

	once := DedupPoints(points, index, 1.0)
	if len(once) != 1 {
		t.Fatalf("got %d points after dedup, want 1", len(once))
	}
	if len(once[0].AtomIDs) != 3 {
		t.Fatalf("got atom ids %v, want union of size 3", once[0].AtomIDs)
	}

	twice := DedupPoints(once, index, 1.0)
	if len(twice) != len(once) {
		t.Fatalf("DedupPoints is not idempotent: got %d, want %d", len(twice), len(once))
	}
}

func TestDedupPointsDropsPointsCloserThanBondlength(t *testing.T) {
	cloud := []r3.Vec{{X: 0.1, Y: 0, Z: 0}}
	index := spatial.NewSiteIndex(cloud)

	points := []MultiCoordPoint{
		NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{1}),
	}

	out := DedupPoints(points, index, 1.0)
	if len(out) != 0 {
		t.Fatalf("expected the candidate to be dropped, got %v", out)
	}
}

func TestNoCloserAtomsAcceptsWhenNoNeighborIsCloser(t *testing.T) {
	cloud := []r3.Vec{{X: 5, Y: 0, Z: 0}}
	index := spatial.NewSiteIndex(cloud)

	p := NewMultiCoordPoint(r3.Vec{X: 0, Y: 0, Z: 0}, []int{0})
	if _, ok := p.NoCloserAtoms(index, 1.0); !ok {
		t.Fatal("expected the point to pass no-closer validation")
	}
}
