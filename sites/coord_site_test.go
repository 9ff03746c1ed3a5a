package sites

import (
	"testing"

	"github.com/TonyWu20/chemrust-nasl/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestConnectingAtomsMsgCoversEveryShape(t *testing.T) {
	sphere := NewCoordSphere(geometry.NewSphere(r3.Vec{}, 1.0), 7)
	if got := sphere.ConnectingAtomsMsg(); got != "atom 7" {
		t.Errorf("CoordSphere.ConnectingAtomsMsg() = %q, want %q", got, "atom 7")
	}

	circle := NewCoordCircle(geometry.NewCircle3d(r3.Vec{}, 1.0, r3.Vec{X: 0, Y: 0, Z: 1}), Pair{3, 1})
	if got := circle.ConnectingAtomsMsg(); got != "atoms 1, 3" {
		t.Errorf("CoordCircle.ConnectingAtomsMsg() = %q, want %q", got, "atoms 1, 3")
	}

	point := NewMultiCoordPoint(r3.Vec{}, []int{5, 2, 2})
	if got := point.ConnectingAtomsMsg(); got != "atoms 2, 5" {
		t.Errorf("MultiCoordPoint.ConnectingAtomsMsg() = %q, want %q", got, "atoms 2, 5")
	}

	single := NewDelegatePoint(r3.Vec{}, Single{9})
	if got := single.ConnectingAtomsMsg(); got != "atom 9" {
		t.Errorf("DelegatePoint[Single].ConnectingAtomsMsg() = %q, want %q", got, "atom 9")
	}

	pair := NewDelegatePoint(r3.Vec{}, Pair{4, 6})
	if got := pair.ConnectingAtomsMsg(); got != "atoms 4, 6" {
		t.Errorf("DelegatePoint[Pair].ConnectingAtomsMsg() = %q, want %q", got, "atoms 4, 6")
	}
}

func TestSiteTypeNamesEveryShape(t *testing.T) {
	var sites []CoordSite
	sites = append(sites,
		NewCoordSphere(geometry.NewSphere(r3.Vec{}, 1.0), 0),
		NewCoordCircle(geometry.NewCircle3d(r3.Vec{}, 1.0, r3.Vec{X: 0, Y: 0, Z: 1}), Pair{0, 1}),
		NewMultiCoordPoint(r3.Vec{}, []int{0, 1, 2}),
		NewDelegatePoint(r3.Vec{}, Single{0}),
		NewDelegatePoint(r3.Vec{}, Pair{0, 1}),
	)
	want := []string{"sphere", "circle", "point", "delegate-point", "delegate-point"}
	for i, s := range sites {
		if got := s.SiteType(); got != want[i] {
			t.Errorf("sites[%d].SiteType() = %q, want %q", i, got, want[i])
		}
	}
}
