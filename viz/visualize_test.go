package viz

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCNNumberToElementDistinguishesCoordinationNumbers(t *testing.T) {
	cases := []struct {
		cn   int
		want ElementSymbol
	}{
		{1, "H"},
		{3, "Li"},
		{10, "Ne"},
	}
	for _, c := range cases {
		if got := CNNumberToElement(c.cn); got != c.want {
			t.Errorf("CNNumberToElement(%d) = %q, want %q", c.cn, got, c.want)
		}
	}
}

func TestCNNumberToElementFallsBackBeyondTable(t *testing.T) {
	if got := CNNumberToElement(1000); got != ElementNp {
		t.Errorf("CNNumberToElement(1000) = %q, want %q", got, ElementNp)
	}
}

func TestFractionalCoordRoundTripsACubicCell(t *testing.T) {
	cell := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 2, 0,
		0, 0, 2,
	})
	frac, err := FractionalCoord(r3.Vec{X: 1, Y: 1, Z: 1}, cell)
	if err != nil {
		t.Fatalf("FractionalCoord() error = %v", err)
	}
	if frac.X != 0.5 || frac.Y != 0.5 || frac.Z != 0.5 {
		t.Errorf("got %+v, want (0.5, 0.5, 0.5)", frac)
	}
}

func TestFractionalCoordRejectsSingularCell(t *testing.T) {
	singular := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		0, 0, 1,
	})
	if _, err := FractionalCoord(r3.Vec{X: 1, Y: 1, Z: 1}, singular); err == nil {
		t.Fatal("expected an error for a singular cell tensor, got nil")
	}
}
