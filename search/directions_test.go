package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnitDirectionsCountAndStartsAtPole(t *testing.T) {
	dirs := unitDirections()
	want := 1 + elevationSteps*azimuthSteps
	require.Len(t, dirs, want)
	require.Equal(t, r3.Vec{X: 0, Y: 0, Z: 1}, dirs[0])
}

func TestUnitDirectionsAreUnitVectors(t *testing.T) {
	for i, d := range unitDirections() {
		norm := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("direction %d is not a unit vector: norm=%f", i, norm)
		}
	}
}
