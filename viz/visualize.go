// Package viz turns a resolved coordination site into a displayable
// atom: a Cartesian (or fractional) coordinate tagged with an element
// symbol chosen by coordination number.
package viz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Visualize is implemented by every candidate site shape so a caller
// can turn it into a drawable Atom without a type switch.
type Visualize interface {
	// DetermineCoord returns the single representative Cartesian
	// coordinate for this site.
	DetermineCoord() r3.Vec
	// ElementByCNNumber picks a display element based on this site's
	// coordination number.
	ElementByCNNumber() ElementSymbol
	// DrawWithElement builds the Atom to render, using the given
	// element symbol instead of ElementByCNNumber's choice.
	DrawWithElement(symbol ElementSymbol) Atom
}

// Atom is a coordinate tagged with the element symbol it should be
// rendered or exported as.
type Atom struct {
	Symbol ElementSymbol
	Coord  r3.Vec
}

func NewAtom(symbol ElementSymbol, coord r3.Vec) Atom {
	return Atom{Symbol: symbol, Coord: coord}
}

// FractionalCoord converts a Cartesian coordinate to fractional
// coordinates under the given cell tensor (rows are the lattice
// vectors a, b, c). It returns an error instead of panicking when the
// cell tensor is singular.
func FractionalCoord(coord r3.Vec, cellTensor *mat.Dense) (r3.Vec, error) {
	var inv mat.Dense
	if err := inv.Inverse(cellTensor); err != nil {
		return r3.Vec{}, fmt.Errorf("cell tensor is not invertible: %w", err)
	}

	cartesian := mat.NewVecDense(3, []float64{coord.X, coord.Y, coord.Z})
	var fractional mat.VecDense
	fractional.MulVec(&inv, cartesian)

	return r3.Vec{X: fractional.AtVec(0), Y: fractional.AtVec(1), Z: fractional.AtVec(2)}, nil
}
