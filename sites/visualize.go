package sites

import (
	"math"

	"github.com/TonyWu20/chemrust-nasl/viz"
	"gonum.org/v1/gonum/spatial/r3"
)

// DetermineCoord picks the pole of the probe sphere as the single
// representative coordinate for an unresolved sphere candidate.
func (s CoordSphere) DetermineCoord() r3.Vec {
	return s.Sphere.PointAtSurface(r3.Vec{X: 0, Y: 0, Z: 1})
}

func (s CoordSphere) ElementByCNNumber() viz.ElementSymbol { return viz.ElementXe }

func (s CoordSphere) DrawWithElement(symbol viz.ElementSymbol) viz.Atom {
	return viz.NewAtom(symbol, s.DetermineCoord())
}

// DetermineCoord picks the circle's theta=pi/2 position as the single
// representative coordinate for an unresolved circle candidate.
func (c CoordCircle) DetermineCoord() r3.Vec {
	return c.Circle.PointOnCircle(math.Pi / 2)
}

func (c CoordCircle) ElementByCNNumber() viz.ElementSymbol { return viz.ElementNe }

func (c CoordCircle) DrawWithElement(symbol viz.ElementSymbol) viz.Atom {
	return viz.NewAtom(symbol, c.DetermineCoord())
}

func (p MultiCoordPoint) DetermineCoord() r3.Vec { return p.Point }

func (p MultiCoordPoint) ElementByCNNumber() viz.ElementSymbol {
	return viz.CNNumberToElement(len(p.AtomIDs))
}

func (p MultiCoordPoint) DrawWithElement(symbol viz.ElementSymbol) viz.Atom {
	return viz.NewAtom(symbol, p.Point)
}

func (d DelegatePoint[T]) DetermineCoord() r3.Vec { return d.Point }

func (d DelegatePoint[T]) ElementByCNNumber() viz.ElementSymbol { return viz.ElementXe }

func (d DelegatePoint[T]) DrawWithElement(symbol viz.ElementSymbol) viz.Atom {
	return viz.NewAtom(symbol, d.Point)
}
