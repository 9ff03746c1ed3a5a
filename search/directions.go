package search

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// azimuthSteps and elevationSteps are the number of steps the single-site
// sweep tries per axis: 32 azimuths and 8 elevations, each at sweepStep
// (pi/16) spacing, plus the +z pole tried first.
const (
	azimuthSteps   = 32
	elevationSteps = 8
	sweepStep      = math.Pi / 16
)

// unitDirections returns the fixed set of 257 unit directions the
// single-site sweep probes, in a deterministic order: the +z pole
// first, then elevation rings from the equator upward, each swept
// through all 32 azimuths.
func unitDirections() []r3.Vec {
	directions := make([]r3.Vec, 0, 1+elevationSteps*azimuthSteps)
	directions = append(directions, r3.Vec{X: 0, Y: 0, Z: 1})

	for e := 0; e < elevationSteps; e++ {
		elevation := float64(e) * sweepStep
		sinE, cosE := math.Sin(elevation), math.Cos(elevation)
		for a := 0; a < azimuthSteps; a++ {
			azimuth := float64(a) * sweepStep
			sinA, cosA := math.Sin(azimuth), math.Cos(azimuth)
			directions = append(directions, r3.Vec{
				X: cosE * cosA,
				Y: cosE * sinA,
				Z: sinE,
			})
		}
	}
	return directions
}

var sweepDirections = unitDirections()
