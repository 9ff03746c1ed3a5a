// Package sites implements the coordination-site model: CoordSphere,
// CoordCircle, MultiCoordPoint, and DelegatePoint, plus the CoordResult
// tagged result that the search driver threads through its stages.
package sites

import "github.com/TonyWu20/chemrust-nasl/geometry"

// CoordSphere is a sphere of the target bondlength radius centered on one
// existing atom -- the first shape considered for every probe before
// narrowing to the sphere-sphere intersections that produce circles or
// points.
type CoordSphere struct {
	Sphere geometry.Sphere
	AtomID int
}

func NewCoordSphere(sphere geometry.Sphere, atomID int) CoordSphere {
	return CoordSphere{Sphere: sphere, AtomID: atomID}
}
