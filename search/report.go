package search

import (
	"github.com/TonyWu20/chemrust-nasl/geometry"
	"github.com/TonyWu20/chemrust-nasl/sites"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"github.com/TonyWu20/chemrust-nasl/viz"
)

// Reports is the combined output of a search: the points found directly
// (triple coordination or higher from Stage 2, and two-anchor tangent
// points from Stage 1), plus one
// representative delegate point for each single- and double-coordinated
// site whose full locus could not be reduced to a point.
type Reports struct {
	Points             []sites.MultiCoordPoint
	ViableSinglePoints []sites.DelegatePoint[sites.Single]
	ViableDoublePoints []sites.DelegatePoint[sites.Pair]
}

// ValidatedResults re-checks every site in coordSites against the
// spatial index and drops any whose coordinate now has a cloud atom
// strictly closer than the bondlength -- a defensive re-validation pass
// for results that will be reported to a caller, independent of the
// no-closer checks already applied during the search itself.
func ValidatedResults[T viz.Visualize](coordSites []T, index *spatial.SiteIndex, bondlength float64) []T {
	dist2 := bondlength * bondlength
	out := make([]T, 0, len(coordSites))
	for _, site := range coordSites {
		if validateSite(site, index, dist2) {
			out = append(out, site)
		}
	}
	return out
}

func validateSite(site viz.Visualize, index *spatial.SiteIndex, dist2 float64) bool {
	coord := site.DetermineCoord()
	for _, nb := range index.WithinSquared(coord, dist2) {
		if geometry.ApproxCmp(nb.SquaredDist, dist2) == geometry.Less {
			return false
		}
	}
	return true
}
