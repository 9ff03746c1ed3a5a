package search

import (
	"context"

	"github.com/TonyWu20/chemrust-nasl/geometry"
	"github.com/TonyWu20/chemrust-nasl/sites"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// searchPossibleSinglePoints runs Stage 3: for every atom to probe, try
// each of the 257 fixed directions at the bondlength until one lands a
// point with no cloud atom closer than the bondlength. Independent per
// atom, so every probe runs in its own goroutine.
func searchPossibleSinglePoints(ctx context.Context, index *spatial.SiteIndex, config Config) ([]sites.DelegatePoint[sites.Single], error) {
	results := make([]*sites.DelegatePoint[sites.Single], len(config.ToCheck))

	g, _ := errgroup.WithContext(ctx)
	for i, probe := range config.ToCheck {
		i, probe := i, probe
		g.Go(func() error {
			if point, ok := bruteForceSearchSingle(index, probe.Point, config.Bondlength); ok {
				delegate := sites.NewDelegatePoint(point, sites.Single{probe.AtomID})
				results[i] = &delegate
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []sites.DelegatePoint[sites.Single]
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// bruteForceSearchSingle tries each fixed direction from origin at the
// given distance and returns the first one with no cloud atom strictly
// closer than dist.
func bruteForceSearchSingle(index *spatial.SiteIndex, origin r3.Vec, dist float64) (r3.Vec, bool) {
	queryRadius := dist + 10*geometry.Epsilon
	queryRadius2 := queryRadius * queryRadius
	dist2 := dist * dist

	for _, dir := range sweepDirections {
		candidate := r3.Add(origin, r3.Scale(dist, dir))
		tooClose := false
		for _, nb := range index.WithinSquared(candidate, queryRadius2) {
			if geometry.ApproxCmp(nb.SquaredDist, dist2) == geometry.Less {
				tooClose = true
				break
			}
		}
		if !tooClose {
			return candidate, true
		}
	}
	return r3.Vec{}, false
}
