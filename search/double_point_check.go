package search

import (
	"context"

	"github.com/TonyWu20/chemrust-nasl/sites"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"golang.org/x/sync/errgroup"
)

// searchPossibleDoublePoints runs Stage 4 over every circle Stage 1 left
// unresolved: one representative point per circle, tried at 32 angular
// positions. Independent per circle, so every circle runs in its own
// goroutine.
func searchPossibleDoublePoints(ctx context.Context, index *spatial.SiteIndex, circles []sites.CoordCircle, bondlength float64) ([]sites.DelegatePoint[sites.Pair], error) {
	results := make([]*sites.DelegatePoint[sites.Pair], len(circles))

	g, _ := errgroup.WithContext(ctx)
	for i, circ := range circles {
		i, circ := i, circ
		g.Go(func() error {
			if point, ok := circ.GetPossiblePoint(index, bondlength); ok {
				results[i] = &point
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []sites.DelegatePoint[sites.Pair]
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
