package search

import (
	"context"

	"github.com/TonyWu20/chemrust-nasl/sites"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"golang.org/x/sync/errgroup"
)

// circleCheckResult is the Stage 2 output: circles that survived
// untouched by any common neighbor, and the triple-coordinated points
// those neighbors produced instead.
type circleCheckResult struct {
	circles []sites.CoordCircle
	points  []sites.MultiCoordPoint
}

// checkCircles runs Stage 2 over every circle Stage 1 left unresolved,
// fanning out one goroutine per circle since each circle's common
// neighbours are independent of every other circle's.
func checkCircles(ctx context.Context, index *spatial.SiteIndex, circles []sites.CoordCircle, bondlength float64) (circleCheckResult, error) {
	resultSlots := make([]*sites.CoordResult, len(circles))

	g, _ := errgroup.WithContext(ctx)
	for i, circ := range circles {
		i, circ := i, circ
		g.Go(func() error {
			result, ok := circ.CommonNeighboursIntersect(index, bondlength)
			if ok {
				resultSlots[i] = &result
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return circleCheckResult{}, err
	}

	var out circleCheckResult
	for i, slot := range resultSlots {
		if slot == nil {
			// Invalid: dropped entirely, per Stage 2's rule.
			continue
		}
		switch slot.Kind {
		case sites.ResultCircle:
			out.circles = append(out.circles, circles[i])
		case sites.ResultPoints:
			out.points = append(out.points, slot.Points...)
		}
	}
	return out, nil
}
