package search

import (
	"context"

	"github.com/TonyWu20/chemrust-nasl/sites"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"golang.org/x/sync/errgroup"
)

// Locator runs the full five-stage coordination-site search against one
// spatial index and configuration.
type Locator struct {
	index  *spatial.SiteIndex
	config Config
}

func NewLocator(index *spatial.SiteIndex, config Config) Locator {
	return Locator{index: index, config: config}
}

func (l Locator) Index() *spatial.SiteIndex { return l.index }
func (l Locator) Config() Config            { return l.config }

// SearchSites runs all five stages and returns the combined report.
// Stage 1 runs sequentially (it owns the shared visited-pair set);
// Stages 2 through 4 run concurrently with each other since none reads
// another's output.
func (l Locator) SearchSites(ctx context.Context) (Reports, error) {
	stage1 := sphereCheck(l.index, l.config)

	g, gctx := errgroup.WithContext(ctx)
	var stage2 circleCheckResult
	var singlePoints []sites.DelegatePoint[sites.Single]
	var doublePoints []sites.DelegatePoint[sites.Pair]

	g.Go(func() (err error) {
		stage2, err = checkCircles(gctx, l.index, stage1.uncheckedCircles, l.config.Bondlength)
		return err
	})
	g.Go(func() (err error) {
		singlePoints, err = searchPossibleSinglePoints(gctx, l.index, l.config)
		return err
	})
	g.Go(func() (err error) {
		doublePoints, err = searchPossibleDoublePoints(gctx, l.index, stage1.uncheckedCircles, l.config.Bondlength)
		return err
	})
	if err := g.Wait(); err != nil {
		return Reports{}, err
	}

	combined := append(append([]sites.MultiCoordPoint{}, stage1.singlePoints...), stage2.points...)
	specialSites := sites.DedupPoints(combined, l.index, l.config.Bondlength)

	return Reports{
		Points:             specialSites,
		ViableSinglePoints: singlePoints,
		ViableDoublePoints: doublePoints,
	}, nil
}
