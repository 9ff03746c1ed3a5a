// Command naslsearch loads a crystal scenario and reports every
// coordination site it finds at the scenario's bondlength.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TonyWu20/chemrust-nasl/internal/config"
	"github.com/TonyWu20/chemrust-nasl/search"
	"github.com/TonyWu20/chemrust-nasl/spatial"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file")
	flag.Parse()

	if *scenarioPath == "" {
		log.Fatal("naslsearch: -scenario is required")
	}

	if err := run(*scenarioPath); err != nil {
		log.Fatalf("naslsearch: %v", err)
	}
}

func run(scenarioPath string) error {
	runID := uuid.NewString()
	log.Printf("run %s: loading scenario %s", runID, scenarioPath)

	scenario, err := config.LoadScenarioConfig(scenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	points := make([]r3.Vec, len(scenario.Atoms))
	toCheck := make([]search.ToCheckAtom, len(scenario.Atoms))
	for i, atom := range scenario.Atoms {
		p := r3.Vec{X: atom.X, Y: atom.Y, Z: atom.Z}
		points[i] = p
		toCheck[i] = search.ToCheckAtom{AtomID: i, Point: p}
	}

	index := spatial.NewSiteIndex(points)
	locator := search.NewLocator(index, search.NewConfig(toCheck, scenario.Bondlength))

	log.Printf("run %s: searching %d atoms at bondlength %.4f", runID, len(points), scenario.Bondlength)
	reports, err := locator.SearchSites(context.Background())
	if err != nil {
		return fmt.Errorf("searching sites: %w", err)
	}

	validPoints := search.ValidatedResults(reports.Points, index, scenario.Bondlength)
	singles := search.ValidatedResults(reports.ViableSinglePoints, index, scenario.Bondlength)
	doubles := search.ValidatedResults(reports.ViableDoublePoints, index, scenario.Bondlength)

	log.Printf("run %s: found %d multi-coordinated points, %d single delegates, %d double delegates (post-validation)",
		runID, len(validPoints), len(singles), len(doubles))

	for _, p := range validPoints {
		fmt.Fprintf(os.Stdout, "point % .4f % .4f % .4f  atoms=%v\n", p.Point.X, p.Point.Y, p.Point.Z, p.AtomIDs)
	}
	for _, d := range singles {
		fmt.Fprintf(os.Stdout, "single % .4f % .4f % .4f  atom=%v\n", d.Point.X, d.Point.Y, d.Point.Z, d.AtomIDs)
	}
	for _, d := range doubles {
		fmt.Fprintf(os.Stdout, "double % .4f % .4f % .4f  atoms=%v\n", d.Point.X, d.Point.Y, d.Point.Z, d.AtomIDs)
	}

	return nil
}
