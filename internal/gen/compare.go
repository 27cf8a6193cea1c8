package gen

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"terragen/internal/biome"
	"terragen/internal/core"
)

// RuleSetReport describes the terrain one rule set produced from shared fields.
type RuleSetReport struct {
	RuleSet string
	Summary Summary
	// WaterAgreement is the fraction of cells whose water/land split matches
	// the first rule set of the comparison.
	WaterAgreement float64
}

// CompareRuleSets generates cfg once per named rule set and reports how the
// resulting terrains differ. An empty names slice compares every registered
// rule set. Runs execute concurrently on at most workers goroutines; each run
// uses a single-threaded field stage. Reports follow the order of names.
func CompareRuleSets(cfg Config, names []string, workers int) ([]RuleSetReport, error) {
	if len(names) == 0 {
		names = biome.Names()
	}
	if workers <= 0 {
		workers = 1
	}

	grids := make([]*core.Grid, len(names))
	reports := make([]RuleSetReport, len(names))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			run := cfg
			run.RuleSet = name
			run.Workers = 1
			res, err := Run(run)
			if err != nil {
				return fmt.Errorf("rule set %s: %w", name, err)
			}
			grids[i] = res.Grid
			reports[i] = RuleSetReport{RuleSet: name, Summary: Summarize(res.Grid)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i := range reports {
		reports[i].WaterAgreement = waterAgreement(grids[0], grids[i])
	}
	return reports, nil
}

func waterAgreement(a, b *core.Grid) float64 {
	same, total := 0, 0
	a.Each(func(x, y int, c core.Cell) {
		total++
		if c.Biome.IsWater() == b.At(x, y).Biome.IsWater() {
			same++
		}
	})
	if total == 0 {
		return 0
	}
	return float64(same) / float64(total)
}
