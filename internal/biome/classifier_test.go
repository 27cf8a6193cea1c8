package biome

import (
	"testing"

	"terragen/internal/core"
)

func TestRegisteredRuleSetsValidate(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Fatalf("expected at least three registered rule sets, got %v", names)
	}
	for _, name := range names {
		rs, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if err := rs.Validate(); err != nil {
			t.Fatalf("rule set %q: %v", name, err)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	const steps = 40
	for _, name := range Names() {
		rs, _ := Lookup(name)
		c, err := NewClassifier(rs)
		if err != nil {
			t.Fatal(err)
		}
		for ei := 0; ei <= steps; ei++ {
			for mi := 0; mi <= steps; mi++ {
				for ti := 0; ti <= steps; ti++ {
					e := float64(ei) / steps
					m := float64(mi) / steps
					tp := float64(ti) / steps
					if b := c.Classify(e, m, tp); !b.Valid() {
						t.Fatalf("%s: Classify(%f,%f,%f) returned invalid biome %d", name, e, m, tp, b)
					}
				}
			}
		}
	}
}

func TestLowElevationIsWater(t *testing.T) {
	for _, name := range Names() {
		rs, _ := Lookup(name)
		c, err := NewClassifier(rs)
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range []float64{0, 0.3, 0.7, 1} {
			for _, tp := range []float64{0, 0.3, 0.7, 1} {
				if b := c.Classify(0.1, m, tp); !b.IsWater() {
					t.Fatalf("%s: elevation 0.1 classified as %v (moisture %.1f, temperature %.1f)", name, b, m, tp)
				}
			}
		}
	}
}

func TestContinentBands(t *testing.T) {
	c, err := NewClassifier(Continent)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		e, m, t float64
		want    core.Biome
	}{
		{0.44, 0.9, 0.9, core.BiomeBeach},
		{0.72, 0.5, 0.5, core.BiomeMountain},
		{0.85, 0.5, 0.2, core.BiomeTundra},
		{0.85, 0.5, 0.8, core.BiomeMountain},
		{0.55, 0.5, 0.1, core.BiomeTundra},
		{0.55, 0.7, 0.4, core.BiomeForest},
		{0.55, 0.3, 0.4, core.BiomePlains},
		{0.55, 0.1, 0.9, core.BiomeDesert},
		{0.55, 0.3, 0.9, core.BiomePlains},
		{0.55, 0.8, 0.9, core.BiomeForest},

		// thresholds themselves belong to the lower band
		{0.68, 0.5, 0.5, core.BiomePlains},
		{0.78, 0.5, 0.3, core.BiomeMountain},
		{0.55, 0.55, 0.3, core.BiomePlains},
		{0.55, 0.6, 0.5, core.BiomePlains},
		{0.47, 0.5, 0.5, core.BiomePlains},
		{0.55, 0.25, 0.9, core.BiomePlains},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.e, tc.m, tc.t); got != tc.want {
			t.Fatalf("Classify(%.2f,%.2f,%.2f) = %v, expected %v", tc.e, tc.m, tc.t, got, tc.want)
		}
	}
}

func TestAboveExcludesMin(t *testing.T) {
	r := Above(0.5)
	if r.Contains(0.5) {
		t.Fatal("Above must exclude its bound")
	}
	if !r.Contains(0.5000001) || !r.Contains(1) {
		t.Fatal("Above must include larger values")
	}
	if !AtLeast(0.5).Contains(0.5) {
		t.Fatal("AtLeast must include its bound")
	}
}

func TestFirstMatchWins(t *testing.T) {
	rs := RuleSet{Name: "order", Rules: []Rule{
		{Elevation: Below(0.5), Biome: core.BiomeSwamp},
		{Elevation: Below(0.8), Biome: core.BiomeForest},
		{Biome: core.BiomeMountain},
	}}
	c, err := NewClassifier(rs)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Classify(0.2, 0, 0); got != core.BiomeSwamp {
		t.Fatalf("expected first rule to win, got %v", got)
	}
	if got := c.Classify(0.6, 0, 0); got != core.BiomeForest {
		t.Fatalf("expected second rule, got %v", got)
	}
	if got := c.Classify(0.9, 0, 0); got != core.BiomeMountain {
		t.Fatalf("expected fallback rule, got %v", got)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	cases := map[string]RuleSet{
		"empty":       {Name: "empty"},
		"no fallback": {Name: "x", Rules: []Rule{{Elevation: Below(0.5), Biome: core.BiomeOcean}}},
		"bad range":   {Name: "x", Rules: []Rule{{Elevation: Between(0.6, 0.2), Biome: core.BiomeOcean}, {Biome: core.BiomeDesert}}},
		"bad biome":   {Name: "x", Rules: []Rule{{Biome: core.Biome(99)}}},
	}
	for label, rs := range cases {
		if err := rs.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", label)
		}
		if _, err := NewClassifier(rs); err == nil {
			t.Fatalf("%s: expected NewClassifier to fail", label)
		}
	}
}

func TestClassifierCopiesRules(t *testing.T) {
	rs := RuleSet{Name: "copy", Rules: []Rule{
		{Elevation: Below(0.5), Biome: core.BiomeOcean},
		{Biome: core.BiomePlains},
	}}
	c, err := NewClassifier(rs)
	if err != nil {
		t.Fatal(err)
	}
	rs.Rules[0].Biome = core.BiomeDesert
	if got := c.Classify(0.1, 0, 0); got != core.BiomeOcean {
		t.Fatalf("classifier observed mutation of its source table: %v", got)
	}
}
