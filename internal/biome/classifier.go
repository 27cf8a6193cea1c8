// Package biome maps (elevation, moisture, temperature) triples to biomes
// through ordered, first-match rule tables.
package biome

import (
	"errors"
	"fmt"
	"math"

	"terragen/internal/core"
)

// Range is a half-open interval [Min, Max). The zero Range is unconstrained.
type Range struct {
	Min float64
	Max float64
}

// Any matches every value.
var Any = Range{}

// Below matches values strictly less than max.
func Below(max float64) Range { return Range{Min: math.Inf(-1), Max: max} }

// Above matches values strictly greater than min.
func Above(min float64) Range { return Range{Min: math.Nextafter(min, math.Inf(1)), Max: math.Inf(1)} }

// AtLeast matches values greater than or equal to min.
func AtLeast(min float64) Range { return Range{Min: min, Max: math.Inf(1)} }

// Between matches values in [min, max).
func Between(min, max float64) Range { return Range{Min: min, Max: max} }

// Contains reports whether v falls inside the range.
func (r Range) Contains(v float64) bool {
	if r == Any {
		return true
	}
	return v >= r.Min && v < r.Max
}

// unconstrained reports whether the range admits every value in [0, 1].
func (r Range) unconstrained() bool {
	return r == Any || (r.Min <= 0 && r.Max > 1)
}

func (r Range) validate() error {
	if r == Any {
		return nil
	}
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min >= r.Max {
		return fmt.Errorf("empty range [%v, %v)", r.Min, r.Max)
	}
	return nil
}

// Rule assigns Biome to every triple that falls inside all three ranges.
type Rule struct {
	Elevation   Range
	Moisture    Range
	Temperature Range
	Biome       core.Biome
}

// Matches reports whether the triple satisfies the rule.
func (r Rule) Matches(elevation, moisture, temperature float64) bool {
	return r.Elevation.Contains(elevation) &&
		r.Moisture.Contains(moisture) &&
		r.Temperature.Contains(temperature)
}

func (r Rule) unconditional() bool {
	return r.Elevation.unconstrained() && r.Moisture.unconstrained() && r.Temperature.unconstrained()
}

// RuleSet is a named, ordered decision table. The first matching rule wins.
type RuleSet struct {
	Name  string
	Rules []Rule
}

// Validate checks that every rule is well formed and that the final rule is
// unconditional, which makes classification total over [0, 1]^3.
func (rs RuleSet) Validate() error {
	if len(rs.Rules) == 0 {
		return fmt.Errorf("biome: rule set %q has no rules", rs.Name)
	}
	for i, r := range rs.Rules {
		if !r.Biome.Valid() {
			return fmt.Errorf("biome: rule set %q rule %d: unknown biome %d", rs.Name, i, r.Biome)
		}
		for _, rng := range []Range{r.Elevation, r.Moisture, r.Temperature} {
			if err := rng.validate(); err != nil {
				return fmt.Errorf("biome: rule set %q rule %d: %w", rs.Name, i, err)
			}
		}
	}
	if !rs.Rules[len(rs.Rules)-1].unconditional() {
		return fmt.Errorf("biome: rule set %q: %w", rs.Name, errNoFallback)
	}
	return nil
}

var errNoFallback = errors.New("last rule must match every input")

// Classifier evaluates a validated RuleSet.
type Classifier struct {
	name  string
	rules []Rule
}

// NewClassifier validates rs and returns a classifier bound to a copy of it.
func NewClassifier(rs RuleSet) (*Classifier, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	rules := make([]Rule, len(rs.Rules))
	copy(rules, rs.Rules)
	return &Classifier{name: rs.Name, rules: rules}, nil
}

// Name returns the name of the underlying rule set.
func (c *Classifier) Name() string { return c.name }

// Classify returns the biome of the first rule matching the triple.
func (c *Classifier) Classify(elevation, moisture, temperature float64) core.Biome {
	last := len(c.rules) - 1
	for _, r := range c.rules[:last] {
		if r.Matches(elevation, moisture, temperature) {
			return r.Biome
		}
	}
	return c.rules[last].Biome
}
