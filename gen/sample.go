package gen

import (
	"demogen/rng"
)

// Category is one entry in a weighted categorical table. Weights need not
// sum to 1; they only have to be non-negative with at least one positive.
type Category struct {
	Label  string  `yaml:"label" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// SampleWeighted draws one label with probability proportional to its weight,
// using the shared context exclusively.
func SampleWeighted(rc *rng.Context, cats []Category) (string, error) {
	if len(cats) == 0 {
		return "", configErrf("categories", "empty weight table")
	}

	var total float64
	for _, c := range cats {
		if c.Weight < 0 {
			return "", configErrf("categories", "negative weight %v for %q", c.Weight, c.Label)
		}
		total += c.Weight
	}
	if total == 0 {
		return "", configErrf("categories", "all weights are zero")
	}

	// Cumulative scan, first bucket past the draw wins.
	target := rc.Float64() * total
	var cum float64
	for _, c := range cats {
		cum += c.Weight
		if cum > target {
			return c.Label, nil
		}
	}
	// Float rounding can leave target == total; the last positive entry owns
	// that edge.
	for i := len(cats) - 1; i >= 0; i-- {
		if cats[i].Weight > 0 {
			return cats[i].Label, nil
		}
	}
	return cats[len(cats)-1].Label, nil
}

func validateWeights(field string, cats []Category) error {
	if len(cats) == 0 {
		return configErrf(field, "empty weight table")
	}
	var total float64
	for _, c := range cats {
		if c.Weight < 0 {
			return configErrf(field, "negative weight %v for %q", c.Weight, c.Label)
		}
		total += c.Weight
	}
	if total == 0 {
		return configErrf(field, "all weights are zero")
	}
	return nil
}
