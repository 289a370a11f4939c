package gen

import (
	"github.com/pingcap/go-ycsb/pkg/generator"
	"github.com/pingcap/go-ycsb/pkg/ycsb"

	"demogen/rng"
)

// Bound is one entry of an ordered cluster spec. Upper is exclusive and the
// spec must be authored smallest-bound-first; the first bound whose Upper
// exceeds an index wins.
type Bound struct {
	Upper int    `yaml:"upper" validate:"gt=0"`
	ID    string `yaml:"id" validate:"required"`
}

// TailSkew selects how indices past the last bound pick from the residual
// parent pool.
type TailSkew string

const (
	TailUniform TailSkew = "uniform"
	TailZipf    TailSkew = "zipf"
)

// ValidateBounds checks that bounds are strictly increasing and that
// totalCount exceeds the largest bound, so every explicit cluster actually
// receives rows. Runs before any row is generated.
func ValidateBounds(field string, bounds []Bound, totalCount int) error {
	prev := 0
	for i, b := range bounds {
		if b.Upper <= prev {
			return configErrf(field, "bound %d (%q): upper %d not increasing (previous %d)", i, b.ID, b.Upper, prev)
		}
		prev = b.Upper
	}
	if len(bounds) > 0 && totalCount <= prev {
		return configErrf(field, "total count %d does not exceed largest bound %d", totalCount, prev)
	}
	return nil
}

// Tier returns the cluster a flavored field distribution belongs to: the
// first bound past index, or fallbackID beyond the last bound. Pure lookup,
// no randomness.
func Tier(index int, bounds []Bound, fallbackID string) string {
	for _, b := range bounds {
		if index < b.Upper {
			return b.ID
		}
	}
	return fallbackID
}

// ParentPolicy maps a child ordinal to a parent ordinal. Children inside
// bound k are pinned to parent k, which produces the dense hub linkage the
// demos are built around; the rest fall back to a random pick over the
// residual pool [len(bounds), parentCount).
type ParentPolicy struct {
	rc         *rng.Context
	bounds     []Bound
	fallbackID string
	tail       ycsb.Generator
}

func NewParentPolicy(rc *rng.Context, bounds []Bound, childCount, parentCount int, skew TailSkew, fallbackID string) (*ParentPolicy, error) {
	if err := ValidateBounds("clusters", bounds, childCount); err != nil {
		return nil, err
	}
	if parentCount <= len(bounds) {
		return nil, configErrf("clusters", "parent pool %d leaves no residual beyond %d pinned clusters", parentCount, len(bounds))
	}

	lo, hi := int64(len(bounds)), int64(parentCount-1)
	var tail ycsb.Generator
	switch skew {
	case TailZipf:
		tail = generator.NewScrambledZipfian(lo, hi, generator.ZipfianConstant)
	case TailUniform, "":
		tail = generator.NewUniform(lo, hi)
	default:
		return nil, configErrf("tailSkew", "unknown skew %q", skew)
	}

	return &ParentPolicy{
		rc:         rc,
		bounds:     bounds,
		fallbackID: fallbackID,
		tail:       tail,
	}, nil
}

// Assign resolves the child at index to a parent ordinal and its cluster id.
// Every index in [0, childCount) resolves to exactly one cluster.
func (p *ParentPolicy) Assign(index int) (ordinal int, cluster string) {
	for k, b := range p.bounds {
		if index < b.Upper {
			return k, b.ID
		}
	}
	return int(p.tail.Next(p.rc.Rand())), p.fallbackID
}
