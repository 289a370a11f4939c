package gen

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_SEED        = 42
	DEFAULT_DATE_WINDOW = 180
	DEFAULT_TAIL_ID     = "baseline"
)

// dateLayout is the on-disk format for BaseDate/BirthBase fields.
const dateLayout = "2006-01-02"

type IDStrategy string

const (
	// IDOrdinal produces stable prefix+ordinal keys (AGENT_0, PH_17, ...).
	IDOrdinal IDStrategy = "ordinal"
	// IDUUID produces UUIDs drawn from the seeded context, so they are
	// byte-identical across runs with the same seed.
	IDUUID IDStrategy = "uuid"
)

// Range is a closed-open numeric interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RangeTier binds an index range to a sampling interval. Upper is exclusive,
// tiers are authored smallest-first.
type RangeTier struct {
	Upper int     `yaml:"upper"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// RangeTiers is a cluster-conditional numeric distribution: the first tier
// past the record index supplies the interval, the tail covers the rest.
type RangeTiers struct {
	Tiers []RangeTier `yaml:"tiers"`
	Tail  Range       `yaml:"tail"`
}

func (rt RangeTiers) rangeFor(index int) Range {
	for _, t := range rt.Tiers {
		if index < t.Upper {
			return Range{Min: t.Min, Max: t.Max}
		}
	}
	return rt.Tail
}

func (rt RangeTiers) validate(field string, total int) error {
	bounds := make([]Bound, len(rt.Tiers))
	for i, t := range rt.Tiers {
		if t.Max < t.Min {
			return configErrf(field, "tier %d: max %v below min %v", i, t.Max, t.Min)
		}
		bounds[i] = Bound{Upper: t.Upper, ID: fmt.Sprintf("tier-%d", i)}
	}
	if rt.Tail.Max < rt.Tail.Min {
		return configErrf(field, "tail: max %v below min %v", rt.Tail.Max, rt.Tail.Min)
	}
	return ValidateBounds(field, bounds, total)
}

// StatusTier binds an index range to its own weighted status table, so that
// cluster membership shifts the status mix itself.
type StatusTier struct {
	Upper      int        `yaml:"upper"`
	Categories []Category `yaml:"categories"`
}

type StatusTiers struct {
	Tiers []StatusTier `yaml:"tiers"`
	Tail  []Category   `yaml:"tail"`
}

func (st StatusTiers) categoriesFor(index int) []Category {
	for _, t := range st.Tiers {
		if index < t.Upper {
			return t.Categories
		}
	}
	return st.Tail
}

func (st StatusTiers) validate(field string, total int) error {
	bounds := make([]Bound, len(st.Tiers))
	for i, t := range st.Tiers {
		if err := validateWeights(fmt.Sprintf("%s.tiers[%d]", field, i), t.Categories); err != nil {
			return err
		}
		bounds[i] = Bound{Upper: t.Upper, ID: fmt.Sprintf("tier-%d", i)}
	}
	if err := validateWeights(field+".tail", st.Tail); err != nil {
		return err
	}
	return ValidateBounds(field, bounds, total)
}

type TopConfig struct {
	Count      int        `yaml:"count" validate:"gt=0"`
	IDPrefix   string     `yaml:"idPrefix"`
	IDStrategy IDStrategy `yaml:"idStrategy"`
	NamePrefix string     `yaml:"namePrefix"`
	Categories []Category `yaml:"categories" validate:"required,dive"`
	Statuses   []Category `yaml:"statuses" validate:"required,dive"`
	Metric     Range      `yaml:"metric"`
}

type MidConfig struct {
	// Count == 0 collapses the mid layer: leaves then reference tops
	// directly.
	Count           int        `yaml:"count" validate:"gte=0"`
	IDPrefix        string     `yaml:"idPrefix"`
	IDStrategy      IDStrategy `yaml:"idStrategy"`
	NamePrefix      string     `yaml:"namePrefix"`
	Clusters        []Bound    `yaml:"clusters" validate:"dive"`
	ClusterTail     string     `yaml:"clusterTail"`
	TailSkew        TailSkew   `yaml:"tailSkew"`
	Income          Range      `yaml:"income"`
	BirthBase       string     `yaml:"birthBase"`
	BirthStrideDays int        `yaml:"birthStrideDays" validate:"gte=0"`
	RiskProb        float64    `yaml:"riskProb" validate:"gte=0,lte=1"`
	RiskHighLabel   string     `yaml:"riskHighLabel"`
	RiskNormalLabel string     `yaml:"riskNormalLabel"`
}

type LeafConfig struct {
	Count          int               `yaml:"count" validate:"gt=0"`
	IDPrefix       string            `yaml:"idPrefix"`
	IDStrategy     IDStrategy        `yaml:"idStrategy"`
	NamePrefix     string            `yaml:"namePrefix"`
	Clusters       []Bound           `yaml:"clusters" validate:"dive"`
	ClusterTail    string            `yaml:"clusterTail"`
	TailSkew       TailSkew          `yaml:"tailSkew"`
	Amount         RangeTiers        `yaml:"amount"`
	Score          RangeTiers        `yaml:"score"`
	Status         StatusTiers       `yaml:"status"`
	Types          []Category        `yaml:"types" validate:"required,dive"`
	SameDayProb    float64           `yaml:"sameDayProb" validate:"gte=0,lte=1"`
	SharedAddrProb float64           `yaml:"sharedAddrProb" validate:"gte=0,lte=1"`
	ProcessingMax  float64           `yaml:"processingMax" validate:"gte=0"`
	BaseDate       string            `yaml:"baseDate"`
	DateWindowDays int               `yaml:"dateWindowDays" validate:"gte=0"`
	DescPrefix     string            `yaml:"descPrefix"`
	DescDetails    map[string]string `yaml:"descDetails"`
	DescDefault    string            `yaml:"descDefault"`
}

// Config is the full declarative input of one generation run. Everything a
// run produces is a pure function of this struct.
type Config struct {
	Seed int64      `yaml:"seed"`
	Top  TopConfig  `yaml:"top"`
	Mid  MidConfig  `yaml:"mid"`
	Leaf LeafConfig `yaml:"leaf"`
}

var structValidate = validator.New()

// Validate runs struct-tag validation plus the cross-field checks the tags
// cannot express (bound ordering, weight tables, parent pools). It must pass
// before any row is generated.
func (c *Config) Validate() error {
	if err := structValidate.Struct(c); err != nil {
		return configErrf("config", "%v", err)
	}
	if err := validateWeights("top.categories", c.Top.Categories); err != nil {
		return err
	}
	if err := validateWeights("top.statuses", c.Top.Statuses); err != nil {
		return err
	}
	if c.Top.Metric.Max < c.Top.Metric.Min {
		return configErrf("top.metric", "max %v below min %v", c.Top.Metric.Max, c.Top.Metric.Min)
	}

	if c.Mid.Count > 0 {
		if err := ValidateBounds("mid.clusters", c.Mid.Clusters, c.Mid.Count); err != nil {
			return err
		}
		if c.Top.Count <= len(c.Mid.Clusters) {
			return configErrf("mid.clusters", "top count %d leaves no residual pool beyond %d pinned clusters", c.Top.Count, len(c.Mid.Clusters))
		}
		if c.Mid.Income.Max < c.Mid.Income.Min {
			return configErrf("mid.income", "max %v below min %v", c.Mid.Income.Max, c.Mid.Income.Min)
		}
		if c.Mid.BirthBase != "" {
			if _, err := time.Parse(dateLayout, c.Mid.BirthBase); err != nil {
				return configErrf("mid.birthBase", "bad date %q: %v", c.Mid.BirthBase, err)
			}
		}
	}

	parentCount := c.Mid.Count
	if parentCount == 0 {
		parentCount = c.Top.Count
	}
	if err := ValidateBounds("leaf.clusters", c.Leaf.Clusters, c.Leaf.Count); err != nil {
		return err
	}
	if parentCount <= len(c.Leaf.Clusters) {
		return configErrf("leaf.clusters", "parent pool %d leaves no residual beyond %d pinned clusters", parentCount, len(c.Leaf.Clusters))
	}
	if err := c.Leaf.Amount.validate("leaf.amount", c.Leaf.Count); err != nil {
		return err
	}
	if err := c.Leaf.Score.validate("leaf.score", c.Leaf.Count); err != nil {
		return err
	}
	if err := c.Leaf.Status.validate("leaf.status", c.Leaf.Count); err != nil {
		return err
	}
	if err := validateWeights("leaf.types", c.Leaf.Types); err != nil {
		return err
	}
	if c.Leaf.BaseDate != "" {
		if _, err := time.Parse(dateLayout, c.Leaf.BaseDate); err != nil {
			return configErrf("leaf.baseDate", "bad date %q: %v", c.Leaf.BaseDate, err)
		}
	}
	return nil
}

// applyDefaults fills zero values that have documented defaults. Counts and
// weight tables have no defaults on purpose: an empty run is a config error,
// not a silent no-op.
func (c *Config) applyDefaults() {
	if c.Top.IDStrategy == "" {
		c.Top.IDStrategy = IDOrdinal
	}
	if c.Mid.IDStrategy == "" {
		c.Mid.IDStrategy = IDOrdinal
	}
	if c.Leaf.IDStrategy == "" {
		c.Leaf.IDStrategy = IDOrdinal
	}
	if c.Mid.ClusterTail == "" {
		c.Mid.ClusterTail = DEFAULT_TAIL_ID
	}
	if c.Leaf.ClusterTail == "" {
		c.Leaf.ClusterTail = DEFAULT_TAIL_ID
	}
	if c.Leaf.DateWindowDays == 0 {
		c.Leaf.DateWindowDays = DEFAULT_DATE_WINDOW
	}
}

// LoadConfig reads a YAML run configuration, applies defaults and validates
// it.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Config{Seed: DEFAULT_SEED}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, configErrf("config", "parse %s: %v", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
