package gen

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"demogen/rng"
)

const (
	DEFAULT_BIRTH_BASE = "1980-01-01"
	DEFAULT_BASE_DATE  = "2025-01-01"
)

// Generate runs one full pass: validate config, generate the three tables
// off per-table derived streams, assemble and verify the bundle. All or
// nothing; no partial tables escape.
func Generate(cfg Config) (*Bundle, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := rng.New(cfg.Seed)

	tops, err := GenerateTops(root.Derive("top"), cfg.Top)
	if err != nil {
		return nil, err
	}

	var mids []MidEntity
	parentIDs := idsOfTops(tops)
	if cfg.Mid.Count > 0 {
		mids, err = GenerateMids(root.Derive("mid"), cfg.Mid, parentIDs)
		if err != nil {
			return nil, err
		}
		parentIDs = idsOfMids(mids)
	}

	leafs, err := GenerateLeafs(root.Derive("leaf"), cfg.Leaf, parentIDs)
	if err != nil {
		return nil, err
	}

	return Assemble(tops, mids, leafs)
}

// GenerateTops produces the top-level table (agents, projects).
func GenerateTops(rc *rng.Context, cfg TopConfig) ([]TopEntity, error) {
	if cfg.Count <= 0 {
		return nil, configErrf("top.count", "non-positive count %d", cfg.Count)
	}

	tops := make([]TopEntity, cfg.Count)
	for i := range tops {
		id, err := makeID(rc, cfg.IDStrategy, cfg.IDPrefix, i)
		if err != nil {
			return nil, err
		}
		category, err := SampleWeighted(rc, cfg.Categories)
		if err != nil {
			return nil, err
		}
		status, err := SampleWeighted(rc, cfg.Statuses)
		if err != nil {
			return nil, err
		}
		tops[i] = TopEntity{
			ID:          id,
			DisplayName: fmt.Sprintf("%s %d", cfg.NamePrefix, i+1),
			Category:    category,
			Metric:      round2(rc.Float64Range(cfg.Metric.Min, cfg.Metric.Max)),
			Status:      status,
		}
	}
	return tops, nil
}

// GenerateMids produces the dependent table (policyholders), each row linked
// to a top entity through the cluster policy.
func GenerateMids(rc *rng.Context, cfg MidConfig, topIDs []string) ([]MidEntity, error) {
	if cfg.Count <= 0 {
		return nil, configErrf("mid.count", "non-positive count %d", cfg.Count)
	}
	if len(topIDs) == 0 {
		return nil, configErrf("mid", "empty top entity pool")
	}

	policy, err := NewParentPolicy(rc, cfg.Clusters, cfg.Count, len(topIDs), cfg.TailSkew, cfg.ClusterTail)
	if err != nil {
		return nil, err
	}

	birthBase := cfg.BirthBase
	if birthBase == "" {
		birthBase = DEFAULT_BIRTH_BASE
	}
	base, err := time.Parse(dateLayout, birthBase)
	if err != nil {
		return nil, configErrf("mid.birthBase", "bad date %q: %v", birthBase, err)
	}

	mids := make([]MidEntity, cfg.Count)
	for i := range mids {
		id, err := makeID(rc, cfg.IDStrategy, cfg.IDPrefix, i)
		if err != nil {
			return nil, err
		}
		ordinal, cluster := policy.Assign(i)

		risk := cfg.RiskNormalLabel
		if rc.Chance(cfg.RiskProb) {
			risk = cfg.RiskHighLabel
		}

		mids[i] = MidEntity{
			ID:          id,
			DisplayName: fmt.Sprintf("%s %d", cfg.NamePrefix, i+1),
			Income:      round2(rc.Float64Range(cfg.Income.Min, cfg.Income.Max)),
			BirthDate:   base.AddDate(0, 0, i*cfg.BirthStrideDays),
			RiskLabel:   risk,
			TopID:       topIDs[ordinal],
			Cluster:     cluster,
		}
	}
	return mids, nil
}

// GenerateLeafs produces the leaf table (claims, tasks). parentIDs is the
// mid table's keys, or the top table's for two-tier datasets.
func GenerateLeafs(rc *rng.Context, cfg LeafConfig, parentIDs []string) ([]LeafEntity, error) {
	if cfg.Count <= 0 {
		return nil, configErrf("leaf.count", "non-positive count %d", cfg.Count)
	}
	if len(parentIDs) == 0 {
		return nil, configErrf("leaf", "empty parent entity pool")
	}

	policy, err := NewParentPolicy(rc, cfg.Clusters, cfg.Count, len(parentIDs), cfg.TailSkew, cfg.ClusterTail)
	if err != nil {
		return nil, err
	}

	baseDate := cfg.BaseDate
	if baseDate == "" {
		baseDate = DEFAULT_BASE_DATE
	}
	base, err := time.Parse(dateLayout, baseDate)
	if err != nil {
		return nil, configErrf("leaf.baseDate", "bad date %q: %v", baseDate, err)
	}
	window := cfg.DateWindowDays
	if window <= 0 {
		window = DEFAULT_DATE_WINDOW
	}

	leafs := make([]LeafEntity, cfg.Count)
	for i := range leafs {
		id, err := makeID(rc, cfg.IDStrategy, cfg.IDPrefix, i)
		if err != nil {
			return nil, err
		}
		ordinal, cluster := policy.Assign(i)

		amount := cfg.Amount.rangeFor(i)
		score := cfg.Score.rangeFor(i)
		status, err := SampleWeighted(rc, cfg.Status.categoriesFor(i))
		if err != nil {
			return nil, err
		}
		typ, err := SampleWeighted(rc, cfg.Types)
		if err != nil {
			return nil, err
		}
		date := base.AddDate(0, 0, -(i % window))

		leaf := LeafEntity{
			ID:             id,
			DisplayName:    fmt.Sprintf("%s %d", cfg.NamePrefix, i+1),
			ParentID:       parentIDs[ordinal],
			Amount:         round2(rc.Float64Range(amount.Min, amount.Max)),
			Score:          round1(rc.Float64Range(score.Min, score.Max)),
			Status:         status,
			Type:           typ,
			SameDayFlag:    rc.Chance(cfg.SameDayProb),
			SharedAddrFlag: rc.Chance(cfg.SharedAddrProb),
			ProcessingDays: round1(rc.Float64Range(0, cfg.ProcessingMax)),
			Date:           date,
			Cluster:        cluster,
		}
		// The description is a pure formatting of fields drawn above; it
		// must not consume randomness of its own.
		leaf.Description = leafDescription(cfg, leaf.Type, leaf.Date)
		leafs[i] = leaf
	}
	return leafs, nil
}

func leafDescription(cfg LeafConfig, typ string, date time.Time) string {
	detail, ok := cfg.DescDetails[typ]
	if !ok {
		detail = cfg.DescDefault
	}
	if cfg.DescPrefix == "" && detail == "" {
		return ""
	}
	return fmt.Sprintf("%s%s - Reported %s", cfg.DescPrefix, detail, date.Format(dateLayout))
}

func makeID(rc *rng.Context, strategy IDStrategy, prefix string, index int) (string, error) {
	switch strategy {
	case IDUUID:
		u, err := uuid.NewRandomFromReader(rc)
		if err != nil {
			return "", fmt.Errorf("derive uuid: %w", err)
		}
		return u.String(), nil
	case IDOrdinal, "":
		return fmt.Sprintf("%s%d", prefix, index), nil
	default:
		return "", configErrf("idStrategy", "unknown strategy %q", strategy)
	}
}

func idsOfTops(tops []TopEntity) []string {
	ids := make([]string, len(tops))
	for i, t := range tops {
		ids[i] = t.ID
	}
	return ids
}

func idsOfMids(mids []MidEntity) []string {
	ids := make([]string, len(mids))
	for i, m := range mids {
		ids[i] = m.ID
	}
	return ids
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
