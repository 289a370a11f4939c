package gen

import "time"

// The three tables form a generic Top → Mid → Leaf hierarchy (agents →
// policyholders → claims, or projects → tasks with the mid layer collapsed).
// Records are created once per run and never mutated.

type TopEntity struct {
	ID          string
	DisplayName string
	Category    string
	Metric      float64
	Status      string
}

type MidEntity struct {
	ID          string
	DisplayName string
	Income      float64
	BirthDate   time.Time
	RiskLabel   string
	TopID       string
	Cluster     string
}

type LeafEntity struct {
	ID             string
	DisplayName    string
	ParentID       string
	Amount         float64
	Score          float64
	Status         string
	Type           string
	SameDayFlag    bool
	SharedAddrFlag bool
	ProcessingDays float64
	Date           time.Time
	Cluster        string
	Description    string
}

// Relationship is the flattened (leaf, mid, top) projection. It is derived
// from the tables on demand and is never a source of truth. MidID is empty
// for two-tier datasets.
type Relationship struct {
	LeafID string
	MidID  string
	TopID  string
}

// Bundle is a validated, referentially consistent set of generated tables
// ready for handoff to a sink.
type Bundle struct {
	Tops  []TopEntity
	Mids  []MidEntity
	Leafs []LeafEntity
}

// Relationships recomputes the leaf→mid→top projection from the tables.
func (b *Bundle) Relationships() []Relationship {
	midToTop := make(map[string]string, len(b.Mids))
	for _, m := range b.Mids {
		midToTop[m.ID] = m.TopID
	}

	rels := make([]Relationship, 0, len(b.Leafs))
	for _, l := range b.Leafs {
		r := Relationship{LeafID: l.ID}
		if top, ok := midToTop[l.ParentID]; ok {
			r.MidID = l.ParentID
			r.TopID = top
		} else {
			// Two-tier: the leaf references a top entity directly.
			r.TopID = l.ParentID
		}
		rels = append(rels, r)
	}
	return rels
}
