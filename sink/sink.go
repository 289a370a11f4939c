// Package sink consumes generated bundles. Sinks are deliberately outside
// the generator core: they receive named tables of uniformly shaped rows and
// own persistence/overwrite semantics.
package sink

import (
	"strconv"
	"time"

	"demogen/gen"
)

type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

type Sink interface {
	// Write persists one whole table, replacing any previous version of it.
	Write(t Table) error
}

const dateLayout = "2006-01-02"

// Tables flattens a bundle into its tabular form. Row order matches
// generation order, so equal seeds produce byte-identical tables.
func Tables(b *gen.Bundle, withRelationships bool) []Table {
	tables := []Table{topTable(b.Tops)}
	if len(b.Mids) > 0 {
		tables = append(tables, midTable(b.Mids))
	}
	tables = append(tables, leafTable(b.Leafs))
	if withRelationships {
		tables = append(tables, relationshipTable(b.Relationships()))
	}
	return tables
}

func topTable(tops []gen.TopEntity) Table {
	t := Table{
		Name:    "top_entities",
		Columns: []string{"id", "name", "category", "metric", "status"},
	}
	for _, e := range tops {
		t.Rows = append(t.Rows, []string{
			e.ID, e.DisplayName, e.Category, formatFloat(e.Metric), e.Status,
		})
	}
	return t
}

func midTable(mids []gen.MidEntity) Table {
	t := Table{
		Name:    "mid_entities",
		Columns: []string{"id", "name", "income", "birth_date", "risk_label", "top_id", "cluster"},
	}
	for _, e := range mids {
		t.Rows = append(t.Rows, []string{
			e.ID, e.DisplayName, formatFloat(e.Income), formatDate(e.BirthDate),
			e.RiskLabel, e.TopID, e.Cluster,
		})
	}
	return t
}

func leafTable(leafs []gen.LeafEntity) Table {
	t := Table{
		Name: "leaf_entities",
		Columns: []string{
			"id", "name", "parent_id", "amount", "score", "status", "type",
			"same_day_flag", "shared_addr_flag", "processing_days", "date",
			"cluster", "description",
		},
	}
	for _, e := range leafs {
		t.Rows = append(t.Rows, []string{
			e.ID, e.DisplayName, e.ParentID,
			formatFloat(e.Amount), formatFloat(e.Score),
			e.Status, e.Type,
			strconv.FormatBool(e.SameDayFlag), strconv.FormatBool(e.SharedAddrFlag),
			formatFloat(e.ProcessingDays), formatDate(e.Date),
			e.Cluster, e.Description,
		})
	}
	return t
}

func relationshipTable(rels []gen.Relationship) Table {
	t := Table{
		Name:    "relationships",
		Columns: []string{"leaf_id", "mid_id", "top_id"},
	}
	for _, r := range rels {
		t.Rows = append(t.Rows, []string{r.LeafID, r.MidID, r.TopID})
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(v time.Time) string {
	return v.Format(dateLayout)
}
