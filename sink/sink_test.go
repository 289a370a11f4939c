package sink

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demogen/gen"
)

func testBundle(t *testing.T) *gen.Bundle {
	t.Helper()
	bundle, err := gen.Generate(gen.InsuranceConfig())
	require.NoError(t, err)
	return bundle
}

func TestTablesShape(t *testing.T) {
	tables := Tables(testBundle(t), true)
	require.Len(t, tables, 4)

	assert.Equal(t, "top_entities", tables[0].Name)
	assert.Equal(t, "mid_entities", tables[1].Name)
	assert.Equal(t, "leaf_entities", tables[2].Name)
	assert.Equal(t, "relationships", tables[3].Name)

	assert.Len(t, tables[0].Rows, 50)
	assert.Len(t, tables[1].Rows, 200)
	assert.Len(t, tables[2].Rows, 1500)
	assert.Len(t, tables[3].Rows, 1500)

	for _, tb := range tables {
		for i, row := range tb.Rows {
			assert.Len(t, row, len(tb.Columns), "%s row %d", tb.Name, i)
		}
	}
}

func TestTablesSkipsMidWhenTwoTier(t *testing.T) {
	bundle, err := gen.Generate(gen.ProjectConfig())
	require.NoError(t, err)

	tables := Tables(bundle, false)
	require.Len(t, tables, 2)
	assert.Equal(t, "top_entities", tables[0].Name)
	assert.Equal(t, "leaf_entities", tables[1].Name)
}

func TestTablesDeterministic(t *testing.T) {
	a := Tables(testBundle(t), true)
	b := Tables(testBundle(t), true)
	assert.Equal(t, a, b)
}

func TestCSVSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVSink(dir)
	require.NoError(t, err)

	tables := Tables(testBundle(t), false)
	for _, tb := range tables {
		require.NoError(t, s.Write(tb))
	}

	f, err := os.Open(filepath.Join(dir, "leaf_entities.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1501)
	assert.Equal(t, tables[2].Columns, records[0])
	assert.Equal(t, tables[2].Rows[0], records[1])
}

func TestCSVSinkOverwrites(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVSink(dir)
	require.NoError(t, err)

	big := Table{Name: "t", Columns: []string{"a"}, Rows: [][]string{{"1"}, {"2"}, {"3"}}}
	small := Table{Name: "t", Columns: []string{"a"}, Rows: [][]string{{"9"}}}

	require.NoError(t, s.Write(big))
	require.NoError(t, s.Write(small))

	f, err := os.Open(filepath.Join(dir, "t.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// Whole-table replace, never append.
	assert.Equal(t, [][]string{{"a"}, {"9"}}, records)
}

func TestConsoleSinkLimitsRows(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(&buf, 2)

	tb := Table{
		Name:    "preview",
		Columns: []string{"id", "status"},
		Rows: [][]string{
			{"L_0", "Approved"},
			{"L_1", "Denied"},
			{"L_2", "Approved"},
		},
	}
	require.NoError(t, s.Write(tb))

	out := buf.String()
	assert.Contains(t, out, "preview (3 rows)")
	assert.Contains(t, out, "L_0")
	assert.Contains(t, out, "L_1")
	assert.NotContains(t, out, "L_2")
	assert.Contains(t, out, "1 more rows")
}
