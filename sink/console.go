package sink

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// ConsoleSink renders a preview of each table for quick eyeballing. Limit
// caps the rows printed per table; 0 means everything.
type ConsoleSink struct {
	Out   io.Writer
	Limit int
}

func NewConsoleSink(out io.Writer, limit int) *ConsoleSink {
	return &ConsoleSink{Out: out, Limit: limit}
}

func (s *ConsoleSink) Write(t Table) error {
	rows := t.Rows
	if s.Limit > 0 && len(rows) > s.Limit {
		rows = rows[:s.Limit]
	}
	fmt.Fprintf(s.Out, "%s (%d rows)\n", t.Name, len(t.Rows))

	table := tablewriter.NewWriter(s.Out)
	table.SetHeader(t.Columns)
	table.AppendBulk(rows)
	table.Render()

	if len(rows) < len(t.Rows) {
		fmt.Fprintf(s.Out, "... %d more rows\n", len(t.Rows)-len(rows))
	}
	return nil
}
