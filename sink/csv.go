package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVSink writes each table to <dir>/<name>.csv, overwriting whole files.
// There is no append mode: a table is always replaced in one shot.
type CSVSink struct {
	Dir string
}

func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &CSVSink{Dir: dir}, nil
}

func (s *CSVSink) Write(t Table) error {
	path := filepath.Join(s.Dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return fmt.Errorf("write header %s: %w", t.Name, err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s row %d: %w", t.Name, i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", t.Name, err)
	}
	return f.Close()
}
