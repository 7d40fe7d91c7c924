package dataset

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/sync/errgroup"
)

// Frame is an in-memory table: a header row plus data rows. Column names and
// cell values are carried verbatim from the source file.
type Frame struct {
	Header []string
	Rows   [][]string

	colIdx map[string]int
}

// NewFrame builds a frame from a header and rows, indexing columns by
// trimmed header name.
func NewFrame(header []string, rows [][]string) *Frame {
	f := &Frame{Header: header, Rows: rows}
	f.colIdx = make(map[string]int, len(header))
	for i, col := range header {
		f.colIdx[strings.TrimSpace(col)] = i
	}
	return f
}

// Col returns the index of a column by name.
func (f *Frame) Col(name string) (int, bool) {
	idx, ok := f.colIdx[name]
	return idx, ok
}

// Get returns the trimmed cell value at (row, column name), or "" if the
// column is absent or the row is short.
func (f *Frame) Get(row []string, name string) string {
	idx, ok := f.colIdx[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// RequireColumns verifies that all named columns exist in the header.
func (f *Frame) RequireColumns(names ...string) error {
	for _, name := range names {
		if _, ok := f.colIdx[name]; !ok {
			return eris.Errorf("dataset: missing required column %q", name)
		}
	}
	return nil
}

// Load reads a tabular file into a frame, dispatching on extension:
// .xlsx via the xlsx parser, .tsv as tab-delimited, anything else as CSV.
// The first row is the header; a file without one is an error.
func Load(path string) (*Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	case ".tsv":
		return loadDelimited(path, '\t')
	default:
		return loadDelimited(path, ',')
	}
}

// LoadPair loads the two pipeline inputs concurrently. File loading has no
// ordering contract, unlike the classification phase.
func LoadPair(ctx context.Context, leftPath, rightPath string) (*Frame, *Frame, error) {
	var left, right *Frame

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := Load(leftPath)
		if err != nil {
			return err
		}
		left = f
		return nil
	})
	g.Go(func() error {
		f, err := Load(rightPath)
		if err != nil {
			return err
		}
		right = f
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func loadDelimited(path string, comma rune) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: parse %s", filepath.Base(path))
	}
	if len(records) == 0 {
		return nil, eris.Errorf("dataset: %s has no header row", filepath.Base(path))
	}

	return NewFrame(records[0], records[1:]), nil
}

func loadXLSX(path string) (*Frame, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("dataset: %s has no sheets", filepath.Base(path))
	}

	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("dataset: %s has no header row", filepath.Base(path))
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}

	return NewFrame(rows[0], rows[1:]), nil
}
