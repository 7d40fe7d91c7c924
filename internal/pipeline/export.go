package pipeline

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/index-enrich/internal/model"
)

// ExportCSV writes the enriched table to path with the same column layout as
// the rendered table: symbol, name, extra attributes, ytd, sector.
func ExportCSV(table *model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create csv")
	}
	defer f.Close() //nolint:errcheck

	attrs := attrColumns(table)

	header := []string{"symbol", "name"}
	header = append(header, attrs...)
	header = append(header, "ytd", "sector")

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, rec := range table.Records {
		row := []string{rec.Symbol, rec.Name}
		for _, attr := range attrs {
			row = append(row, rec.Attrs[attr])
		}
		row = append(row, formatYTD(rec.YTD), rec.Sector)
		if err := w.Write(row); err != nil {
			return eris.Wrapf(err, "export: write row %s", rec.Symbol)
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "export: flush")
}
