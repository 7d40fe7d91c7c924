package dataset

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/index-enrich/internal/model"
)

// nameColumns are the header names recognized as the company name column,
// checked in order.
var nameColumns = []string{"name", "Name", "company", "Company", "companyName"}

// ToConstituents converts a joined frame into the constituent table. The key
// column becomes Symbol, ytdCol is parsed as a float, a recognized name
// column becomes Name, and every other column is carried in Attrs verbatim.
func ToConstituents(f *Frame, key, ytdCol string) (*model.Table, error) {
	if err := f.RequireColumns(key, ytdCol); err != nil {
		return nil, eris.Wrap(err, "constituents")
	}

	var nameCol string
	for _, c := range nameColumns {
		if _, ok := f.Col(c); ok {
			nameCol = c
			break
		}
	}

	table := &model.Table{Records: make([]model.Constituent, 0, len(f.Rows))}
	for _, row := range f.Rows {
		symbol := f.Get(row, key)
		rawYTD := f.Get(row, ytdCol)

		ytd, err := strconv.ParseFloat(strings.TrimSpace(rawYTD), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "constituents: parse %s for %s", ytdCol, symbol)
		}

		rec := model.Constituent{
			Symbol: symbol,
			YTD:    ytd,
		}
		if nameCol != "" {
			rec.Name = f.Get(row, nameCol)
		}

		for i, col := range f.Header {
			col = strings.TrimSpace(col)
			if col == key || col == ytdCol || col == nameCol {
				continue
			}
			if i >= len(row) {
				continue
			}
			val := strings.TrimSpace(row[i])
			if val == "" {
				continue
			}
			if rec.Attrs == nil {
				rec.Attrs = make(map[string]string)
			}
			rec.Attrs[col] = val
		}

		table.Records = append(table.Records, rec)
	}

	return table, nil
}
