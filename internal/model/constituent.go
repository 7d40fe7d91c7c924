package model

// Constituent represents one index member joined with its YTD price change.
type Constituent struct {
	Symbol string            `json:"symbol"`
	Name   string            `json:"name,omitempty"`
	Attrs  map[string]string `json:"attrs,omitempty"` // extra columns carried verbatim from the source table
	YTD    float64           `json:"ytd"`
	Sector string            `json:"sector,omitempty"` // empty until classified
}

// Table is an ordered collection of constituents. Order is the join output
// order and is preserved through classification and rendering.
type Table struct {
	Records []Constituent `json:"records"`
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.Records)
}

// UpdateSector writes sector into every record whose symbol matches.
// Update-by-key rather than positional write: stays correct if symbols
// repeat (join fan-out) or the table is reordered. Returns the number of
// records written.
func (t *Table) UpdateSector(symbol, sector string) int {
	n := 0
	for i := range t.Records {
		if t.Records[i].Symbol == symbol {
			t.Records[i].Sector = sector
			n++
		}
	}
	return n
}

// Symbols returns the symbols in table order, duplicates included.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Symbol
	}
	return out
}

// SectorTally maps a sector label to its record count.
type SectorTally map[string]int

// Total returns the sum of all counts.
func (st SectorTally) Total() int {
	n := 0
	for _, c := range st {
		n += c
	}
	return n
}

// SectorResult is the per-row outcome of a classification call.
type SectorResult struct {
	Symbol string `json:"symbol"`
	Sector string `json:"sector,omitempty"`
	Err    error  `json:"-"`
}
