package model

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultSectors is the closed classification taxonomy. Classifier output is
// stored verbatim and is not forced into this set; the taxonomy exists for
// prompt construction and off-taxonomy diagnostics.
var DefaultSectors = []string{
	"Technology",
	"Consumer Cyclical",
	"Industrials",
	"Utilities",
	"Healthcare",
	"Communication",
	"Energy",
	"Consumer Defensive",
	"Real Estate",
	"Financial",
}

// Taxonomy is an ordered set of allowed sector labels.
type Taxonomy struct {
	Sectors []string `yaml:"sectors"`
}

// DefaultTaxonomy returns the built-in ten-sector taxonomy.
func DefaultTaxonomy() Taxonomy {
	sectors := make([]string, len(DefaultSectors))
	copy(sectors, DefaultSectors)
	return Taxonomy{Sectors: sectors}
}

// LoadTaxonomy reads a taxonomy override from a YAML file of the form:
//
//	sectors:
//	  - Technology
//	  - Healthcare
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, eris.Wrap(err, "taxonomy: read file")
	}

	var tx Taxonomy
	if err := yaml.Unmarshal(data, &tx); err != nil {
		return Taxonomy{}, eris.Wrap(err, "taxonomy: unmarshal yaml")
	}
	if len(tx.Sectors) == 0 {
		return Taxonomy{}, eris.Errorf("taxonomy: %s defines no sectors", path)
	}

	return tx, nil
}

// Contains reports whether label is an exact member of the taxonomy.
// No case folding or whitespace trimming: labels are compared as stored.
func (tx Taxonomy) Contains(label string) bool {
	for _, s := range tx.Sectors {
		if s == label {
			return true
		}
	}
	return false
}
