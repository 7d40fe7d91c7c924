package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/index-enrich/internal/model"
)

func TestExportCSV(t *testing.T) {
	table := &model.Table{Records: []model.Constituent{
		{Symbol: "AAPL", Name: "Apple Inc", YTD: 10.5, Sector: "Technology",
			Attrs: map[string]string{"headquarters": "Cupertino"}},
		{Symbol: "MSFT", Name: "Microsoft", YTD: -5, Sector: "Technology"},
	}}

	path := filepath.Join(t.TempDir(), "enriched.csv")
	require.NoError(t, ExportCSV(table, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"symbol", "name", "headquarters", "ytd", "sector"}, records[0])
	assert.Equal(t, []string{"AAPL", "Apple Inc", "Cupertino", "10.5", "Technology"}, records[1])
	assert.Equal(t, []string{"MSFT", "Microsoft", "", "-5", "Technology"}, records[2])
}

func TestExportCSV_BadPath(t *testing.T) {
	err := ExportCSV(&model.Table{}, filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv"))
	assert.Error(t, err)
}
