package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeFile(t, "constituents.csv", "symbol,name\nAAPL,Apple Inc\nMSFT,Microsoft\n")

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"symbol", "name"}, f.Header)
	assert.Len(t, f.Rows, 2)
	assert.Equal(t, "AAPL", f.Get(f.Rows[0], "symbol"))
	assert.Equal(t, "Microsoft", f.Get(f.Rows[1], "name"))
}

func TestLoad_TSV(t *testing.T) {
	path := writeFile(t, "prices.tsv", "symbol\tytd\nAAPL\t10.5\n")

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"symbol", "ytd"}, f.Header)
	assert.Equal(t, "10.5", f.Get(f.Rows[0], "ytd"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoad_MalformedCSV(t *testing.T) {
	// Ragged rows break delimiter structure.
	path := writeFile(t, "bad.csv", "symbol,name\nAAPL\nMSFT,Microsoft,extra\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestLoadPair_Concurrent(t *testing.T) {
	left := writeFile(t, "a.csv", "symbol\nAAPL\n")
	right := writeFile(t, "b.csv", "symbol,ytd\nAAPL,10\n")

	lf, rf, err := LoadPair(context.Background(), left, right)
	require.NoError(t, err)
	assert.Len(t, lf.Rows, 1)
	assert.Len(t, rf.Rows, 1)
}

func TestLoadPair_OneMissing(t *testing.T) {
	left := writeFile(t, "a.csv", "symbol\nAAPL\n")

	_, _, err := LoadPair(context.Background(), left, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFrame_RequireColumns(t *testing.T) {
	f := NewFrame([]string{"symbol", "ytd"}, nil)

	assert.NoError(t, f.RequireColumns("symbol", "ytd"))

	err := f.RequireColumns("sector")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sector"`)
}

func TestFrame_GetShortRow(t *testing.T) {
	f := NewFrame([]string{"symbol", "name"}, [][]string{{"AAPL"}})

	assert.Equal(t, "AAPL", f.Get(f.Rows[0], "symbol"))
	assert.Equal(t, "", f.Get(f.Rows[0], "name"))
	assert.Equal(t, "", f.Get(f.Rows[0], "missing"))
}

func TestFrame_HeaderTrimmed(t *testing.T) {
	f := NewFrame([]string{" symbol ", "ytd"}, [][]string{{"AAPL", "10"}})

	idx, ok := f.Col("symbol")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}
