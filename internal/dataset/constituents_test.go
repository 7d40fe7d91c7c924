package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToConstituents(t *testing.T) {
	f := NewFrame([]string{"symbol", "name", "headquarters", "ytd"}, [][]string{
		{"AAPL", "Apple Inc", "Cupertino", "10.5"},
		{"MSFT", "Microsoft", "Redmond", "-5"},
	})

	table, err := ToConstituents(f, "symbol", "ytd")
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, "AAPL", table.Records[0].Symbol)
	assert.Equal(t, "Apple Inc", table.Records[0].Name)
	assert.InDelta(t, 10.5, table.Records[0].YTD, 1e-9)
	assert.Equal(t, "Cupertino", table.Records[0].Attrs["headquarters"])
	assert.InDelta(t, -5.0, table.Records[1].YTD, 1e-9)

	// Sector starts unpopulated.
	assert.Empty(t, table.Records[0].Sector)
}

func TestToConstituents_NoNameColumn(t *testing.T) {
	f := NewFrame([]string{"symbol", "ytd"}, [][]string{{"AAPL", "1"}})

	table, err := ToConstituents(f, "symbol", "ytd")
	require.NoError(t, err)
	assert.Empty(t, table.Records[0].Name)
	assert.Nil(t, table.Records[0].Attrs)
}

func TestToConstituents_BadYTD(t *testing.T) {
	f := NewFrame([]string{"symbol", "ytd"}, [][]string{{"AAPL", "not-a-number"}})

	_, err := ToConstituents(f, "symbol", "ytd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AAPL")
}

func TestToConstituents_MissingColumns(t *testing.T) {
	f := NewFrame([]string{"symbol"}, nil)

	_, err := ToConstituents(f, "symbol", "ytd")
	assert.Error(t, err)
}
