package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInnerJoin_DropsNonMatching(t *testing.T) {
	left := NewFrame([]string{"symbol", "name"}, [][]string{
		{"AAPL", "Apple Inc"},
		{"MSFT", "Microsoft"},
		{"ZZZZ", "Ghost Corp"},
	})
	right := NewFrame([]string{"symbol", "ytd"}, [][]string{
		{"AAPL", "10"},
		{"MSFT", "-5"},
	})

	joined, err := InnerJoin(left, right, "symbol", []string{"symbol", "ytd"})
	require.NoError(t, err)

	assert.Equal(t, []string{"symbol", "name", "ytd"}, joined.Header)
	require.Len(t, joined.Rows, 2)
	assert.Equal(t, "AAPL", joined.Get(joined.Rows[0], "symbol"))
	assert.Equal(t, "10", joined.Get(joined.Rows[0], "ytd"))
	assert.Equal(t, "MSFT", joined.Get(joined.Rows[1], "symbol"))
	assert.Equal(t, "-5", joined.Get(joined.Rows[1], "ytd"))
}

func TestInnerJoin_FanOutOnDuplicateRightKeys(t *testing.T) {
	left := NewFrame([]string{"symbol"}, [][]string{
		{"AAPL"},
	})
	right := NewFrame([]string{"symbol", "ytd"}, [][]string{
		{"AAPL", "10"},
		{"AAPL", "11"},
	})

	joined, err := InnerJoin(left, right, "symbol", []string{"symbol", "ytd"})
	require.NoError(t, err)

	// One output row per right-side match.
	require.Len(t, joined.Rows, 2)
	assert.Equal(t, "10", joined.Get(joined.Rows[0], "ytd"))
	assert.Equal(t, "11", joined.Get(joined.Rows[1], "ytd"))
}

func TestInnerJoin_PreservesLeftOrder(t *testing.T) {
	left := NewFrame([]string{"symbol"}, [][]string{
		{"MSFT"}, {"AAPL"}, {"GOOG"},
	})
	right := NewFrame([]string{"symbol", "ytd"}, [][]string{
		{"AAPL", "1"}, {"GOOG", "2"}, {"MSFT", "3"},
	})

	joined, err := InnerJoin(left, right, "symbol", []string{"symbol", "ytd"})
	require.NoError(t, err)

	require.Len(t, joined.Rows, 3)
	assert.Equal(t, "MSFT", joined.Get(joined.Rows[0], "symbol"))
	assert.Equal(t, "AAPL", joined.Get(joined.Rows[1], "symbol"))
	assert.Equal(t, "GOOG", joined.Get(joined.Rows[2], "symbol"))
}

func TestInnerJoin_EmptyResult(t *testing.T) {
	left := NewFrame([]string{"symbol"}, [][]string{{"AAPL"}})
	right := NewFrame([]string{"symbol", "ytd"}, [][]string{{"MSFT", "1"}})

	joined, err := InnerJoin(left, right, "symbol", []string{"symbol", "ytd"})
	require.NoError(t, err)
	assert.Empty(t, joined.Rows)
}

func TestInnerJoin_MissingKeyColumn(t *testing.T) {
	left := NewFrame([]string{"ticker"}, nil)
	right := NewFrame([]string{"symbol", "ytd"}, nil)

	_, err := InnerJoin(left, right, "symbol", []string{"symbol", "ytd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left frame")
}

func TestInnerJoin_MissingPullColumn(t *testing.T) {
	left := NewFrame([]string{"symbol"}, nil)
	right := NewFrame([]string{"symbol"}, nil)

	_, err := InnerJoin(left, right, "symbol", []string{"symbol", "ytd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "right frame")
}
