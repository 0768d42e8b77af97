package market

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A zero-value service has no live client, so lookups resolve from the
// static quote table only.
func TestGetQuoteFallbackTable(t *testing.T) {
	s := &QuoteService{}

	price, err := s.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.InDelta(t, 185.0, price, 1e-9)

	price, err = s.GetQuote(context.Background(), "IAM")
	require.NoError(t, err)
	assert.InDelta(t, 102.50, price, 1e-9)
}

func TestGetQuoteUnknownSymbolDefault(t *testing.T) {
	s := &QuoteService{}

	price, err := s.GetQuote(context.Background(), "UNKNOWN")
	require.NoError(t, err)
	assert.InDelta(t, DefaultQuote, price, 1e-9)
}

func TestGetSupportedSymbolsSorted(t *testing.T) {
	s := &QuoteService{}

	symbols := s.GetSupportedSymbols()
	require.NotEmpty(t, symbols)
	assert.True(t, sort.StringsAreSorted(symbols))
	assert.Contains(t, symbols, "BTC-USD")
	assert.Contains(t, symbols, "AAPL")
}
