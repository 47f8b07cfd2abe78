package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/symbex/internal/domain"
)

func rec(symbol, base, quote string) domain.SymbolRecord {
	return domain.NewSymbolRecord(symbol, domain.Pair{Base: base, Quote: quote})
}

func TestQuoteCounts(t *testing.T) {
	records := []domain.SymbolRecord{
		rec("BTCUSDT", "BTC", "USDT"),
		rec("ETHUSDT", "ETH", "USDT"),
		rec("ETHBTC", "ETH", "BTC"),
		rec("XRPTRY", "XRP", "TRY"),
		rec("FOOBAR", "FOOBAR", ""),
	}

	counts := QuoteCounts(records)

	require.Len(t, counts, 3)
	assert.Equal(t, "USDT", counts[0].Quote)
	assert.Equal(t, 2, counts[0].Count)
	assert.True(t, decimal.NewFromInt(50).Equal(counts[0].Share), "got %s", counts[0].Share)
	assert.Equal(t, "BTC", counts[1].Quote, "ties are ordered by quote")
	assert.Equal(t, "TRY", counts[2].Quote)
	assert.True(t, decimal.NewFromInt(25).Equal(counts[2].Share))

	assert.Equal(t, 1, Unparsed(records))
}

func TestQuoteCounts_Rounding(t *testing.T) {
	records := []domain.SymbolRecord{
		rec("BTCUSDT", "BTC", "USDT"),
		rec("ETHBTC", "ETH", "BTC"),
		rec("LTCETH", "LTC", "ETH"),
	}

	counts := QuoteCounts(records)

	require.Len(t, counts, 3)
	assert.Equal(t, "33.33", counts[0].Share.StringFixed(2))
}

func TestQuoteCounts_Empty(t *testing.T) {
	assert.Empty(t, QuoteCounts(nil))
	assert.Empty(t, QuoteCounts([]domain.SymbolRecord{rec("FOO", "FOO", "")}))
}

func TestTop(t *testing.T) {
	counts := []QuoteCount{{Quote: "A"}, {Quote: "B"}, {Quote: "C"}}

	assert.Len(t, Top(counts, 2), 2)
	assert.Len(t, Top(counts, 10), 3)
	assert.Len(t, Top(counts, -1), 3)
}
