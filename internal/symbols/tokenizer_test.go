package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/vocabulary"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		vocab         []string
		symbol        string
		expectedBase  string
		expectedQuote string
	}{
		{name: "known quote", vocab: vocabulary.DefaultCodes, symbol: "BTCUSDT", expectedBase: "BTC", expectedQuote: "USDT"},
		{name: "lowercase keeps base case", vocab: vocabulary.DefaultCodes, symbol: "btcusdt", expectedBase: "btc", expectedQuote: "USDT"},
		{name: "dash separator", vocab: vocabulary.DefaultCodes, symbol: "ETH-BTC", expectedBase: "ETH", expectedQuote: "BTC"},
		{name: "slash separator", vocab: vocabulary.DefaultCodes, symbol: "ETH/BTC", expectedBase: "ETH", expectedQuote: "BTC"},
		{name: "underscore separator", vocab: vocabulary.DefaultCodes, symbol: "BTC_USDT", expectedBase: "BTC", expectedQuote: "USDT"},
		{name: "colon separator", vocab: vocabulary.DefaultCodes, symbol: "BTC:USDT", expectedBase: "BTC", expectedQuote: "USDT"},
		{name: "slash before underscore, single split", vocab: vocabulary.DefaultCodes, symbol: "ETH/BTC_X", expectedBase: "ETH", expectedQuote: "BTC_X"},
		{name: "dash wins over slash regardless of position", vocab: vocabulary.DefaultCodes, symbol: "ETH/BTC-X", expectedBase: "ETH/BTC", expectedQuote: "X"},
		{name: "first occurrence only", vocab: vocabulary.DefaultCodes, symbol: "A-B-C", expectedBase: "A", expectedQuote: "B-C"},
		{name: "separator not used when a side is empty", vocab: vocabulary.DefaultCodes, symbol: "ETHBTC-", expectedBase: "ETHBTC-", expectedQuote: ""},
		{name: "perpetual suffix", vocab: vocabulary.DefaultCodes, symbol: "BTCUSDT/P", expectedBase: "BTC", expectedQuote: "USDT"},
		{name: "perpetual suffix lowercase with separator", vocab: vocabulary.DefaultCodes, symbol: "eth-btc/p", expectedBase: "eth", expectedQuote: "btc"},
		{name: "longest code wins", vocab: []string{"USD", "USDT"}, symbol: "BTCUSDT", expectedBase: "BTC", expectedQuote: "USDT"},
		{name: "code must be a proper suffix", vocab: []string{"USDT"}, symbol: "USDT", expectedBase: "USDT", expectedQuote: ""},
		{name: "fallback quote", vocab: []string{}, symbol: "DOGEUSDT", expectedBase: "DOGE", expectedQuote: "USDT"},
		{name: "fallback tries USD before BUSD", vocab: []string{}, symbol: "DOGEBUSD", expectedBase: "DOGEB", expectedQuote: "USD"},
		{name: "fallback needs two char base", vocab: []string{}, symbol: "XBTC", expectedBase: "XBTC", expectedQuote: ""},
		{name: "vocabulary accepts one char base", vocab: vocabulary.DefaultCodes, symbol: "XBTC", expectedBase: "X", expectedQuote: "BTC"},
		{name: "unparseable", vocab: vocabulary.DefaultCodes, symbol: "FOOBAR", expectedBase: "FOOBAR", expectedQuote: ""},
		{name: "empty", vocab: vocabulary.DefaultCodes, symbol: "", expectedBase: "", expectedQuote: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vocabulary.New(tt.vocab...)
			res := Parse(v, tt.symbol)
			assert.Equal(t, tt.expectedBase, res.Base)
			assert.Equal(t, tt.expectedQuote, res.Quote)
		})
	}
}

func TestParse_NeverPicksShorterOverlappingQuote(t *testing.T) {
	// insertion order puts USD first, the vocabulary must still try USDT first
	v := vocabulary.New()
	require.True(t, v.Add("USD"))
	require.True(t, v.Add("USDT"))

	res := Parse(v, "BTCUSDT")
	assert.Equal(t, domain.Pair{Base: "BTC", Quote: "USDT"}, res.Pair())
}

func TestParse_ReportsLearnedCodes(t *testing.T) {
	v := vocabulary.New()

	res := Parse(v, "sol-abc")
	assert.Equal(t, []string{"SOL", "ABC"}, res.Learned)
	assert.Equal(t, []string{"SOL", "ABC"}, v.Codes())

	res = Parse(v, "SOL-ABC")
	assert.Empty(t, res.Learned, "second parse of the same symbol learns nothing")
	assert.Equal(t, 2, v.Len())

	res = Parse(v, "DOGEABC")
	assert.Equal(t, domain.Pair{Base: "DOGE", Quote: "ABC"}, res.Pair())
	assert.Equal(t, []string{"DOGE"}, res.Learned)
}

func TestParse_DependsOnEarlierCalls(t *testing.T) {
	v := vocabulary.Default()

	before := Parse(v, "ETHSOL")
	assert.Equal(t, domain.Pair{Base: "ETHSOL", Quote: ""}, before.Pair())
	assert.Empty(t, before.Learned)

	learned := Parse(v, "SOLUSDT")
	assert.Equal(t, []string{"SOL"}, learned.Learned)
	assert.True(t, v.Contains("SOL"))

	after := Parse(v, "ETHSOL")
	assert.Equal(t, domain.Pair{Base: "ETH", Quote: "SOL"}, after.Pair())
}

func TestParser_PersistsThroughRegistry(t *testing.T) {
	store := vocabulary.NewMemoryStore()
	reg, err := vocabulary.Open(store)
	require.NoError(t, err)

	p := NewParser(reg)

	rec := p.Record("LINKUSDT")
	assert.Equal(t, domain.SymbolRecord{Symbol: "LINKUSDT", Base: "LINK", Quote: "USDT"}, rec)
	assert.Equal(t, 1, store.Saves)

	p.Pair("LINKUSDT")
	assert.Equal(t, 1, store.Saves, "known codes cause no write")

	saved, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"USDT", "LINK", "BTC", "ETH", "USD"}, saved)
}
