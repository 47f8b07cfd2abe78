package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/symbols"
	"github.com/vadiminshakov/symbex/internal/vocabulary"
	"go.uber.org/zap"
)

func newTestTokenizer() *symbols.Parser {
	return symbols.NewParser(vocabulary.Default())
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []domain.SymbolRecord
	}{
		{
			name:    "data array of objects",
			payload: `{"data":[{"symbol":"BTCUSDT"},{"symbol":"ETHBTC","baseAsset":"ETH","quoteAsset":"BTC"}]}`,
			expected: []domain.SymbolRecord{
				{Symbol: "BTCUSDT", Base: "BTC", Quote: "USDT"},
				{Symbol: "ETHBTC", Base: "ETH", Quote: "BTC"},
			},
		},
		{
			name:     "data list",
			payload:  `{"data":{"list":[{"symbol":"SOLUSDT"}]}}`,
			expected: []domain.SymbolRecord{{Symbol: "SOLUSDT", Base: "SOL", Quote: "USDT"}},
		},
		{
			name:    "bare array of strings",
			payload: `["BTC-USDT","ETHUSD"]`,
			expected: []domain.SymbolRecord{
				{Symbol: "BTC-USDT", Base: "BTC", Quote: "USDT"},
				{Symbol: "ETHUSD", Base: "ETH", Quote: "USD"},
			},
		},
		{
			name:     "single object",
			payload:  `{"symbol":"XRPUSDT"}`,
			expected: []domain.SymbolRecord{{Symbol: "XRPUSDT", Base: "XRP", Quote: "USDT"}},
		},
		{
			name:     "assets used as provided",
			payload:  `{"data":[{"symbol":"weird","baseAsset":"AAA","quoteAsset":"BBB"}]}`,
			expected: []domain.SymbolRecord{{Symbol: "weird", Base: "AAA", Quote: "BBB"}},
		},
		{
			name:     "one asset missing falls back to tokenizer",
			payload:  `{"data":[{"symbol":"ADAUSDT","baseAsset":"ADA","quoteAsset":""}]}`,
			expected: []domain.SymbolRecord{{Symbol: "ADAUSDT", Base: "ADA", Quote: "USDT"}},
		},
		{
			name:     "numeric symbol stringified",
			payload:  `{"data":[{"symbol":123}]}`,
			expected: []domain.SymbolRecord{{Symbol: "123", Base: "123", Quote: ""}},
		},
		{name: "blank symbols skipped", payload: `{"data":[{"symbol":""},"  ",{"name":"x"}]}`, expected: []domain.SymbolRecord{}},
		{name: "empty data", payload: `{"data":[]}`, expected: []domain.SymbolRecord{}},
		{name: "unknown shape", payload: `{"foo":1}`, expected: []domain.SymbolRecord{}},
		{name: "malformed", payload: `{"data":[`, expected: []domain.SymbolRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(newTestTokenizer(), zap.NewNop())
			assert.Equal(t, tt.expected, e.Extract([]byte(tt.payload)))
		})
	}
}

func TestExtractor_NilLogger(t *testing.T) {
	e := NewExtractor(newTestTokenizer(), nil)
	assert.Empty(t, e.Extract([]byte("not json")))
}
