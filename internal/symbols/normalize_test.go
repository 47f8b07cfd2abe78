package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "BTCUSDT", expected: "BTCUSDT"},
		{input: "btc-usdt", expected: "BTCUSDT"},
		{input: "BTC/USDT", expected: "BTCUSDT"},
		{input: "btc_usdt/p", expected: "BTCUSDT"},
		{input: "BTC/USDT/P", expected: "BTCUSDT"},
		{input: " eth btc ", expected: "ETHBTC"},
		{input: "ET-HBTC", expected: "ETHBTC"},
		{input: "BTC:USDT", expected: "BTC:USDT"},
		{input: "/P", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	for _, s := range []string{"BTC-USDT/P", "eth_btc", "1inch/btc", "a b-c_d/e"} {
		assert.Equal(t, Normalize(s), Normalize(s))
	}
}
