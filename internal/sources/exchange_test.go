package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adshao/go-binance/v2"
	bybit "github.com/hirokisan/bybit/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/symbex/internal/domain"
)

func TestBinanceSource_Symbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/exchangeInfo", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"timezone":"UTC","serverTime":1,"symbols":[
			{"symbol":"BTCUSDT","status":"TRADING","baseAsset":"BTC","quoteAsset":"USDT"},
			{"symbol":"ETHBTC","status":"TRADING","baseAsset":"ETH","quoteAsset":"BTC"}
		]}`))
	}))
	defer srv.Close()

	client := binance.NewClient("", "")
	client.BaseURL = srv.URL

	src := NewBinanceSource(client)
	records, err := src.Symbols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExchangeBinance, src.Name())
	assert.Equal(t, []domain.SymbolRecord{
		{Symbol: "BTCUSDT", Base: "BTC", Quote: "USDT"},
		{Symbol: "ETHBTC", Base: "ETH", Quote: "BTC"},
	}, records)
}

func TestBinanceSource_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":-1000,"msg":"unknown"}`))
	}))
	defer srv.Close()

	client := binance.NewClient("", "")
	client.BaseURL = srv.URL

	_, err := NewBinanceSource(client).Symbols(context.Background())
	assert.Error(t, err)
}

func TestBybitSource_Symbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v5/market/instruments-info", r.URL.Path)
		assert.Equal(t, "spot", r.URL.Query().Get("category"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"retCode":0,"retMsg":"OK","result":{"category":"spot","list":[
			{"symbol":"SOLUSDT","baseCoin":"SOL","quoteCoin":"USDT","status":"Trading"}
		]},"retExtInfo":{},"time":1}`))
	}))
	defer srv.Close()

	src := NewBybitSource(bybit.NewClient().WithBaseURL(srv.URL))
	records, err := src.Symbols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ExchangeBybit, src.Name())
	assert.Equal(t, []domain.SymbolRecord{{Symbol: "SOLUSDT", Base: "SOL", Quote: "USDT"}}, records)
}
