package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/symbex/internal/domain"
	"go.uber.org/zap"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path == "/broken" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data":["BTCUSDT"]}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)

	body, err := f.Fetch(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":["BTCUSDT"]}`, string(body))

	_, err = f.Fetch(context.Background(), srv.URL+"/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPFetcher_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher(0).Fetch(ctx, srv.URL)
	assert.Error(t, err)
}

func TestAPISource_Symbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/symbols":
			_, _ = w.Write([]byte(`{"data":{"list":[{"symbol":"BTCUSDT"},{"symbol":"ETH-BTC"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	tokenizer := newTestTokenizer()
	fetcher := NewHTTPFetcher(5 * time.Second)
	extractor := NewExtractor(tokenizer, zap.NewNop())

	t.Run("success", func(t *testing.T) {
		src := NewAPISource(srv.URL+"/symbols", fetcher, extractor, zap.NewNop())
		records, err := src.Symbols(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.SymbolRecord{
			{Symbol: "BTCUSDT", Base: "BTC", Quote: "USDT"},
			{Symbol: "ETH-BTC", Base: "ETH", Quote: "BTC"},
		}, records)
		assert.Equal(t, srv.URL+"/symbols", src.Name())
	})

	t.Run("failed request yields empty", func(t *testing.T) {
		src := NewAPISource(srv.URL+"/missing", fetcher, extractor, nil)
		records, err := src.Symbols(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
