package sources

import (
	"context"
	"strings"

	"github.com/adshao/go-binance/v2"
	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/domain"
)

// Exchange names accepted as source locations.
const (
	ExchangeBinance = "binance"
	ExchangeBybit   = "bybit"
)

// BinanceSource lists spot symbols from Binance exchangeInfo.
type BinanceSource struct {
	client *binance.Client
}

// NewBinanceSource creates a Binance source. Metadata endpoints need no credentials.
func NewBinanceSource(client *binance.Client) *BinanceSource {
	if client == nil {
		client = binance.NewClient("", "")
	}
	return &BinanceSource{client: client}
}

// Name returns the exchange name.
func (s *BinanceSource) Name() string { return ExchangeBinance }

// Symbols returns every listed symbol with its base and quote assets.
func (s *BinanceSource) Symbols(ctx context.Context) ([]domain.SymbolRecord, error) {
	info, err := s.client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch exchange info from Binance")
	}

	records := make([]domain.SymbolRecord, 0, len(info.Symbols))
	for _, sym := range info.Symbols {
		if strings.TrimSpace(sym.Symbol) == "" {
			continue
		}
		records = append(records, domain.NewSymbolRecord(sym.Symbol, domain.Pair{Base: sym.BaseAsset, Quote: sym.QuoteAsset}))
	}

	return records, nil
}

// BybitSource lists V5 spot instruments from Bybit.
type BybitSource struct {
	client *bybit.Client
}

// NewBybitSource creates a Bybit source.
func NewBybitSource(client *bybit.Client) *BybitSource {
	if client == nil {
		client = bybit.NewClient()
	}
	return &BybitSource{client: client}
}

// Name returns the exchange name.
func (s *BybitSource) Name() string { return ExchangeBybit }

// Symbols returns every spot instrument with its base and quote coins.
func (s *BybitSource) Symbols(_ context.Context) ([]domain.SymbolRecord, error) {
	res, err := s.client.V5().Market().GetInstrumentsInfo(bybit.V5GetInstrumentsInfoParam{
		Category: bybit.CategoryV5Spot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch instruments from Bybit")
	}

	if res == nil || res.Result.Spot == nil {
		return nil, errors.New("empty instruments result from Bybit")
	}

	records := make([]domain.SymbolRecord, 0, len(res.Result.Spot.List))
	for _, item := range res.Result.Spot.List {
		symbol := string(item.Symbol)
		if strings.TrimSpace(symbol) == "" {
			continue
		}
		records = append(records, domain.NewSymbolRecord(symbol, domain.Pair{Base: string(item.BaseCoin), Quote: string(item.QuoteCoin)}))
	}

	return records, nil
}
