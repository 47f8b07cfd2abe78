package sources

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Resolver maps source locations to sources.
//
//	http(s)://...   JSON API
//	binance, bybit  exchange metadata
//	ktr             built-in list
//	*.json          JSON file
//	*.xlsx          spreadsheet
//	anything else   text file
type Resolver struct {
	tokenizer Tokenizer
	extractor *Extractor
	fetcher   *HTTPFetcher
	logger    *zap.Logger

	binanceClient *binance.Client
	bybitClient   *bybit.Client
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithBinanceClient overrides the Binance client.
func WithBinanceClient(c *binance.Client) ResolverOption {
	return func(r *Resolver) { r.binanceClient = c }
}

// WithBybitClient overrides the Bybit client.
func WithBybitClient(c *bybit.Client) ResolverOption {
	return func(r *Resolver) { r.bybitClient = c }
}

// NewResolver creates a resolver.
func NewResolver(tokenizer Tokenizer, timeout time.Duration, logger *zap.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		tokenizer: tokenizer,
		extractor: NewExtractor(tokenizer, logger),
		fetcher:   NewHTTPFetcher(timeout),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extractor returns the JSON extractor used by resolved sources.
func (r *Resolver) Extractor() *Extractor { return r.extractor }

// Resolve returns the source for location.
func (r *Resolver) Resolve(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.Wrap(ErrUnsupported, "empty source")
	}

	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewAPISource(location, r.fetcher, r.extractor, r.logger), nil
	case lower == ExchangeBinance:
		return NewBinanceSource(r.binanceClient), nil
	case lower == ExchangeBybit:
		return NewBybitSource(r.bybitClient), nil
	case lower == BuiltinKTR:
		return NewKTRSource(r.tokenizer), nil
	}

	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return NewJSONFileSource(location, r.extractor), nil
	case ".xlsx":
		return NewRawSource(location, r.tokenizer, func() ([]string, error) { return ReadSpreadsheet(location) }), nil
	default:
		return NewRawSource(location, r.tokenizer, func() ([]string, error) { return ReadText(location) }), nil
	}
}
