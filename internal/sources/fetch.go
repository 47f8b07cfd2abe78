package sources

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/domain"
	"go.uber.org/zap"
)

// HTTPFetcher performs a single GET per call. There is no retry.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher; zero timeout means none.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the response body of url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("failed to fetch %s: status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response from %s", url)
	}

	return body, nil
}

// APISource fetches a JSON payload over HTTP and extracts its symbols.
type APISource struct {
	url       string
	fetcher   *HTTPFetcher
	extractor *Extractor
	logger    *zap.Logger
}

// NewAPISource creates an HTTP source for url.
func NewAPISource(url string, fetcher *HTTPFetcher, extractor *Extractor, logger *zap.Logger) *APISource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APISource{url: url, fetcher: fetcher, extractor: extractor, logger: logger}
}

// Name returns the source url.
func (s *APISource) Name() string { return s.url }

// Symbols fetches and extracts. A failed fetch is logged and yields no symbols.
func (s *APISource) Symbols(ctx context.Context) ([]domain.SymbolRecord, error) {
	body, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		s.logger.Error("API request failed", zap.String("url", s.url), zap.Error(err))
		return []domain.SymbolRecord{}, nil
	}

	return s.extractor.Extract(body), nil
}
