// Package sources turns the supported inputs (HTTP APIs, exchange metadata,
// JSON, text and spreadsheet files, manual entry, built-in lists) into symbol records.
package sources

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/domain"
)

var (
	// ErrNotFound is returned when an input file does not exist.
	ErrNotFound = errors.New("input not found")
	// ErrUnsupported is returned for source locations that cannot be resolved.
	ErrUnsupported = errors.New("unsupported source")
)

// Tokenizer decomposes a raw symbol.
type Tokenizer interface {
	Pair(raw string) domain.Pair
}

// Source yields symbol records.
type Source interface {
	Name() string
	Symbols(ctx context.Context) ([]domain.SymbolRecord, error)
}

// Records decomposes every raw symbol with tokenizer.
func Records(tokenizer Tokenizer, raw []string) []domain.SymbolRecord {
	records := make([]domain.SymbolRecord, 0, len(raw))
	for _, s := range raw {
		records = append(records, domain.NewSymbolRecord(s, tokenizer.Pair(s)))
	}
	return records
}

// RawSource parses symbol strings produced by a loader.
type RawSource struct {
	name      string
	load      func() ([]string, error)
	tokenizer Tokenizer
}

// NewRawSource creates a source that tokenizes the strings returned by load.
func NewRawSource(name string, tokenizer Tokenizer, load func() ([]string, error)) *RawSource {
	return &RawSource{name: name, load: load, tokenizer: tokenizer}
}

// Name returns the source name.
func (s *RawSource) Name() string { return s.name }

// Symbols loads and tokenizes the symbols.
func (s *RawSource) Symbols(_ context.Context) ([]domain.SymbolRecord, error) {
	raw, err := s.load()
	if err != nil {
		return nil, err
	}
	return Records(s.tokenizer, raw), nil
}
