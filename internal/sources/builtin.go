package sources

import (
	"context"

	"github.com/vadiminshakov/symbex/internal/domain"
)

// BuiltinKTR is the source location of the predefined KTR list.
const BuiltinKTR = "ktr"

// KTRSource yields the predefined KTR symbols with their ids.
type KTRSource struct {
	tokenizer Tokenizer
}

// NewKTRSource creates the built-in list source.
func NewKTRSource(tokenizer Tokenizer) *KTRSource {
	return &KTRSource{tokenizer: tokenizer}
}

// Name returns the list name.
func (s *KTRSource) Name() string { return domain.KTRListName }

// Symbols tokenizes every predefined symbol and attaches its id.
func (s *KTRSource) Symbols(_ context.Context) ([]domain.SymbolRecord, error) {
	records := make([]domain.SymbolRecord, 0, len(domain.KTRSymbols))
	for _, p := range domain.KTRSymbols {
		records = append(records, domain.NewSymbolRecord(p.Symbol, s.tokenizer.Pair(p.Symbol)).WithID(p.ID))
	}
	return records, nil
}
