// Package reconcile compares symbol collections by normalized symbol.
package reconcile

import (
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/symbols"
)

// index maps normalized keys to records. A later record with the same key
// replaces the earlier one but keeps the key's first position.
type index struct {
	keys    []string
	records map[string]domain.SymbolRecord
}

func newIndex(records []domain.SymbolRecord) *index {
	idx := &index{
		keys:    make([]string, 0, len(records)),
		records: make(map[string]domain.SymbolRecord, len(records)),
	}
	for _, r := range records {
		idx.put(symbols.Normalize(r.Symbol), r)
	}
	return idx
}

func newRawIndex(raw []string) *index {
	idx := &index{
		keys:    make([]string, 0, len(raw)),
		records: make(map[string]domain.SymbolRecord, len(raw)),
	}
	for _, s := range raw {
		idx.put(symbols.Normalize(s), domain.SymbolRecord{Symbol: s})
	}
	return idx
}

func (idx *index) put(key string, r domain.SymbolRecord) {
	if _, ok := idx.records[key]; !ok {
		idx.keys = append(idx.keys, key)
	}
	idx.records[key] = r
}

func (idx *index) has(key string) bool {
	_, ok := idx.records[key]
	return ok
}

func (idx *index) get(key string) domain.SymbolRecord {
	return idx.records[key]
}
