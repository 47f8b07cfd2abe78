package domain

// SymbolRecord is a raw ticker together with its decomposition.
// Records are values: reconciliation builds new records instead of changing existing ones.
type SymbolRecord struct {
	Symbol string
	Base   string
	Quote  string
	// ID is an optional identifier from an external id space (e.g. a predefined list).
	ID *int
}

// NewSymbolRecord builds a record for symbol with the given decomposition.
func NewSymbolRecord(symbol string, pair Pair) SymbolRecord {
	return SymbolRecord{Symbol: symbol, Base: pair.Base, Quote: pair.Quote}
}

// WithID returns a copy of the record carrying id.
func (r SymbolRecord) WithID(id int) SymbolRecord {
	r.ID = &id
	return r
}

// WithIDFrom returns a copy of the record carrying the id of other, if other has one.
func (r SymbolRecord) WithIDFrom(other SymbolRecord) SymbolRecord {
	if other.ID == nil {
		return r
	}
	return r.WithID(*other.ID)
}

// Pair returns the stored decomposition.
func (r SymbolRecord) Pair() Pair {
	return Pair{Base: r.Base, Quote: r.Quote}
}

// SymbolList is a named collection of records from one input source.
type SymbolList struct {
	Name    string
	Symbols []SymbolRecord
}

// Len returns the number of records in the list.
func (l SymbolList) Len() int {
	return len(l.Symbols)
}

// Raw returns the raw symbol strings in list order.
func (l SymbolList) Raw() []string {
	raw := make([]string, 0, len(l.Symbols))
	for _, s := range l.Symbols {
		raw = append(raw, s.Symbol)
	}
	return raw
}
