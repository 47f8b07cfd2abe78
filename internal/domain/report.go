package domain

const (
	// ReasonUnparsedQuote is reported when the tokenizer could not find a quote currency.
	ReasonUnparsedQuote = "Could not parse quote currency"
	// ReasonMismatch is reported when the re-derived pair differs from the stored one.
	ReasonMismatch = "Parsed values don't match stored values"
)

// ParseError describes a symbol whose stored decomposition could not be confirmed.
type ParseError struct {
	Symbol      string
	ListName    string
	Reason      string
	StoredBase  string
	StoredQuote string
	ParsedBase  string
	ParsedQuote string
}

// SymbolOccurrence is one appearance of a symbol in a named list.
type SymbolOccurrence struct {
	Symbol   string
	Base     string
	Quote    string
	ListName string
}

// DuplicateSymbol groups every occurrence of one normalized symbol across lists.
type DuplicateSymbol struct {
	NormalizedSymbol string
	Occurrences      []SymbolOccurrence
}

// ListNames returns the distinct list names in first-seen order.
func (d DuplicateSymbol) ListNames() []string {
	names := make([]string, 0, len(d.Occurrences))
	for _, o := range d.Occurrences {
		names = appendUnique(names, o.ListName)
	}
	return names
}

// ParseAttempt is one re-derivation of a stored symbol.
type ParseAttempt struct {
	Symbol      string
	StoredBase  string
	StoredQuote string
	ParsedBase  string
	ParsedQuote string
	ListName    string
}

// Parsed returns the re-derived pair.
func (a ParseAttempt) Parsed() Pair {
	return Pair{Base: a.ParsedBase, Quote: a.ParsedQuote}
}

// ParseInconsistency groups parse attempts of one normalized symbol that disagree.
type ParseInconsistency struct {
	NormalizedSymbol string
	Attempts         []ParseAttempt
}

// ListNames returns the distinct list names in first-seen order.
func (p ParseInconsistency) ListNames() []string {
	names := make([]string, 0, len(p.Attempts))
	for _, a := range p.Attempts {
		names = appendUnique(names, a.ListName)
	}
	return names
}

// DistinctParses returns the distinct re-derived pairs in first-seen order.
func (p ParseInconsistency) DistinctParses() []string {
	parses := make([]string, 0, len(p.Attempts))
	for _, a := range p.Attempts {
		parses = appendUnique(parses, a.Parsed().String())
	}
	return parses
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
