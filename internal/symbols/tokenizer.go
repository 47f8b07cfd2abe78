// Package symbols splits raw tickers into base and quote currency codes and
// builds the normalized keys used to compare tickers across lists.
package symbols

import (
	"strings"

	"github.com/vadiminshakov/symbex/internal/domain"
)

// perpetualSuffix marks perpetual contracts, e.g. "BTCUSDT/P".
const perpetualSuffix = "/P"

// separators are tried in this order; the first one present in the symbol wins.
var separators = []string{"-", "/", "_", ":"}

// fallbackQuotes are tried after the vocabulary, in this order.
var fallbackQuotes = []string{"USDT", "BTC", "ETH", "USD", "BUSD"}

const minFallbackBase = 2

// Vocabulary is the currency set consulted and grown by Parse.
type Vocabulary interface {
	// Codes returns the known codes, longest first.
	Codes() []string
	// Learn inserts code and reports whether it was new.
	Learn(code string) bool
}

// Result is the outcome of parsing one ticker.
type Result struct {
	Base  string
	Quote string
	// Learned lists the codes this call added to the vocabulary, in insertion order.
	Learned []string
}

// Pair returns the decomposition.
func (r Result) Pair() domain.Pair {
	return domain.Pair{Base: r.Base, Quote: r.Quote}
}

// Parse decomposes raw into base and quote using v. Codes inferred along the
// way are learned into v, so results depend on what earlier calls taught it.
//
// Rules, first match wins:
//  1. a trailing "/P" is dropped;
//  2. the first separator present ('-', '/', '_', ':' in that order) splits the
//     symbol at its first occurrence when both sides are non-empty; both sides are learned;
//  3. the longest vocabulary code that is a proper suffix becomes the quote; the base is learned;
//  4. the same with fallbackQuotes, requiring a base of at least two characters;
//  5. otherwise the symbol is returned as base with an empty quote.
func Parse(v Vocabulary, raw string) Result {
	symbol := trimPerpetual(raw)
	res := Result{}

	learn := func(code string) {
		if v.Learn(code) {
			res.Learned = append(res.Learned, strings.ToUpper(strings.TrimSpace(code)))
		}
	}

	for _, sep := range separators {
		idx := strings.Index(symbol, sep)
		if idx < 0 {
			continue
		}
		base, quote := symbol[:idx], symbol[idx+len(sep):]
		if base == "" || quote == "" {
			continue
		}
		learn(base)
		learn(quote)
		res.Base, res.Quote = base, quote
		return res
	}

	for _, quote := range v.Codes() {
		if base, ok := cutSuffixFold(symbol, quote); ok {
			learn(base)
			res.Base, res.Quote = base, quote
			return res
		}
	}

	for _, quote := range fallbackQuotes {
		if base, ok := cutSuffixFold(symbol, quote); ok && len(base) >= minFallbackBase {
			learn(base)
			res.Base, res.Quote = base, quote
			return res
		}
	}

	res.Base = symbol
	return res
}

// Parser binds a vocabulary to Parse.
type Parser struct {
	vocab Vocabulary
}

// NewParser creates a parser over v.
func NewParser(v Vocabulary) *Parser {
	return &Parser{vocab: v}
}

// Parse decomposes raw, see the package level Parse.
func (p *Parser) Parse(raw string) Result {
	return Parse(p.vocab, raw)
}

// Pair decomposes raw and drops the learned codes.
func (p *Parser) Pair(raw string) domain.Pair {
	return p.Parse(raw).Pair()
}

// Record decomposes raw into a symbol record.
func (p *Parser) Record(raw string) domain.SymbolRecord {
	return domain.NewSymbolRecord(raw, p.Pair(raw))
}

// cutSuffixFold removes a case-insensitive suffix, requiring a non-empty remainder.
func cutSuffixFold(s, suffix string) (string, bool) {
	if suffix == "" || len(s) <= len(suffix) {
		return "", false
	}
	cut := len(s) - len(suffix)
	if !strings.EqualFold(s[cut:], suffix) {
		return "", false
	}
	return s[:cut], true
}

func trimPerpetual(s string) string {
	if len(s) >= len(perpetualSuffix) && strings.EqualFold(s[len(s)-len(perpetualSuffix):], perpetualSuffix) {
		return s[:len(s)-len(perpetualSuffix)]
	}
	return s
}
