// Package validation cross-checks stored symbol decompositions against the
// tokenizer and finds symbols shared by several lists.
package validation

import (
	"sort"

	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/symbols"
)

// Tokenizer re-derives the pair of a raw symbol.
type Tokenizer interface {
	Pair(raw string) domain.Pair
}

// Report bundles the three checks of one validation run.
type Report struct {
	ParseErrors     []domain.ParseError
	Duplicates      []domain.DuplicateSymbol
	Inconsistencies []domain.ParseInconsistency
}

// Clean reports whether no check found anything.
func (r Report) Clean() bool {
	return len(r.ParseErrors) == 0 && len(r.Duplicates) == 0 && len(r.Inconsistencies) == 0
}

// Validator runs consistency checks over symbol lists.
//
// Each check re-derives pairs on its own. Because the tokenizer may learn
// codes while doing so, checks run one after another can observe different
// vocabulary states.
type Validator struct {
	tokenizer Tokenizer
}

// New creates a validator over tokenizer.
func New(tokenizer Tokenizer) *Validator {
	return &Validator{tokenizer: tokenizer}
}

// Run executes ParseErrors, Duplicates and Inconsistencies in that order.
func (v *Validator) Run(lists []domain.SymbolList) Report {
	return Report{
		ParseErrors:     v.ParseErrors(lists),
		Duplicates:      v.Duplicates(lists),
		Inconsistencies: v.Inconsistencies(lists),
	}
}

// ParseErrors reports every symbol whose re-derived quote is empty or whose
// re-derived pair differs from the stored one, ignoring case.
func (v *Validator) ParseErrors(lists []domain.SymbolList) []domain.ParseError {
	errs := make([]domain.ParseError, 0)

	for _, l := range lists {
		for _, s := range l.Symbols {
			parsed := v.tokenizer.Pair(s.Symbol)

			var reason string
			switch {
			case !parsed.Parsed():
				reason = domain.ReasonUnparsedQuote
			case !parsed.EqualFold(s.Pair()):
				reason = domain.ReasonMismatch
			default:
				continue
			}

			errs = append(errs, domain.ParseError{
				Symbol:      s.Symbol,
				ListName:    l.Name,
				Reason:      reason,
				StoredBase:  s.Base,
				StoredQuote: s.Quote,
				ParsedBase:  parsed.Base,
				ParsedQuote: parsed.Quote,
			})
		}
	}

	return errs
}

// Duplicates groups all symbols by normalized form and reports every group
// with two or more occurrences, largest first.
func (v *Validator) Duplicates(lists []domain.SymbolList) []domain.DuplicateSymbol {
	groups := newGroups[domain.SymbolOccurrence]()

	for _, l := range lists {
		for _, s := range l.Symbols {
			groups.add(symbols.Normalize(s.Symbol), domain.SymbolOccurrence{
				Symbol:   s.Symbol,
				Base:     s.Base,
				Quote:    s.Quote,
				ListName: l.Name,
			})
		}
	}

	dups := make([]domain.DuplicateSymbol, 0)
	for _, key := range groups.keys {
		occurrences := groups.items[key]
		if len(occurrences) < 2 {
			continue
		}
		dups = append(dups, domain.DuplicateSymbol{NormalizedSymbol: key, Occurrences: occurrences})
	}

	sort.SliceStable(dups, func(i, j int) bool {
		return len(dups[i].Occurrences) > len(dups[j].Occurrences)
	})

	return dups
}

// Inconsistencies groups all symbols by normalized form, re-derives each
// occurrence and reports the groups whose derived pairs are not all equal,
// ignoring case. Largest groups come first.
func (v *Validator) Inconsistencies(lists []domain.SymbolList) []domain.ParseInconsistency {
	groups := newGroups[domain.ParseAttempt]()

	for _, l := range lists {
		for _, s := range l.Symbols {
			parsed := v.tokenizer.Pair(s.Symbol)
			groups.add(symbols.Normalize(s.Symbol), domain.ParseAttempt{
				Symbol:      s.Symbol,
				StoredBase:  s.Base,
				StoredQuote: s.Quote,
				ParsedBase:  parsed.Base,
				ParsedQuote: parsed.Quote,
				ListName:    l.Name,
			})
		}
	}

	found := make([]domain.ParseInconsistency, 0)
	for _, key := range groups.keys {
		attempts := groups.items[key]
		if len(attempts) < 2 || uniform(attempts) {
			continue
		}
		found = append(found, domain.ParseInconsistency{NormalizedSymbol: key, Attempts: attempts})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i].Attempts) > len(found[j].Attempts)
	})

	return found
}

func uniform(attempts []domain.ParseAttempt) bool {
	first := attempts[0]
	for _, a := range attempts[1:] {
		if !a.Parsed().EqualFold(first.Parsed()) {
			return false
		}
	}
	return true
}

// groups collects items per key, keeping keys in first-seen order.
type groups[T any] struct {
	keys  []string
	items map[string][]T
}

func newGroups[T any]() *groups[T] {
	return &groups[T]{items: make(map[string][]T)}
}

func (g *groups[T]) add(key string, item T) {
	if _, ok := g.items[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.items[key] = append(g.items[key], item)
}
