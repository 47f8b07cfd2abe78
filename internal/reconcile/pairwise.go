package reconcile

import (
	"sort"

	"github.com/vadiminshakov/symbex/internal/domain"
)

// PairwiseDiff is the result of comparing two symbol collections.
// Each slice follows the first-seen order of its source side.
type PairwiseDiff struct {
	// Common holds one record per symbol present on both sides: symbol, base and
	// quote come from side A, the external id from side B when it has one.
	Common  []domain.SymbolRecord
	OnlyInA []domain.SymbolRecord
	OnlyInB []domain.SymbolRecord
}

// Empty reports whether the diff holds no records at all.
func (d PairwiseDiff) Empty() bool {
	return len(d.Common) == 0 && len(d.OnlyInA) == 0 && len(d.OnlyInB) == 0
}

// Diff compares a and b by normalized symbol. Within one side, a later record
// with the same normalized symbol replaces the earlier one.
func Diff(a, b []domain.SymbolRecord) PairwiseDiff {
	left, right := newIndex(a), newIndex(b)

	diff := PairwiseDiff{
		Common:  make([]domain.SymbolRecord, 0),
		OnlyInA: make([]domain.SymbolRecord, 0),
		OnlyInB: make([]domain.SymbolRecord, 0),
	}

	for _, key := range left.keys {
		rec := left.get(key)
		if !right.has(key) {
			diff.OnlyInA = append(diff.OnlyInA, rec)
			continue
		}
		diff.Common = append(diff.Common, rec.WithIDFrom(right.get(key)))
	}

	for _, key := range right.keys {
		if !left.has(key) {
			diff.OnlyInB = append(diff.OnlyInB, right.get(key))
		}
	}

	return diff
}

// DiffRaw compares two lists of raw symbol strings and returns the normalized
// symbols missing from b and missing from a, sorted.
func DiffRaw(a, b []string) (missingInB, missingInA []string) {
	left, right := newRawIndex(a), newRawIndex(b)

	missingInB = make([]string, 0)
	for _, key := range left.keys {
		if !right.has(key) {
			missingInB = append(missingInB, key)
		}
	}

	missingInA = make([]string, 0)
	for _, key := range right.keys {
		if !left.has(key) {
			missingInA = append(missingInA, key)
		}
	}

	sort.Strings(missingInB)
	sort.Strings(missingInA)

	return missingInB, missingInA
}
