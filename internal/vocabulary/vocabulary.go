// Package vocabulary keeps the set of known currency codes used to split
// tickers that carry no separator.
package vocabulary

import (
	"sort"
	"strings"
)

// DefaultCodes seed a vocabulary when nothing has been persisted yet.
var DefaultCodes = []string{"USDT", "BTC", "ETH", "USD"}

// Vocabulary is an ordered set of uppercase currency codes.
//
// Codes are unique under case-insensitive comparison and always ordered from
// longest to shortest; codes of equal length keep their insertion order. The
// order is the tie-break for overlapping suffixes: USDT is tried before USD.
//
// A Vocabulary is not safe for concurrent use.
type Vocabulary struct {
	codes []string
}

// New builds a vocabulary from codes, dropping blanks and case-insensitive duplicates.
func New(codes ...string) *Vocabulary {
	v := &Vocabulary{codes: make([]string, 0, len(codes))}
	for _, c := range codes {
		c = canonical(c)
		if c == "" || v.index(c) >= 0 {
			continue
		}
		v.codes = append(v.codes, c)
	}
	v.sort()
	return v
}

// Default builds a vocabulary seeded with DefaultCodes.
func Default() *Vocabulary {
	return New(DefaultCodes...)
}

// Codes returns a copy of the codes in matching order.
func (v *Vocabulary) Codes() []string {
	out := make([]string, len(v.codes))
	copy(out, v.codes)
	return out
}

// Len returns the number of codes.
func (v *Vocabulary) Len() int {
	return len(v.codes)
}

// Contains reports whether code is known, ignoring case.
func (v *Vocabulary) Contains(code string) bool {
	return v.index(canonical(code)) >= 0
}

// Add inserts code and reports whether it was new.
// Blank codes and codes already present under any case are ignored.
func (v *Vocabulary) Add(code string) bool {
	code = canonical(code)
	if code == "" || v.index(code) >= 0 {
		return false
	}
	v.codes = append(v.codes, code)
	v.sort()
	return true
}

// Learn is Add under the name the tokenizer uses.
func (v *Vocabulary) Learn(code string) bool {
	return v.Add(code)
}

// Remove deletes code, matched case-insensitively, and reports whether it existed.
func (v *Vocabulary) Remove(code string) bool {
	i := v.index(canonical(code))
	if i < 0 {
		return false
	}
	v.codes = append(v.codes[:i], v.codes[i+1:]...)
	v.sort()
	return true
}

func (v *Vocabulary) index(code string) int {
	if code == "" {
		return -1
	}
	for i, c := range v.codes {
		if strings.EqualFold(c, code) {
			return i
		}
	}
	return -1
}

func (v *Vocabulary) sort() {
	sort.SliceStable(v.codes, func(i, j int) bool {
		return len(v.codes[i]) > len(v.codes[j])
	})
}

func canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
