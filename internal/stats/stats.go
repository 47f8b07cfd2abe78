// Package stats summarizes symbol collections.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/symbex/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// QuoteCount is the number of symbols quoted in one currency.
type QuoteCount struct {
	Quote string
	Count int
	// Share is the percentage of parsed symbols using this quote, rounded to 2 places.
	Share decimal.Decimal
}

// QuoteCounts counts records per quote currency. Records without a quote are
// skipped. The result is ordered by count, then by quote.
func QuoteCounts(records []domain.SymbolRecord) []QuoteCount {
	counts := make(map[string]int)
	total := 0
	for _, r := range records {
		if r.Quote == "" {
			continue
		}
		counts[r.Quote]++
		total++
	}

	out := make([]QuoteCount, 0, len(counts))
	for quote, n := range counts {
		share := decimal.NewFromInt(int64(n)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
		out = append(out, QuoteCount{Quote: quote, Count: n, Share: share})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Quote < out[j].Quote
	})

	return out
}

// Top returns at most n leading entries.
func Top(counts []QuoteCount, n int) []QuoteCount {
	if n < 0 || len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// Unparsed counts records without a quote currency.
func Unparsed(records []domain.SymbolRecord) int {
	n := 0
	for _, r := range records {
		if r.Quote == "" {
			n++
		}
	}
	return n
}
