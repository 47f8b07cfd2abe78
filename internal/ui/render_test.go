package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/reconcile"
	"github.com/vadiminshakov/symbex/internal/stats"
	"github.com/vadiminshakov/symbex/internal/validation"
)

func TestQuoteStats_TopTen(t *testing.T) {
	counts := make([]stats.QuoteCount, 0, 12)
	for i := 0; i < 12; i++ {
		counts = append(counts, stats.QuoteCount{Quote: fmt.Sprintf("Q%02d", i), Count: 12 - i, Share: decimal.NewFromInt(1)})
	}

	out := QuoteStats(counts)
	assert.Contains(t, out, "Q09")
	assert.NotContains(t, out, "Q10")
	assert.Contains(t, out, "1.00")
}

func TestResults_None(t *testing.T) {
	assert.Contains(t, Results("Missing", nil), "NONE")
	assert.Contains(t, Results("Missing", []string{"BTCUSDT"}), "BTCUSDT")
}

func TestComparisonSummary(t *testing.T) {
	out := ComparisonSummary(reconcile.PairwiseDiff{
		Common:  []domain.SymbolRecord{{Symbol: "A"}, {Symbol: "B"}},
		OnlyInA: []domain.SymbolRecord{{Symbol: "C"}},
	})
	assert.Contains(t, out, "Only in API")
	assert.Contains(t, out, "2")
}

func TestValidationDetails_Truncates(t *testing.T) {
	errs := make([]domain.ParseError, 0, 13)
	for i := 0; i < 13; i++ {
		errs = append(errs, domain.ParseError{Symbol: fmt.Sprintf("S%02d", i), ListName: "L", Reason: domain.ReasonUnparsedQuote})
	}

	out := ValidationDetails(validation.Report{ParseErrors: errs})
	assert.Contains(t, out, "S09")
	assert.NotContains(t, out, "S10")
	assert.Contains(t, out, "... and 3 more errors")
	assert.NotContains(t, out, "Duplicate Symbols")
}

func TestValidationSummary(t *testing.T) {
	out := ValidationSummary(validation.Report{Duplicates: []domain.DuplicateSymbol{{NormalizedSymbol: "BTCUSDT"}}})
	assert.Contains(t, out, warnMark)
	assert.Contains(t, out, okMark)
	assert.Equal(t, 3, strings.Count(out, "Parse Errors")+strings.Count(out, "Duplicate Symbols")+strings.Count(out, "Parse Inconsistencies"))
}

func TestMultiListSummary(t *testing.T) {
	lists := []domain.SymbolList{{Name: "A", Symbols: []domain.SymbolRecord{{Symbol: "X"}}}, {Name: "B"}}
	out := MultiListSummary(lists, nil)
	assert.Contains(t, out, failMark)
	assert.Contains(t, out, "No common symbols found across all lists.")
}
