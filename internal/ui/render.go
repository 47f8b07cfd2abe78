package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/reconcile"
	"github.com/vadiminshakov/symbex/internal/stats"
	"github.com/vadiminshakov/symbex/internal/storage/journal"
	"github.com/vadiminshakov/symbex/internal/validation"
)

const (
	okMark   = "✓"
	failMark = "✗"
	warnMark = "⚠"
)

// QuoteStats renders the most frequent quote currencies.
func QuoteStats(counts []stats.QuoteCount) string {
	t := newTable("Quote Currency", "Symbol Count", "Share %")
	for _, c := range stats.Top(counts, detailLimit) {
		t.Row(c.Quote, strconv.Itoa(c.Count), c.Share.StringFixed(2))
	}
	return titled(fmt.Sprintf("Top %d Quote Currencies", detailLimit), t)
}

// Results renders a one-column list of symbols, or NONE.
func Results(title string, symbols []string) string {
	t := newTable("Symbol")
	if len(symbols) == 0 {
		t.Row("NONE")
	}
	for _, s := range symbols {
		t.Row(s)
	}
	return titled(title, t)
}

// ComparisonSummary renders the category counts of a comparison.
func ComparisonSummary(diff reconcile.PairwiseDiff) string {
	t := newTable("Category", "Count")
	t.Row("Common", strconv.Itoa(len(diff.Common)))
	t.Row("Only in API", strconv.Itoa(len(diff.OnlyInA)))
	t.Row("Only in your list", strconv.Itoa(len(diff.OnlyInB)))
	return titled("Comparison Summary", t)
}

// MultiListSummary renders list sizes and the common symbol count.
func MultiListSummary(lists []domain.SymbolList, common []domain.SymbolRecord) string {
	t := newTable("List Name", "Symbol Count", "Status")
	for _, l := range lists {
		status := okMark
		if l.Len() == 0 {
			status = failMark
		}
		t.Row(l.Name, strconv.Itoa(l.Len()), status)
	}

	var b strings.Builder
	b.WriteString(titled("Multi-List Comparison Summary", t))
	if len(common) > 0 {
		b.WriteString(Message(fmt.Sprintf("Common symbols found: %d", len(common)), false))
	} else {
		b.WriteString(Message("No common symbols found across all lists.", true))
	}
	b.WriteString("\n")
	return b.String()
}

// ValidationSummary renders issue counts per category.
func ValidationSummary(report validation.Report) string {
	t := newTable("Issue Type", "Count", "Status")
	rows := []struct {
		name  string
		count int
	}{
		{"Parse Errors", len(report.ParseErrors)},
		{"Duplicate Symbols", len(report.Duplicates)},
		{"Parse Inconsistencies", len(report.Inconsistencies)},
	}
	for _, r := range rows {
		status := okMark
		if r.count > 0 {
			status = warnMark
		}
		t.Row(r.name, strconv.Itoa(r.count), status)
	}
	return titled("Validation Summary", t)
}

// ValidationDetails renders the first entries of every non-empty category.
func ValidationDetails(report validation.Report) string {
	var b strings.Builder
	b.WriteString(ParseErrors(report.ParseErrors))
	b.WriteString(Duplicates(report.Duplicates))
	b.WriteString(Inconsistencies(report.Inconsistencies))
	return b.String()
}

// ParseErrors renders up to ten parse errors.
func ParseErrors(errs []domain.ParseError) string {
	if len(errs) == 0 {
		return ""
	}

	t := newTable("Symbol", "List", "Error", "Stored Base/Quote", "Parsed Base/Quote")
	for _, e := range errs[:min(len(errs), detailLimit)] {
		t.Row(e.Symbol, e.ListName, e.Reason, e.StoredBase+"/"+e.StoredQuote, e.ParsedBase+"/"+e.ParsedQuote)
	}
	return titled("Parse Errors", t) + more(len(errs), "errors")
}

// Duplicates renders up to ten duplicate symbols.
func Duplicates(dups []domain.DuplicateSymbol) string {
	if len(dups) == 0 {
		return ""
	}

	t := newTable("Normalized Symbol", "Occurrences", "Lists")
	for _, d := range dups[:min(len(dups), detailLimit)] {
		t.Row(d.NormalizedSymbol, strconv.Itoa(len(d.Occurrences)), strings.Join(d.ListNames(), ", "))
	}
	return titled("Duplicate Symbols", t) + more(len(dups), "duplicates")
}

// Inconsistencies renders up to ten inconsistent parses.
func Inconsistencies(incons []domain.ParseInconsistency) string {
	if len(incons) == 0 {
		return ""
	}

	t := newTable("Normalized Symbol", "Parses", "Lists")
	for _, in := range incons[:min(len(incons), detailLimit)] {
		t.Row(in.NormalizedSymbol, strings.Join(in.DistinctParses(), ", "), strings.Join(in.ListNames(), ", "))
	}
	return titled("Parse Inconsistencies", t) + more(len(incons), "inconsistencies")
}

// Currencies renders known currency codes.
func Currencies(codes []string) string {
	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)

	t := newTable("Currency")
	for _, c := range sorted {
		t.Row(c)
	}
	return titled("Known Currencies", t)
}

// History renders journaled vocabulary changes.
func History(entries []journal.Entry) string {
	t := newTable("Time", "Operation", "Currency", "Run")
	if len(entries) == 0 {
		t.Row("-", "-", "NONE", "-")
	}
	for _, e := range entries {
		t.Row(e.At.Format("2006-01-02 15:04:05"), e.Op, e.Code, e.Run)
	}
	return titled("Vocabulary History", t)
}

func more(total int, noun string) string {
	if total <= detailLimit {
		return ""
	}
	return mutedStyle.Render(fmt.Sprintf("... and %d more %s (see the Excel report for details)", total-detailLimit, noun)) + "\n"
}
