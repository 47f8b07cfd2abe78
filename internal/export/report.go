package export

import (
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/reconcile"
	"github.com/vadiminshakov/symbex/internal/validation"
)

// Sheet names of the comparison and multi-list reports.
const (
	SheetSymbols      = "Symbols"
	SheetCommon       = "Common Symbols"
	SheetOnlyInAPI    = "Only In API"
	SheetOnlyInUser   = "Only In User List"
	SheetParseErrors  = "Parse Errors"
	SheetDuplicates   = "Duplicate Symbols"
	SheetInconsistent = "Parse Inconsistencies"
	uniqueSuffix      = " - Unique"
)

// WriteSymbols writes records to a single "Symbols" sheet.
func WriteSymbols(path string, records []domain.SymbolRecord) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}
	if _, err := w.addSheet(SheetSymbols, symbolHeader, symbolRows(records)); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.save(path)
}

// WriteComparison writes one sheet per non-empty category of diff.
// It returns ErrNothingToWrite when all categories are empty.
func WriteComparison(path string, diff reconcile.PairwiseDiff) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}

	categories := []struct {
		name    string
		records []domain.SymbolRecord
	}{
		{SheetCommon, diff.Common},
		{SheetOnlyInAPI, diff.OnlyInA},
		{SheetOnlyInUser, diff.OnlyInB},
	}
	for _, c := range categories {
		if len(c.records) == 0 {
			continue
		}
		if _, err := w.addSheet(c.name, symbolHeader, symbolRows(c.records)); err != nil {
			_ = w.file.Close()
			return err
		}
	}

	return w.save(path)
}

// WriteMultiList writes every input list, the common symbols and a
// "<list> - Unique" sheet for each list with unique symbols.
func WriteMultiList(path string, lists []domain.SymbolList, common []domain.SymbolRecord, unique map[string][]domain.SymbolRecord) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}

	fail := func(err error) error {
		_ = w.file.Close()
		return err
	}

	for _, l := range lists {
		if _, err := w.addSheet(l.Name, symbolHeader, symbolRows(l.Symbols)); err != nil {
			return fail(err)
		}
	}
	if _, err := w.addSheet(SheetCommon, symbolHeader, symbolRows(common)); err != nil {
		return fail(err)
	}

	written := make(map[string]struct{}, len(lists))
	for _, l := range lists {
		if _, ok := written[l.Name]; ok {
			continue
		}
		written[l.Name] = struct{}{}
		records := unique[l.Name]
		if len(records) == 0 {
			continue
		}
		if _, err := w.addSheet(l.Name+uniqueSuffix, symbolHeader, symbolRows(records)); err != nil {
			return fail(err)
		}
	}

	return w.save(path)
}

var (
	parseErrorHeader    = []any{"Symbol", "ListName", "ErrorMessage", "StoredBase", "StoredQuote", "ParsedBase", "ParsedQuote"}
	duplicateHeader     = []any{"NormalizedSymbol", "OriginalSymbol", "Base", "Quote", "ListName"}
	inconsistencyHeader = []any{"NormalizedSymbol", "OriginalSymbol", "StoredBase", "StoredQuote", "ParsedBase", "ParsedQuote", "ListName"}
)

// WriteValidation writes the three validation sheets, header only when a
// category is empty.
func WriteValidation(path string, report validation.Report) error {
	w, err := newWorkbook()
	if err != nil {
		return err
	}

	errs := make([][]any, 0, len(report.ParseErrors))
	for _, e := range report.ParseErrors {
		errs = append(errs, []any{e.Symbol, e.ListName, e.Reason, e.StoredBase, e.StoredQuote, e.ParsedBase, e.ParsedQuote})
	}

	dups := make([][]any, 0, len(report.Duplicates))
	for _, d := range report.Duplicates {
		for _, o := range d.Occurrences {
			dups = append(dups, []any{d.NormalizedSymbol, o.Symbol, o.Base, o.Quote, o.ListName})
		}
	}

	incons := make([][]any, 0, len(report.Inconsistencies))
	for _, in := range report.Inconsistencies {
		for _, a := range in.Attempts {
			incons = append(incons, []any{in.NormalizedSymbol, a.Symbol, a.StoredBase, a.StoredQuote, a.ParsedBase, a.ParsedQuote, a.ListName})
		}
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetParseErrors, parseErrorHeader, errs},
		{SheetDuplicates, duplicateHeader, dups},
		{SheetInconsistent, inconsistencyHeader, incons},
	}
	for _, s := range sheets {
		if _, err := w.addSheet(s.name, s.header, s.rows); err != nil {
			_ = w.file.Close()
			return err
		}
	}

	return w.save(path)
}
