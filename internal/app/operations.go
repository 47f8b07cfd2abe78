package app

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/export"
	"github.com/vadiminshakov/symbex/internal/reconcile"
	"github.com/vadiminshakov/symbex/internal/stats"
	"github.com/vadiminshakov/symbex/internal/validation"
	"go.uber.org/zap"
)

// Format is an output file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatText Format = "txt"
)

// ParseFormat accepts "xlsx"/"excel" and "txt"/"text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", errors.Errorf("unsupported output format %q", s)
	}
}

// Extraction is the result of extracting one source.
type Extraction struct {
	Records  []domain.SymbolRecord
	Quotes   []stats.QuoteCount
	Unparsed int
}

// Extract loads location, or the configured API url when location is blank, and computes quote statistics.
func (a *App) Extract(ctx context.Context, location string) (Extraction, error) {
	if strings.TrimSpace(location) == "" {
		location = a.cfg.APIURL
	}

	records, err := a.Load(ctx, location)
	if err != nil {
		return Extraction{}, err
	}
	if len(records) == 0 {
		return Extraction{}, errors.Wrapf(ErrNoSymbols, "%s", location)
	}

	return Extraction{
		Records:  records,
		Quotes:   stats.QuoteCounts(records),
		Unparsed: stats.Unparsed(records),
	}, nil
}

// SaveSymbols writes records as <name>.<format> in the save path.
func (a *App) SaveSymbols(records []domain.SymbolRecord, name string, format Format) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("output file name is empty")
	}

	path := a.path(name + "." + string(format))

	var err error
	switch format {
	case FormatXLSX:
		err = export.WriteSymbols(path, records)
	case FormatText:
		err = export.WriteText(path, export.Symbols(records))
	default:
		err = errors.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return "", err
	}

	a.logger.Info("symbols saved", zap.String("path", path), zap.Int("count", len(records)))
	return path, nil
}

// Comparison is the result of comparing an API list with a user list.
type Comparison struct {
	Diff reconcile.PairwiseDiff
	Path string
}

// Compare diffs api against user and writes the comparison report.
func (a *App) Compare(api, user []domain.SymbolRecord) (Comparison, error) {
	if len(api) == 0 {
		return Comparison{}, errors.Wrap(ErrNoSymbols, "API list")
	}
	if len(user) == 0 {
		return Comparison{}, errors.Wrap(ErrNoSymbols, "user list")
	}

	diff := reconcile.Diff(api, user)
	path := a.path(ComparisonReportFile)
	if err := export.WriteComparison(path, diff); err != nil {
		return Comparison{Diff: diff}, err
	}

	a.logger.Info("comparison report saved",
		zap.String("path", path),
		zap.Int("common", len(diff.Common)),
		zap.Int("only_in_api", len(diff.OnlyInA)),
		zap.Int("only_in_user", len(diff.OnlyInB)))

	return Comparison{Diff: diff, Path: path}, nil
}

// Match is the result of matching two raw lists.
type Match struct {
	MissingInSecond []string
	MissingInFirst  []string
	Paths           []string
}

// Match diffs two raw lists and writes both differences as text files.
func (a *App) Match(first, second []string) (Match, error) {
	missingInSecond, missingInFirst := reconcile.DiffRaw(first, second)
	m := Match{MissingInSecond: missingInSecond, MissingInFirst: missingInFirst}

	outputs := []struct {
		name    string
		symbols []string
	}{
		{MissingInSecondFile, missingInSecond},
		{MissingInFirstFile, missingInFirst},
	}
	for _, o := range outputs {
		path := a.path(o.name)
		if err := export.WriteText(path, o.symbols); err != nil {
			return m, err
		}
		m.Paths = append(m.Paths, path)
	}

	a.logger.Info("match reports saved",
		zap.Int("missing_in_second", len(missingInSecond)),
		zap.Int("missing_in_first", len(missingInFirst)))

	return m, nil
}

// MultiComparison is the result of comparing several lists.
type MultiComparison struct {
	Lists  []domain.SymbolList
	Common []domain.SymbolRecord
	Unique map[string][]domain.SymbolRecord
	Counts map[string]int
	Path   string
}

// MultiCompare intersects lists, finds per-list uniques and writes the report.
func (a *App) MultiCompare(lists []domain.SymbolList) (MultiComparison, error) {
	if len(lists) < reconcile.MinLists {
		return MultiComparison{}, ErrTooFewLists
	}

	mc := MultiComparison{
		Lists:  lists,
		Common: reconcile.CommonAcrossAll(lists),
		Unique: reconcile.UniquePerList(lists),
		Counts: reconcile.Counts(lists),
	}

	path := a.path(MultiListReportFile)
	if err := export.WriteMultiList(path, lists, mc.Common, mc.Unique); err != nil {
		return mc, err
	}
	mc.Path = path

	a.logger.Info("multi-list report saved",
		zap.String("path", path),
		zap.Int("lists", len(lists)),
		zap.Int("common", len(mc.Common)))

	return mc, nil
}

// Validation is the result of validating lists.
type Validation struct {
	Report validation.Report
	Path   string
}

// Validate checks lists for parse errors, duplicates and inconsistent parses
// and writes the validation report.
func (a *App) Validate(lists []domain.SymbolList) (Validation, error) {
	if len(lists) == 0 {
		return Validation{}, errors.Wrap(ErrNoSymbols, "no lists to validate")
	}

	report := a.validator.Run(lists)
	path := a.path(ValidationReportFile)
	if err := export.WriteValidation(path, report); err != nil {
		return Validation{Report: report}, err
	}

	a.logger.Info("validation report saved",
		zap.String("path", path),
		zap.Int("parse_errors", len(report.ParseErrors)),
		zap.Int("duplicates", len(report.Duplicates)),
		zap.Int("inconsistencies", len(report.Inconsistencies)))

	return Validation{Report: report, Path: path}, nil
}
