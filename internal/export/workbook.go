// Package export writes symbol lists and reports as spreadsheets or plain text.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	maxSheetName   = 31
	forbiddenChars = `[]:*?/\`
)

// ErrNothingToWrite is returned when every sheet of a report would be empty.
var ErrNothingToWrite = errors.New("nothing to write")

var symbolHeader = []any{"Id", "Symbol", "Base", "Quote"}

// workbook wraps an excelize file and keeps sheet names unique.
type workbook struct {
	file   *excelize.File
	bold   int
	names  map[string]struct{}
	sheets int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to create header style")
	}
	return &workbook{file: f, bold: bold, names: make(map[string]struct{})}, nil
}

// addSheet appends a sheet with a bold header row. The default sheet is
// renamed for the first call.
func (w *workbook) addSheet(name string, header []any, rows [][]any) (string, error) {
	name = w.uniqueName(SanitizeSheetName(name))

	if w.sheets == 0 {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), name); err != nil {
			return "", errors.Wrapf(err, "failed to rename sheet to %s", name)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return "", errors.Wrapf(err, "failed to create sheet %s", name)
	}
	w.sheets++

	if err := w.file.SetSheetRow(name, "A1", &header); err != nil {
		return "", errors.Wrapf(err, "failed to write header of %s", name)
	}
	if err := w.file.SetRowStyle(name, 1, 1, w.bold); err != nil {
		return "", errors.Wrapf(err, "failed to style header of %s", name)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", errors.Wrap(err, "invalid cell")
		}
		if err := w.file.SetSheetRow(name, cell, &row); err != nil {
			return "", errors.Wrapf(err, "failed to write row %d of %s", i+2, name)
		}
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return "", errors.Wrap(err, "invalid column")
	}
	if err := w.file.SetColWidth(name, "A", last, 18); err != nil {
		return "", errors.Wrapf(err, "failed to size columns of %s", name)
	}

	return name, nil
}

func (w *workbook) save(path string) error {
	defer w.file.Close()

	if w.sheets == 0 {
		return ErrNothingToWrite
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}

	w.file.SetActiveSheet(0)
	if err := w.file.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

func (w *workbook) uniqueName(name string) string {
	candidate := name
	for n := 2; w.taken(candidate); n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(name, maxSheetName-len(suffix)) + suffix
	}
	w.names[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

func (w *workbook) taken(name string) bool {
	_, ok := w.names[strings.ToLower(name)]
	return ok
}

// SanitizeSheetName replaces characters spreadsheets reject in sheet names and
// caps the length at 31 characters.
func SanitizeSheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenChars, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func symbolRows(records []domain.SymbolRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		var id any = ""
		if r.ID != nil {
			id = *r.ID
		}
		rows = append(rows, []any{id, r.Symbol, r.Base, r.Quote})
	}
	return rows
}
