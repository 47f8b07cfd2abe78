package sources

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReadText reads one symbol per line, trimmed, skipping blank lines.
func ReadText(path string) ([]string, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return scanLines(f)
}

func scanLines(r io.Reader) ([]string, error) {
	symbols := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		symbols = append(symbols, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read lines")
	}
	return symbols, nil
}

// ReadSpreadsheet reads the first column of the first sheet, skipping the
// header row and blank cells.
func ReadSpreadsheet(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open spreadsheet %s", path)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return []string{}, nil
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}

	symbols := make([]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		cell := strings.TrimSpace(row[0])
		if cell == "" {
			continue
		}
		symbols = append(symbols, cell)
	}

	return symbols, nil
}

// ReadJSON reads a whole JSON file.
func ReadJSON(path string) ([]byte, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return f, nil
}

// JSONFileSource extracts symbols from a JSON file in any accepted shape.
type JSONFileSource struct {
	path      string
	extractor *Extractor
}

// NewJSONFileSource creates a JSON file source.
func NewJSONFileSource(path string, extractor *Extractor) *JSONFileSource {
	return &JSONFileSource{path: path, extractor: extractor}
}

// Name returns the file path.
func (s *JSONFileSource) Name() string { return s.path }

// Symbols reads and extracts the file.
func (s *JSONFileSource) Symbols(_ context.Context) ([]domain.SymbolRecord, error) {
	data, err := ReadJSON(s.path)
	if err != nil {
		return nil, err
	}
	return s.extractor.Extract(data), nil
}
