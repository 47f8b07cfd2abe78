package sources

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.txt")
	require.NoError(t, os.WriteFile(path, []byte("BTCUSDT\n\n  ETHBTC  \r\nSOL-USDT\n"), 0o644))

	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHBTC", "SOL-USDT"}, got)
}

func TestReadText_NotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReadSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.xlsx")

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	rows := [][]any{{"Symbol"}, {"BTCUSDT"}, {""}, {" ETHBTC "}, {"LTCUSDT", "ignored"}}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())

	got, err := ReadSpreadsheet(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHBTC", "LTCUSDT"}, got)
}

func TestReadSpreadsheet_NotFound(t *testing.T) {
	_, err := ReadSpreadsheet(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestJSONFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.json")
	require.NoError(t, os.WriteFile(path, []byte(`["BTCUSDT"]`), 0o644))

	src := NewJSONFileSource(path, NewExtractor(newTestTokenizer(), zap.NewNop()))
	records, err := src.Symbols(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SymbolRecord{{Symbol: "BTCUSDT", Base: "BTC", Quote: "USDT"}}, records)

	_, err = NewJSONFileSource(filepath.Join(dir, "nope.json"), src.extractor).Symbols(context.Background())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReadEntries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "one per line", input: "BTCUSDT\nETHBTC\n", expected: []string{"BTCUSDT", "ETHBTC"}},
		{name: "comma separated", input: "btcusdt, ETHUSDT,,\nSOLUSDT\n", expected: []string{"btcusdt", "ETHUSDT", "SOLUSDT"}},
		{name: "case-insensitive dedup keeps first", input: "btcusdt\nBTCUSDT\nBtcUsdt\n", expected: []string{"btcusdt"}},
		{name: "stops at blank line", input: "BTCUSDT\n   \nETHBTC\n", expected: []string{"BTCUSDT"}},
		{name: "empty", input: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadEntries(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKTRSource(t *testing.T) {
	src := NewKTRSource(newTestTokenizer())
	records, err := src.Symbols(context.Background())
	require.NoError(t, err)

	require.Len(t, records, len(domain.KTRSymbols))
	assert.Equal(t, domain.KTRListName, src.Name())

	first := records[0]
	assert.Equal(t, "BTCUSDT", first.Symbol)
	assert.Equal(t, "BTC", first.Base)
	assert.Equal(t, "USDT", first.Quote)
	require.NotNil(t, first.ID)
	assert.Equal(t, 1, *first.ID)
	for _, r := range records {
		assert.NotNil(t, r.ID, r.Symbol)
	}
}
