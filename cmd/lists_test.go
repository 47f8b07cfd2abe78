package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitListArg(t *testing.T) {
	tests := []struct {
		arg          string
		expectedName string
		expectedLocation string
	}{
		{arg: "binance", expectedName: "", expectedLocation: "binance"},
		{arg: "Exchange=binance", expectedName: "Exchange", expectedLocation: "binance"},
		{arg: "mine=./lists/mine.txt", expectedName: "mine", expectedLocation: "./lists/mine.txt"},
		{arg: "https://api.example.com/symbols?type=spot", expectedName: "", expectedLocation: "https://api.example.com/symbols?type=spot"},
		{arg: "lists/a=b.txt", expectedName: "", expectedLocation: "lists/a=b.txt"},
		{arg: "=ktr", expectedName: "", expectedLocation: "=ktr"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, location := splitListArg(tt.arg)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedLocation, location)
		})
	}
}

func TestReadRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("BTCUSDT\n\nETHBTC\n"), 0o644))

	got, err := readRaw(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHBTC"}, got)

	_, err = readRaw(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

func TestReadBlocks(t *testing.T) {
	first, second, err := readBlocks(strings.NewReader("BTCUSDT, ETHUSDT\nbtcusdt\n\nXRPUSDT\n\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, first)
	assert.Equal(t, []string{"XRPUSDT"}, second)

	first, second, err = readBlocks(strings.NewReader("SOLUSDT\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SOLUSDT"}, first)
	assert.Empty(t, second)
}
