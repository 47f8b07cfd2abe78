package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vadiminshakov/symbex/internal/app"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/sources"
)

// splitListArg splits "name=source". A prefix that looks like a path or url
// is not a name.
func splitListArg(arg string) (name, location string) {
	i := strings.Index(arg, "=")
	if i <= 0 {
		return "", arg
	}
	if strings.ContainsAny(arg[:i], `/\:?.`) {
		return "", arg
	}
	return arg[:i], arg[i+1:]
}

func loadLists(ctx context.Context, a *app.App, args []string) ([]domain.SymbolList, error) {
	lists := make([]domain.SymbolList, 0, len(args))
	for _, arg := range args {
		name, location := splitListArg(arg)
		list, err := a.LoadList(ctx, name, location)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// readRaw reads raw symbol strings from a text or spreadsheet file.
func readRaw(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return sources.ReadSpreadsheet(path)
	}
	return sources.ReadText(path)
}
