package sources

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	jsoniter "github.com/json-iterator/go"
	"github.com/vadiminshakov/symbex/internal/domain"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// itemPaths are probed in order for an array of symbol items.
var itemPaths = []string{"$.data", "$.data.list"}

// Extractor pulls symbol records out of JSON payloads.
//
// Accepted shapes, tried in order: {"data": [...]}, {"data": {"list": [...]}},
// a bare array, and a single object with a "symbol" field. Items are either
// symbol strings or objects with "symbol" and optional "baseAsset"/"quoteAsset";
// when both assets are non-empty they are used instead of the tokenizer.
type Extractor struct {
	tokenizer Tokenizer
	logger    *zap.Logger
}

// NewExtractor creates an extractor.
func NewExtractor(tokenizer Tokenizer, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{tokenizer: tokenizer, logger: logger}
}

// Extract returns the records found in payload. Malformed JSON and shapes
// without items are logged and yield an empty result.
func (e *Extractor) Extract(payload []byte) []domain.SymbolRecord {
	records := make([]domain.SymbolRecord, 0)

	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		e.logger.Warn("JSON parsing error", zap.Error(err))
		return records
	}

	items, ok := locateItems(doc)
	if !ok {
		obj, isObj := doc.(map[string]any)
		if !isObj || obj["symbol"] == nil {
			e.logger.Warn("no symbol items found in JSON")
			return records
		}
		items = []any{obj}
	}

	for _, item := range items {
		if r, ok := e.record(item); ok {
			records = append(records, r)
		}
	}

	if len(records) == 0 {
		e.logger.Warn("JSON contained no usable symbols", zap.Int("items", len(items)))
	}

	return records
}

func (e *Extractor) record(item any) (domain.SymbolRecord, bool) {
	switch v := item.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return domain.SymbolRecord{}, false
		}
		return domain.NewSymbolRecord(v, e.tokenizer.Pair(v)), true
	case map[string]any:
		symbol := stringify(v["symbol"])
		if strings.TrimSpace(symbol) == "" {
			return domain.SymbolRecord{}, false
		}
		base, quote := stringify(v["baseAsset"]), stringify(v["quoteAsset"])
		if base != "" && quote != "" {
			return domain.NewSymbolRecord(symbol, domain.Pair{Base: base, Quote: quote}), true
		}
		return domain.NewSymbolRecord(symbol, e.tokenizer.Pair(symbol)), true
	default:
		return domain.SymbolRecord{}, false
	}
}

func locateItems(doc any) ([]any, bool) {
	if _, isObj := doc.(map[string]any); isObj {
		for _, path := range itemPaths {
			found, err := jsonpath.Get(path, doc)
			if err != nil {
				continue
			}
			if items, ok := found.([]any); ok {
				return items, true
			}
		}
		return nil, false
	}

	items, ok := doc.([]any)
	return items, ok
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
