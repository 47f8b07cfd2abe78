// Package app wires configuration, the vocabulary, tokenizer, sources and
// exporters into the operations exposed by the CLI and the interactive menu.
package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/symbex/config"
	"github.com/vadiminshakov/symbex/internal/domain"
	"github.com/vadiminshakov/symbex/internal/sources"
	"github.com/vadiminshakov/symbex/internal/storage/journal"
	"github.com/vadiminshakov/symbex/internal/symbols"
	"github.com/vadiminshakov/symbex/internal/validation"
	"github.com/vadiminshakov/symbex/internal/vocabulary"
	"go.uber.org/zap"
)

// Output file names.
const (
	ComparisonReportFile = "ComparisonReport.xlsx"
	MissingInFirstFile   = "MissingInList1.txt"
	MissingInSecondFile  = "MissingInList2.txt"
	MultiListReportFile  = "MultiListReport.xlsx"
	ValidationReportFile = "ValidationReport.xlsx"
)

var (
	// ErrNoSymbols is returned when an input produced no symbols.
	ErrNoSymbols = errors.New("no symbols found")
	// ErrTooFewLists is returned by multi-list operations given fewer than two lists.
	ErrTooFewLists = errors.New("at least two lists are required")
	// ErrJournalDisabled is returned when history is requested without a journal.
	ErrJournalDisabled = errors.New("vocabulary journal is disabled")
)

// App holds the collaborators of one symbex run.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	run    string

	store     vocabulary.Store
	journal   *journal.WALStore
	registry  *vocabulary.Registry
	parser    *symbols.Parser
	resolver  *sources.Resolver
	validator *validation.Validator

	resolverOpts []sources.ResolverOption
}

// Option configures an App.
type Option func(*App)

// WithStore replaces the vocabulary file store.
func WithStore(s vocabulary.Store) Option {
	return func(a *App) { a.store = s }
}

// WithResolverOptions passes options to the source resolver.
func WithResolverOptions(opts ...sources.ResolverOption) Option {
	return func(a *App) { a.resolverOpts = append(a.resolverOpts, opts...) }
}

// New creates the save directory, opens the vocabulary and its journal and
// builds the tokenizer.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	run := uuid.NewString()
	a := &App{cfg: cfg, run: run, logger: logger.With(zap.String("run", run))}
	for _, opt := range opts {
		opt(a)
	}

	if cfg.SavePath == "" {
		a.cfg.SavePath = "."
	}
	if err := os.MkdirAll(a.cfg.SavePath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", a.cfg.SavePath)
	}

	if a.store == nil {
		a.store = vocabulary.NewFileStore(cfg.CurrenciesFile)
	}

	registryOpts := []vocabulary.Option{vocabulary.WithLogger(a.logger)}
	if cfg.JournalEnabled {
		j, err := journal.NewWALStore(cfg.JournalDir, run)
		if err != nil {
			a.logger.Warn("vocabulary journal unavailable", zap.String("dir", cfg.JournalDir), zap.Error(err))
		} else {
			a.journal = j
			registryOpts = append(registryOpts, vocabulary.WithJournal(j))
		}
	}

	registry, err := vocabulary.Open(a.store, registryOpts...)
	if err != nil {
		a.closeJournal()
		return nil, err
	}

	a.registry = registry
	a.parser = symbols.NewParser(registry)
	a.resolver = sources.NewResolver(a.parser, cfg.HTTPTimeout, a.logger, a.resolverOpts...)
	a.validator = validation.New(a.parser)

	a.logger.Debug("app initialized",
		zap.String("save_path", a.cfg.SavePath),
		zap.Int("currencies", registry.Len()),
		zap.Bool("journal", a.journal != nil))

	return a, nil
}

// RunID identifies this run in logs and journal entries.
func (a *App) RunID() string { return a.run }

// SavePath is the directory reports are written to.
func (a *App) SavePath() string { return a.cfg.SavePath }

// DefaultAPIURL is the configured API url, possibly empty.
func (a *App) DefaultAPIURL() string { return a.cfg.APIURL }

// Parser returns the tokenizer bound to the vocabulary.
func (a *App) Parser() *symbols.Parser { return a.parser }

// Load resolves location and returns its records.
func (a *App) Load(ctx context.Context, location string) ([]domain.SymbolRecord, error) {
	src, err := a.resolver.Resolve(location)
	if err != nil {
		return nil, err
	}

	records, err := src.Symbols(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load symbols from %s", src.Name())
	}

	a.logger.Info("symbols loaded", zap.String("source", src.Name()), zap.Int("count", len(records)))
	return records, nil
}

// LoadList loads location into a list called name, or the source name when name is blank.
func (a *App) LoadList(ctx context.Context, name, location string) (domain.SymbolList, error) {
	records, err := a.Load(ctx, location)
	if err != nil {
		return domain.SymbolList{}, err
	}

	if strings.TrimSpace(name) == "" {
		name = location
	}
	return domain.SymbolList{Name: name, Symbols: records}, nil
}

// Records tokenizes raw symbols, e.g. manual entries.
func (a *App) Records(raw []string) []domain.SymbolRecord {
	return sources.Records(a.parser, raw)
}

// Currencies returns the known codes alphabetically.
func (a *App) Currencies() []string {
	codes := a.registry.Codes()
	sort.Strings(codes)
	return codes
}

// AddCurrency adds code to the vocabulary.
func (a *App) AddCurrency(code string) (bool, error) {
	return a.registry.Add(code)
}

// RemoveCurrency removes code from the vocabulary.
func (a *App) RemoveCurrency(code string) (bool, error) {
	return a.registry.Remove(code)
}

// History returns the journaled vocabulary changes.
func (a *App) History() ([]journal.Entry, error) {
	if a.journal == nil {
		return nil, ErrJournalDisabled
	}
	return a.journal.Entries()
}

// Close releases the journal.
func (a *App) Close() error {
	_ = a.logger.Sync()
	return a.closeJournal()
}

func (a *App) closeJournal() error {
	if a.journal == nil {
		return nil
	}
	err := a.journal.Close()
	a.journal = nil
	return err
}

func (a *App) path(name string) string {
	return filepath.Join(a.cfg.SavePath, name)
}
