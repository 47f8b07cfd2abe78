package vocabulary

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Journal operations.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpLearn  = "learn"
)

// Journal records vocabulary mutations.
type Journal interface {
	Append(op, code string) error
}

// Registry is a Vocabulary that writes itself to a Store after every successful mutation.
type Registry struct {
	vocab   *Vocabulary
	store   Store
	journal Journal
	logger  *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithJournal attaches a mutation journal.
func WithJournal(j Journal) Option {
	return func(r *Registry) {
		r.journal = j
	}
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// Open loads the vocabulary from store, seeding DefaultCodes when nothing was persisted.
func Open(store Store, opts ...Option) (*Registry, error) {
	r := &Registry{store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	codes, found, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load vocabulary")
	}
	if !found {
		r.vocab = Default()
		r.logger.Debug("no persisted vocabulary, using defaults", zap.Strings("codes", DefaultCodes))
	} else {
		r.vocab = New(codes...)
	}

	return r, nil
}

// Codes returns the codes in matching order, longest first.
func (r *Registry) Codes() []string {
	return r.vocab.Codes()
}

// Len returns the number of codes.
func (r *Registry) Len() int {
	return r.vocab.Len()
}

// Contains reports whether code is known, ignoring case.
func (r *Registry) Contains(code string) bool {
	return r.vocab.Contains(code)
}

// Add inserts code on operator request.
// It reports false without error when code is blank or already known.
func (r *Registry) Add(code string) (bool, error) {
	if !r.vocab.Add(code) {
		return false, nil
	}
	return true, r.commit(OpAdd, canonical(code))
}

// Remove deletes code on operator request.
// It reports false without error when code is unknown.
func (r *Registry) Remove(code string) (bool, error) {
	if !r.vocab.Remove(code) {
		return false, nil
	}
	return true, r.commit(OpRemove, canonical(code))
}

// Learn inserts a code inferred by the tokenizer. A failed write is logged and
// the code stays known for the rest of the run.
func (r *Registry) Learn(code string) bool {
	if !r.vocab.Add(code) {
		return false
	}

	code = canonical(code)
	r.logger.Info("new currency detected", zap.String("currency", code))
	if err := r.commit(OpLearn, code); err != nil {
		r.logger.Error("failed to persist learned currency", zap.String("currency", code), zap.Error(err))
	}

	return true
}

func (r *Registry) commit(op, code string) error {
	if err := r.store.Save(r.vocab.Codes()); err != nil {
		return errors.Wrapf(err, "save vocabulary after %s %s", op, code)
	}

	if r.journal != nil {
		if err := r.journal.Append(op, code); err != nil {
			r.logger.Warn("failed to journal vocabulary change", zap.String("op", op), zap.String("currency", code), zap.Error(err))
		}
	}

	return nil
}
