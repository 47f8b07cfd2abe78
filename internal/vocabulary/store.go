package vocabulary

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// DefaultFile is the vocabulary file used when none is configured.
const DefaultFile = "currencies.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persists the full vocabulary.
type Store interface {
	// Load returns the persisted codes. found is false when nothing was persisted yet.
	Load() (codes []string, found bool, err error)
	// Save overwrites the persisted codes.
	Save(codes []string) error
}

// FileStore keeps the vocabulary as a JSON array of codes in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the codes from disk.
func (s *FileStore) Load() ([]string, bool, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "read currencies file")
	}

	if len(payload) == 0 {
		return []string{}, true, nil
	}

	var codes []string
	if err := json.Unmarshal(payload, &codes); err != nil {
		return nil, false, errors.Wrapf(err, "decode currencies file %s", s.path)
	}
	if codes == nil {
		codes = []string{}
	}

	return codes, true, nil
}

// Save writes the codes to disk atomically via temp file.
func (s *FileStore) Save(codes []string) error {
	if codes == nil {
		codes = []string{}
	}

	payload, err := json.MarshalIndent(codes, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode currencies")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create currencies dir")
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return errors.Wrap(err, "write currencies temp file")
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "persist currencies")
	}

	return nil
}

// MemoryStore keeps the vocabulary in memory. It is useful for tests and dry runs.
type MemoryStore struct {
	codes []string
	saved bool
	Saves int
}

// NewMemoryStore returns a store that reports codes as already persisted.
// With no codes it behaves like an empty, never written store.
func NewMemoryStore(codes ...string) *MemoryStore {
	if len(codes) == 0 {
		return &MemoryStore{}
	}
	return &MemoryStore{codes: append([]string(nil), codes...), saved: true}
}

// Load returns the last saved codes.
func (m *MemoryStore) Load() ([]string, bool, error) {
	if !m.saved {
		return nil, false, nil
	}
	return append([]string(nil), m.codes...), true, nil
}

// Save records codes.
func (m *MemoryStore) Save(codes []string) error {
	m.codes = append([]string(nil), codes...)
	m.saved = true
	m.Saves++
	return nil
}
