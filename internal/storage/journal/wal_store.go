// Package journal keeps an append-only log of vocabulary changes.
package journal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/gowal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultDir   = "./wal/vocabulary"
	segmentLimit = 100
	maxSegments  = 10

	keyPrefix = "vocab_"
)

// Entry is one journaled vocabulary change.
type Entry struct {
	Op   string    `json:"op"`
	Code string    `json:"code"`
	Run  string    `json:"run,omitempty"`
	At   time.Time `json:"at"`
}

// WALStore persists vocabulary changes in a WAL.
type WALStore struct {
	wal *gowal.Wal
	mu  sync.Mutex
	run string
	now func() time.Time
}

// NewWALStore initializes a WAL-backed journal. run tags every entry written
// through this store.
func NewWALStore(dir, run string) (*WALStore, error) {
	if dir == "" {
		dir = DefaultDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           keyPrefix,
		SegmentThreshold: segmentLimit,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init vocabulary WAL")
	}

	return &WALStore{wal: wal, run: run, now: time.Now}, nil
}

// Append writes one change.
func (s *WALStore) Append(op, code string) error {
	if s == nil || s.wal == nil {
		return errors.New("vocabulary journal is not initialized")
	}
	if op == "" || code == "" {
		return fmt.Errorf("journal entry needs op and code, got %q %q", op, code)
	}

	payload, err := json.Marshal(Entry{Op: op, Code: code, Run: s.run, At: s.now().UTC()})
	if err != nil {
		return errors.Wrap(err, "marshal journal entry")
	}

	key := fmt.Sprintf("%s%s_%s", keyPrefix, op, code)

	s.mu.Lock()
	defer s.mu.Unlock()

	nextIndex := s.wal.CurrentIndex() + 1
	return s.wal.Write(nextIndex, key, payload)
}

// Entries returns the retained changes, oldest first.
func (s *WALStore) Entries() ([]Entry, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("vocabulary journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0)
	for msg := range s.wal.Iterator() {
		if !strings.HasPrefix(msg.Key, keyPrefix) {
			continue
		}

		var e Entry
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			return nil, errors.Wrapf(err, "decode journal entry %s", msg.Key)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// CurrentIndex returns the latest WAL index stored.
func (s *WALStore) CurrentIndex() uint64 {
	if s == nil || s.wal == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.CurrentIndex()
}

// Close closes the underlying WAL.
func (s *WALStore) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("vocabulary journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}
