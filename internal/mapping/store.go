// Package mapping maintains the account-to-category mapping table behind
// statement generation. The table is keyed by account code and persisted as
// CSV alongside the trial balance data.
package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/afrgen-dev/afrgen/internal/model"
)

// Store provides in-memory lookup over mapping entries.
type Store struct {
	byCode map[string]model.MappingEntry
}

// NewStore creates a Store from a slice of entries. Later entries for the
// same code replace earlier ones.
func NewStore(entries []model.MappingEntry) *Store {
	s := &Store{byCode: make(map[string]model.MappingEntry, len(entries))}
	for _, e := range entries {
		s.byCode[e.AccountCode] = e
	}
	return s
}

// mappingFile is the store's on-disk name under the workspace root.
const mappingFile = "mappings.csv"

// Load reads mappings.csv from a workspace root. A missing file yields an
// empty store.
func Load(root string) (*Store, error) {
	path := filepath.Join(root, mappingFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(nil), nil
		}
		return nil, fmt.Errorf("opening mappings: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}
	return NewStore(entries), nil
}

// Save writes the store to mappings.csv under the workspace root.
func (s *Store) Save(root string) error {
	path := filepath.Join(root, mappingFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mappings file: %w", err)
	}
	defer f.Close()

	if err := WriteEntries(f, s.All()); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}
	return nil
}

// Get returns the entry for an account code.
func (s *Store) Get(code string) (model.MappingEntry, bool) {
	e, ok := s.byCode[code]
	return e, ok
}

// Put adds or replaces the entry for its account code.
func (s *Store) Put(entry model.MappingEntry) {
	s.byCode[entry.AccountCode] = entry
}

// Delete removes the entry for an account code.
func (s *Store) Delete(code string) {
	delete(s.byCode, code)
}

// Reset drops every entry.
func (s *Store) Reset() {
	s.byCode = make(map[string]model.MappingEntry)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.byCode)
}

// All returns every entry sorted by account code.
func (s *Store) All() []model.MappingEntry {
	entries := make([]model.MappingEntry, 0, len(s.byCode))
	for _, e := range s.byCode {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].AccountCode < entries[j].AccountCode
	})
	return entries
}

// Table returns the entries keyed by account code, the shape the statement
// builders and audit trail consume.
func (s *Store) Table() map[string]model.MappingEntry {
	table := make(map[string]model.MappingEntry, len(s.byCode))
	for code, e := range s.byCode {
		table[code] = e
	}
	return table
}
