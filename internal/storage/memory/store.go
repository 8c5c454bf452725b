package memory

import "sort"

// Store is an in-memory string-to-string map.
//
// The zero value is not usable; create stores with New.
type Store struct {
	entries map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[string]string)}
}

// FromEntries creates a store holding a copy of entries.
func FromEntries(entries map[string]string) *Store {
	s := &Store{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		s.entries[k] = v
	}
	return s
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Insert stores value under key, replacing any previous value.
func (s *Store) Insert(key, value string) {
	s.entries[key] = value
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns all keys in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the store contents.
func (s *Store) Entries() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}
