package vfs

import "time"

// store owns the flat path-to-entry map. It is the sole source of truth
// for existence, kind, content and metadata; all access goes through
// these primitives so the backing map is never exposed.
type store struct {
	entries map[string]Entry
}

func newStore(now time.Time) *store {
	s := &store{entries: make(map[string]Entry)}
	s.entries[rootPath] = newEntry(KindDirectory, nil, now)
	return s
}

func (s *store) len() int {
	return len(s.entries)
}

func (s *store) exists(path string) bool {
	_, ok := s.entries[path]
	return ok
}

func (s *store) existsKind(path string, kind Kind) bool {
	e, ok := s.entries[path]
	return ok && e.Kind == kind
}

func (s *store) get(path string) (Entry, bool) {
	e, ok := s.entries[path]
	return e, ok
}

// getKind fetches an entry the caller expects to be of a specific kind.
func (s *store) getKind(op, path string, kind Kind) (Entry, error) {
	e, ok := s.entries[path]
	if !ok {
		return Entry{}, newError(CodeNotFound, op, path)
	}
	if e.Kind != kind {
		return Entry{}, newError(CodeWrongKind, op, path)
	}
	return e, nil
}

// insert adds a new entry. Inserting over an existing path is an error,
// never an overwrite.
func (s *store) insert(op, path string, e Entry) error {
	if _, ok := s.entries[path]; ok {
		return newError(CodeAlreadyExists, op, path)
	}
	s.entries[path] = e
	return nil
}

// update replaces an entry the caller has already validated.
func (s *store) update(path string, e Entry) {
	s.entries[path] = e
}

// tally aggregates namespace-wide counters.
func (s *store) tally() StatsInfo {
	t := StatsInfo{Entries: len(s.entries)}
	for _, e := range s.entries {
		if e.Kind == KindFile {
			t.Files++
			t.TotalBytes += e.Size
		} else {
			t.Directories++
		}
	}
	return t
}

func (s *store) remove(op, path string) (Entry, error) {
	e, ok := s.entries[path]
	if !ok {
		return Entry{}, newError(CodeNotFound, op, path)
	}
	delete(s.entries, path)
	return e, nil
}
