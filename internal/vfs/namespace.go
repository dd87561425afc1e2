package vfs

import (
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/memfsd/memfsd/internal/logging"
	"go.uber.org/zap"
)

// Namespace is the in-memory hierarchical file system. It owns the entry
// store and the working-directory cursor; both are guarded by a single
// exclusive lock held for the full duration of every public operation.
type Namespace struct {
	mu     sync.Mutex
	store  *store
	cursor string
	log    *logging.Logger

	// now is the clock for entry timestamps, swappable in tests.
	now func() time.Time
}

// New creates a namespace containing only the root directory, with the
// cursor at "/". A nil logger is replaced with a no-op one.
func New(log *logging.Logger) *Namespace {
	if log == nil {
		log = logging.NewNop()
	}
	return &Namespace{
		store:  newStore(today()),
		cursor: rootPath,
		log:    log,
		now:    today,
	}
}

// Cwd returns the current working directory.
func (n *Namespace) Cwd() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor
}

// Chdir moves the cursor to the target directory, which must exist.
func (n *Namespace) Chdir(path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := Normalize(path, n.cursor)
	if target != rootPath && !n.store.existsKind(target, KindDirectory) {
		if n.store.exists(target) {
			return newError(CodeWrongKind, "cd", target)
		}
		return newError(CodeNotFound, "cd", target)
	}
	n.cursor = target
	return nil
}

// Stat reports whether a path exists and, if so, its kind.
func (n *Namespace) Stat(path string) (Kind, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	e, ok := n.store.get(Normalize(path, n.cursor))
	return e.Kind, ok
}

// Create adds an empty file. Missing intermediate directories are
// materialized; an existing entry at the path is an error.
func (n *Namespace) Create(path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.createEntry("create", path, KindFile)
}

// Mkdir adds a directory, materializing missing ancestors.
func (n *Namespace) Mkdir(path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.createEntry("mkdir", path, KindDirectory)
}

// createEntry inserts a fresh entry at the normalized path. Caller holds
// the lock.
func (n *Namespace) createEntry(op, path string, kind Kind) error {
	target := Normalize(path, n.cursor)
	if n.store.exists(target) {
		return newError(CodeAlreadyExists, op, target)
	}
	if err := n.ensureAncestors(op, target); err != nil {
		return err
	}
	return n.store.insert(op, target, newEntry(kind, nil, n.now()))
}

// ensureAncestors materializes every missing directory above path, like
// mkdir -p for intermediate components. It fails only when an ancestor
// already exists as a file. Caller holds the lock; recursion depth is
// bounded by the segment count.
func (n *Namespace) ensureAncestors(op, path string) error {
	parent := Parent(path)
	if parent == rootPath {
		return nil
	}
	if e, ok := n.store.get(parent); ok {
		if e.Kind != KindDirectory {
			return newError(CodeWrongKind, op, parent)
		}
		return nil
	}
	if err := n.ensureAncestors(op, parent); err != nil {
		return err
	}
	return n.store.insert(op, parent, newEntry(KindDirectory, nil, n.now()))
}

// Write replaces the content of a file, creating it (and any missing
// ancestors) when absent. Writing to a directory is an error.
func (n *Namespace) Write(path string, content []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := Normalize(path, n.cursor)
	if e, ok := n.store.get(target); ok {
		if e.Kind != KindFile {
			return newError(CodeWrongKind, "write", target)
		}
		e.Content = content
		e.Size = len(content)
		e.Modified = n.now()
		n.store.update(target, e)
		return nil
	}

	if err := n.ensureAncestors("write", target); err != nil {
		return err
	}
	return n.store.insert("write", target, newEntry(KindFile, content, n.now()))
}

// Read returns the content of a file.
func (n *Namespace) Read(path string) ([]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := Normalize(path, n.cursor)
	e, err := n.store.getKind("read", target, KindFile)
	if err != nil {
		return nil, err
	}
	return e.Content, nil
}

// Delete removes a file or an empty directory. A populated directory is
// refused; use Remove with recursive set.
func (n *Namespace) Delete(path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.removeEntry("delete", path, false)
}

// Remove removes an entry, recursing into directory contents when
// requested.
func (n *Namespace) Remove(path string, recursive bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.removeEntry("rmdir", path, recursive)
}

// removeEntry deletes the normalized path and, in recursive mode, its
// whole subtree. Descendants are snapshotted before any erase so the map
// is never mutated while being scanned. Caller holds the lock.
func (n *Namespace) removeEntry(op, path string, recursive bool) error {
	target := Normalize(path, n.cursor)
	if target == rootPath {
		return newError(CodeInvalid, op, target)
	}

	e, ok := n.store.get(target)
	if !ok {
		return newError(CodeNotFound, op, target)
	}

	if e.Kind == KindDirectory && n.store.hasDescendants(target) {
		if !recursive {
			return newError(CodeDirectoryNotEmpty, op, target)
		}
		for _, d := range n.store.descendants(target) {
			if _, err := n.store.remove(op, d.Name); err != nil {
				return err
			}
		}
	}

	_, err := n.store.remove(op, target)
	return err
}

// Move relocates an entry. The destination must not exist; a directory
// source has its whole subtree re-keyed with content and timestamps
// preserved. Validation happens before any mutation, so a failed move
// leaves the store untouched.
func (n *Namespace) Move(src, dst string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	source := Normalize(src, n.cursor)
	dest := Normalize(dst, n.cursor)

	entry, ok := n.store.get(source)
	if !ok {
		return newError(CodeNotFound, "move", source)
	}
	if source == rootPath {
		return newError(CodeInvalid, "move", source)
	}
	if n.store.exists(dest) {
		return newError(CodeAlreadyExists, "move", dest)
	}
	if entry.Kind == KindDirectory && strings.HasPrefix(dest, childPrefix(source)) {
		return newError(CodeInvalid, "move", dest)
	}
	if err := n.ensureAncestors("move", dest); err != nil {
		return err
	}

	if entry.Kind == KindDirectory {
		if err := n.store.insert("move", dest, newEntry(KindDirectory, nil, n.now())); err != nil {
			return err
		}
		srcPrefix := childPrefix(source)
		dstPrefix := childPrefix(dest)
		for _, d := range n.store.descendants(source) {
			n.store.update(dstPrefix+d.Name[len(srcPrefix):], d.Entry)
			if _, err := n.store.remove("move", d.Name); err != nil {
				return err
			}
		}
	} else {
		if err := n.store.insert("move", dest, entry); err != nil {
			return err
		}
	}

	_, err := n.store.remove("move", source)
	return err
}

// Copy duplicates an entry. Copied entries, including every descendant of
// a directory source, receive fresh timestamps: a copy is a new object at
// a new time. The source is left intact.
func (n *Namespace) Copy(src, dst string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	source := Normalize(src, n.cursor)
	dest := Normalize(dst, n.cursor)

	entry, ok := n.store.get(source)
	if !ok {
		return newError(CodeNotFound, "copy", source)
	}
	if n.store.exists(dest) {
		return newError(CodeAlreadyExists, "copy", dest)
	}
	if entry.Kind == KindDirectory && strings.HasPrefix(dest, childPrefix(source)) {
		return newError(CodeInvalid, "copy", dest)
	}
	if err := n.ensureAncestors("copy", dest); err != nil {
		return err
	}

	now := n.now()
	if entry.Kind == KindDirectory {
		if err := n.store.insert("copy", dest, newEntry(KindDirectory, nil, now)); err != nil {
			return err
		}
		srcPrefix := childPrefix(source)
		dstPrefix := childPrefix(dest)
		for _, d := range n.store.descendants(source) {
			dup := d.Entry
			dup.Created = now
			dup.Modified = now
			n.store.update(dstPrefix+d.Name[len(srcPrefix):], dup)
		}
	} else {
		dup := entry
		dup.Created = now
		dup.Modified = now
		if err := n.store.insert("copy", dest, dup); err != nil {
			return err
		}
	}
	return nil
}

// SearchMatch is one hit of a pattern search.
type SearchMatch struct {
	Path string
	Kind Kind
}

// Search scans every entry and matches when the final path segment
// contains pattern as a plain substring. Results are sorted by path.
func (n *Namespace) Search(pattern string) []SearchMatch {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []SearchMatch
	for _, d := range n.store.descendants(rootPath) {
		if strings.Contains(Base(d.Name), pattern) {
			out = append(out, SearchMatch{Path: d.Name, Kind: d.Entry.Kind})
		}
	}
	return out
}

// SearchGlob matches stored paths against a doublestar pattern, e.g.
// "/docs/**/*.txt". The pattern must be absolute.
func (n *Namespace) SearchGlob(pattern string) ([]SearchMatch, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !doublestar.ValidatePattern(pattern) {
		return nil, newError(CodeInvalid, "search", pattern)
	}
	var out []SearchMatch
	for _, d := range n.store.descendants(rootPath) {
		ok, err := doublestar.Match(pattern, d.Name)
		if err != nil {
			return nil, wrapError(CodeInvalid, "search", pattern, err)
		}
		if ok {
			out = append(out, SearchMatch{Path: d.Name, Kind: d.Entry.Kind})
		}
	}
	return out, nil
}

// List enumerates the direct children of a directory, sorted by name.
func (n *Namespace) List(path string) ([]DirEntry, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	dir := Normalize(path, n.cursor)
	if _, err := n.store.getKind("list", dir, KindDirectory); err != nil {
		return nil, err
	}
	return n.store.children(dir), nil
}

// EntryInfo is the detailed report for a single entry. Children is the
// direct-child count, meaningful for directories only.
type EntryInfo struct {
	Path     string
	Kind     Kind
	Size     int
	Created  time.Time
	Modified time.Time
	Children int
}

// Info returns detail for a single entry.
func (n *Namespace) Info(path string) (EntryInfo, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := Normalize(path, n.cursor)
	e, ok := n.store.get(target)
	if !ok {
		return EntryInfo{}, newError(CodeNotFound, "info", target)
	}
	info := EntryInfo{
		Path:     target,
		Kind:     e.Kind,
		Size:     e.Size,
		Created:  e.Created,
		Modified: e.Modified,
	}
	if e.Kind == KindDirectory {
		info.Children = n.store.countChildren(target)
	}
	return info, nil
}

// StatsInfo aggregates namespace-wide counters.
type StatsInfo struct {
	Entries     int
	Files       int
	Directories int
	TotalBytes  int
}

// Stats reports entry counts and cumulative file size.
func (n *Namespace) Stats() StatsInfo {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.store.tally()
}

func (n *Namespace) warnSkip(line int, reason string) {
	n.log.Warn("skipping malformed snapshot record",
		zap.Int("line", line),
		zap.String("reason", reason),
	)
}
