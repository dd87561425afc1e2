package vfs

import (
	"sort"
	"strings"
)

// DirEntry pairs a name with its record. Name is relative for direct
// children and absolute for descendants.
type DirEntry struct {
	Name  string
	Entry Entry
}

// childPrefix returns the scan prefix for a directory. The trailing slash
// is what keeps a directory like /doc from matching a sibling named
// /documents.
func childPrefix(dir string) string {
	if dir == rootPath {
		return rootPath
	}
	return dir + "/"
}

// children enumerates the direct children of dir, sorted by name. The
// caller has already validated that dir names an existing directory.
func (s *store) children(dir string) []DirEntry {
	prefix := childPrefix(dir)
	var out []DirEntry
	for path, e := range s.entries {
		if path == dir || !strings.HasPrefix(path, prefix) {
			continue
		}
		rel := path[len(prefix):]
		if strings.IndexByte(rel, '/') >= 0 {
			continue
		}
		out = append(out, DirEntry{Name: rel, Entry: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// descendants enumerates every entry transitively under dir, sorted by
// absolute path. The snapshot it returns is safe to iterate while the
// store is being mutated.
func (s *store) descendants(dir string) []DirEntry {
	prefix := childPrefix(dir)
	var out []DirEntry
	for path, e := range s.entries {
		if path == dir || !strings.HasPrefix(path, prefix) {
			continue
		}
		out = append(out, DirEntry{Name: path, Entry: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *store) hasDescendants(dir string) bool {
	prefix := childPrefix(dir)
	for path := range s.entries {
		if path != dir && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (s *store) countChildren(dir string) int {
	prefix := childPrefix(dir)
	n := 0
	for path := range s.entries {
		if path == dir || !strings.HasPrefix(path, prefix) {
			continue
		}
		if strings.IndexByte(path[len(prefix):], '/') < 0 {
			n++
		}
	}
	return n
}
