package vfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNamespace(t *testing.T) *Namespace {
	t.Helper()
	return New(nil)
}

// allPaths snapshots every stored path for invariant checks.
func allPaths(n *Namespace) map[string]Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make(map[string]Kind, n.store.len())
	for p, e := range n.store.entries {
		out[p] = e.Kind
	}
	return out
}

// assertNoOrphans verifies that every non-root path has an existing
// parent directory.
func assertNoOrphans(t *testing.T, n *Namespace) {
	t.Helper()
	paths := allPaths(n)
	for p := range paths {
		if p == "/" {
			continue
		}
		kind, ok := paths[Parent(p)]
		require.True(t, ok, "parent of %s missing", p)
		require.Equal(t, KindDirectory, kind, "parent of %s is not a directory", p)
	}
}

func TestCreateReadWrite(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/documents"))
	require.NoError(t, n.Create("/documents/a.txt"))
	require.NoError(t, n.Write("/documents/a.txt", []byte("hi")))

	content, err := n.Read("/documents/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(content))

	info, err := n.Info("/documents/a.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, info.Size)
	assert.Equal(t, KindFile, info.Kind)
}

func TestCreateCollision(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Create("/a"))
	err := n.Create("/a")
	assert.True(t, IsAlreadyExists(err))

	err = n.Mkdir("/a")
	assert.True(t, IsAlreadyExists(err))
}

func TestWriteCreatesMissingFile(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Write("/deep/path/file.txt", []byte("data")))

	content, err := n.Read("/deep/path/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	kind, ok := n.Stat("/deep/path")
	require.True(t, ok)
	assert.Equal(t, KindDirectory, kind)
	assertNoOrphans(t, n)
}

func TestWriteToDirectoryFails(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/d"))
	assert.True(t, IsWrongKind(n.Write("/d", []byte("x"))))
}

func TestReadErrors(t *testing.T) {
	n := newTestNamespace(t)

	_, err := n.Read("/missing")
	assert.True(t, IsNotFound(err))

	require.NoError(t, n.Mkdir("/d"))
	_, err = n.Read("/d")
	assert.True(t, IsWrongKind(err))
}

func TestEnsureAncestors(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Create("/a/b/c/d.txt"))
	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		kind, ok := n.Stat(dir)
		require.True(t, ok, "expected %s to exist", dir)
		assert.Equal(t, KindDirectory, kind)
	}
	assertNoOrphans(t, n)
}

func TestEnsureAncestorsFileConflict(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Create("/a"))
	err := n.Create("/a/b")
	assert.True(t, IsWrongKind(err))

	// The failed create left nothing behind.
	_, ok := n.Stat("/a/b")
	assert.False(t, ok)
}

func TestDeleteNonRecursive(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/p"))
	require.NoError(t, n.Create("/p/x"))

	err := n.Remove("/p", false)
	assert.True(t, IsNotEmpty(err))

	require.NoError(t, n.Remove("/p", true))
	_, ok := n.Stat("/p/x")
	assert.False(t, ok)
	_, ok = n.Stat("/p")
	assert.False(t, ok)
}

func TestDeleteEmptyDirectory(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/empty"))
	require.NoError(t, n.Delete("/empty"))
	_, ok := n.Stat("/empty")
	assert.False(t, ok)
}

func TestRootNotRemovable(t *testing.T) {
	n := newTestNamespace(t)

	assert.True(t, IsInvalid(n.Delete("/")))
	assert.True(t, IsInvalid(n.Remove("/", true)))

	_, ok := n.Stat("/")
	assert.True(t, ok)
}

func TestMoveFile(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Write("/a.txt", []byte("body")))
	require.NoError(t, n.Move("/a.txt", "/b.txt"))

	_, ok := n.Stat("/a.txt")
	assert.False(t, ok)
	content, err := n.Read("/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "body", string(content))
}

func TestMoveDirectorySubtree(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/src"))
	require.NoError(t, n.Write("/src/f1", []byte("one")))
	require.NoError(t, n.Mkdir("/src/sub"))
	require.NoError(t, n.Write("/src/sub/f2", []byte("two")))

	require.NoError(t, n.Move("/src", "/dst"))

	for _, gone := range []string{"/src", "/src/f1", "/src/sub", "/src/sub/f2"} {
		_, ok := n.Stat(gone)
		assert.False(t, ok, "expected %s to be gone", gone)
	}

	content, err := n.Read("/dst/sub/f2")
	require.NoError(t, err)
	assert.Equal(t, "two", string(content))
	assertNoOrphans(t, n)
}

func TestMoveCollisionLeavesStoreUnchanged(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Create("/a"))
	require.NoError(t, n.Create("/b"))

	before := allPaths(n)
	err := n.Move("/a", "/b")
	assert.True(t, IsAlreadyExists(err))
	assert.Equal(t, before, allPaths(n))
}

func TestMoveDirectoryCollisionAtomic(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/d"))
	require.NoError(t, n.Write("/d/f", []byte("x")))
	require.NoError(t, n.Create("/taken"))

	before := allPaths(n)
	err := n.Move("/d", "/taken")
	assert.True(t, IsAlreadyExists(err))
	assert.Equal(t, before, allPaths(n))
}

func TestMoveIntoOwnSubtree(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/d"))
	require.NoError(t, n.Create("/d/f"))

	before := allPaths(n)
	assert.True(t, IsInvalid(n.Move("/d", "/d/inner")))
	assert.Equal(t, before, allPaths(n))
}

func TestMoveMissingSource(t *testing.T) {
	n := newTestNamespace(t)
	assert.True(t, IsNotFound(n.Move("/nope", "/dst")))
}

func TestMovePreservesTimestamps(t *testing.T) {
	n := newTestNamespace(t)

	past := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return past }
	require.NoError(t, n.Mkdir("/d"))
	require.NoError(t, n.Write("/d/f", []byte("x")))

	later := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return later }
	require.NoError(t, n.Move("/d", "/e"))

	info, err := n.Info("/e/f")
	require.NoError(t, err)
	assert.Equal(t, past, info.Created)
	assert.Equal(t, past, info.Modified)
}

func TestCopyFreshTimestamps(t *testing.T) {
	n := newTestNamespace(t)

	past := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return past }
	require.NoError(t, n.Mkdir("/src"))
	require.NoError(t, n.Write("/src/f", []byte("body")))

	copyTime := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return copyTime }
	require.NoError(t, n.Copy("/src", "/dst"))

	// Copies carry the copy time.
	for _, p := range []string{"/dst", "/dst/f"} {
		info, err := n.Info(p)
		require.NoError(t, err)
		assert.Equal(t, copyTime, info.Created, "created of %s", p)
		assert.Equal(t, copyTime, info.Modified, "modified of %s", p)
	}

	// Source is untouched, content duplicated.
	info, err := n.Info("/src/f")
	require.NoError(t, err)
	assert.Equal(t, past, info.Created)

	content, err := n.Read("/dst/f")
	require.NoError(t, err)
	assert.Equal(t, "body", string(content))
}

func TestCopyCollision(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Create("/a"))
	require.NoError(t, n.Create("/b"))
	assert.True(t, IsAlreadyExists(n.Copy("/a", "/b")))
}

func TestSearch(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Write("/docs/report.txt", nil))
	require.NoError(t, n.Write("/docs/notes.md", nil))
	require.NoError(t, n.Write("/other/report_final.txt", nil))

	matches := n.Search("report")
	require.Len(t, matches, 2)
	assert.Equal(t, "/docs/report.txt", matches[0].Path)
	assert.Equal(t, "/other/report_final.txt", matches[1].Path)

	// Pattern matches the name, not the whole path.
	assert.Empty(t, n.Search("docs/report"))
}

func TestSearchGlob(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Write("/docs/a.txt", nil))
	require.NoError(t, n.Write("/docs/sub/b.txt", nil))
	require.NoError(t, n.Write("/docs/c.md", nil))

	matches, err := n.SearchGlob("/docs/**/*.txt")
	require.NoError(t, err)
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, m.Path)
	}
	assert.Contains(t, paths, "/docs/sub/b.txt")
	assert.NotContains(t, paths, "/docs/c.md")

	_, err = n.SearchGlob("[")
	assert.True(t, IsInvalid(err))
}

func TestChdirAndRelativeOps(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/work"))
	require.NoError(t, n.Chdir("/work"))
	assert.Equal(t, "/work", n.Cwd())

	require.NoError(t, n.Create("notes.txt"))
	_, ok := n.Stat("/work/notes.txt")
	assert.True(t, ok)

	require.NoError(t, n.Chdir(".."))
	assert.Equal(t, "/", n.Cwd())
}

func TestChdirErrors(t *testing.T) {
	n := newTestNamespace(t)

	assert.True(t, IsNotFound(n.Chdir("/missing")))

	require.NoError(t, n.Create("/f"))
	assert.True(t, IsWrongKind(n.Chdir("/f")))
	assert.Equal(t, "/", n.Cwd())
}

func TestInfoDirectoryChildren(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/d"))
	require.NoError(t, n.Create("/d/a"))
	require.NoError(t, n.Create("/d/b"))
	require.NoError(t, n.Create("/d/sub/nested"))

	info, err := n.Info("/d")
	require.NoError(t, err)
	// Direct children only: a, b and sub.
	assert.Equal(t, 3, info.Children)
}

func TestStats(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Mkdir("/d"))
	require.NoError(t, n.Write("/d/a", []byte("12345")))
	require.NoError(t, n.Write("/d/b", []byte("123")))

	s := n.Stats()
	assert.Equal(t, 4, s.Entries) // root, /d, two files
	assert.Equal(t, 2, s.Files)
	assert.Equal(t, 2, s.Directories)
	assert.Equal(t, 8, s.TotalBytes)
}

func TestNoOrphansAfterMixedOperations(t *testing.T) {
	n := newTestNamespace(t)

	require.NoError(t, n.Create("/a/b/c"))
	require.NoError(t, n.Write("/x/y/z.txt", []byte("v")))
	require.NoError(t, n.Mkdir("/m/n"))
	require.NoError(t, n.Move("/a", "/moved"))
	require.NoError(t, n.Copy("/x", "/copied"))
	require.NoError(t, n.Remove("/m", true))

	assertNoOrphans(t, n)
}
