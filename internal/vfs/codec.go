package vfs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Snapshot format: two leading comment lines, then one entry per line:
//
//	<TYPE>|<path>|<size>|<created>|<modified>|<data>
//
// TYPE is FILE or DIR. Data is everything after the fifth pipe and is
// written only for files. No escaping is performed, so file content
// containing '|' survives (it lands in the data remainder) but content
// containing newlines does not round-trip.
const (
	snapshotFieldCount = 6
	snapshotComment    = '#'
)

// Save serializes the whole namespace to filename, one line per entry,
// sorted by path.
func (n *Namespace) Save(filename string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	f, err := os.Create(filename)
	if err != nil {
		return wrapError(CodeIO, "save", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Memory File System Dump - %s\n", n.now().Format(DateLayout))
	fmt.Fprintln(w, "# Format: <type>|<path>|<size>|<created>|<modified>|<data>")

	if root, ok := n.store.get(rootPath); ok {
		writeRecord(w, rootPath, root)
	}
	for _, d := range n.store.descendants(rootPath) {
		writeRecord(w, d.Name, d.Entry)
	}

	if err := w.Flush(); err != nil {
		return wrapError(CodeIO, "save", filename, err)
	}
	return nil
}

func writeRecord(w *bufio.Writer, path string, e Entry) {
	fmt.Fprintf(w, "%s|%s|%d|%s|%s|",
		e.Kind, path, e.Size,
		e.Created.Format(DateLayout),
		e.Modified.Format(DateLayout),
	)
	if e.Kind == KindFile {
		w.Write(e.Content)
	}
	w.WriteByte('\n')
}

// Load replaces the entire namespace with the snapshot in filename. It is
// a full overwrite, not a merge. Comment lines and blank lines are
// ignored; malformed records are skipped with a warning. The root
// directory is guaranteed to exist afterwards even if the snapshot lacks
// it. The cursor is reset to the root when its directory did not survive
// the load.
func (n *Namespace) Load(filename string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	f, err := os.Open(filename)
	if err != nil {
		return wrapError(CodeIO, "load", filename, err)
	}
	defer f.Close()

	fresh := &store{entries: make(map[string]Entry)}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if line == "" || line[0] == snapshotComment {
			continue
		}
		path, entry, perr := parseRecord(line)
		if perr != nil {
			n.warnSkip(lineNum, perr.Error())
			continue
		}
		fresh.entries[path] = entry
	}
	if err := sc.Err(); err != nil {
		return wrapError(CodeIO, "load", filename, err)
	}

	if !fresh.existsKind(rootPath, KindDirectory) {
		fresh.entries[rootPath] = newEntry(KindDirectory, nil, n.now())
	}
	n.store = fresh
	if !n.store.existsKind(n.cursor, KindDirectory) {
		n.cursor = rootPath
	}
	return nil
}

// parseRecord decodes one snapshot line. The reported error carries
// CodeMalformedRecord; callers treat it as recoverable.
func parseRecord(line string) (string, Entry, error) {
	fields := strings.SplitN(line, "|", snapshotFieldCount)
	if len(fields) != snapshotFieldCount {
		return "", Entry{}, newError(CodeMalformedRecord, "load", line)
	}

	var kind Kind
	switch fields[0] {
	case "FILE":
		kind = KindFile
	case "DIR":
		kind = KindDirectory
	default:
		return "", Entry{}, newError(CodeMalformedRecord, "load", fields[1])
	}

	path := fields[1]
	if path == "" || path[0] != '/' {
		return "", Entry{}, newError(CodeMalformedRecord, "load", path)
	}

	if _, err := strconv.Atoi(fields[2]); err != nil {
		return "", Entry{}, wrapError(CodeMalformedRecord, "load", path, err)
	}
	created, err := time.Parse(DateLayout, fields[3])
	if err != nil {
		return "", Entry{}, wrapError(CodeMalformedRecord, "load", path, err)
	}
	modified, err := time.Parse(DateLayout, fields[4])
	if err != nil {
		return "", Entry{}, wrapError(CodeMalformedRecord, "load", path, err)
	}

	e := Entry{Kind: kind, Created: created, Modified: modified}
	if kind == KindFile {
		// Size is recomputed from the data remainder so the size/content
		// invariant holds even when the recorded size disagrees.
		e.Content = []byte(fields[5])
		e.Size = len(e.Content)
	}
	return path, e, nil
}
