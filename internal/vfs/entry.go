package vfs

import "time"

// Kind discriminates files from directories.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// String returns the snapshot-format tag for the kind.
func (k Kind) String() string {
	if k == KindDirectory {
		return "DIR"
	}
	return "FILE"
}

// DateLayout is the timestamp format used in listings and snapshots.
// Timestamps carry date granularity only.
const DateLayout = "02/01/2006"

// Entry is a single file or directory record. Directories never carry
// content and always report size zero; for files Size == len(Content).
type Entry struct {
	Kind     Kind
	Content  []byte
	Size     int
	Created  time.Time
	Modified time.Time
}

func newEntry(kind Kind, content []byte, now time.Time) Entry {
	return Entry{
		Kind:     kind,
		Content:  content,
		Size:     len(content),
		Created:  now,
		Modified: now,
	}
}

// today returns the current wall-clock time truncated to date granularity,
// matching DateLayout precision so snapshots round-trip exactly.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
