package vfs

import "strings"

// rootPath is the canonical root. It always exists and is never removable.
const rootPath = "/"

// Normalize converts input, absolute or relative to cursor, into a
// canonical absolute path: `/`-rooted, `.` and `..` resolved, no empty
// segments, no trailing slash except for the root itself.
//
// Normalize is pure and idempotent. `..` above the root is a no-op. The
// cursor is assumed to already be canonical.
func Normalize(input, cursor string) string {
	candidate := input
	if input == "" || input[0] != '/' {
		candidate = cursor
		if cursor != rootPath {
			candidate += "/"
		}
		candidate += input
	}

	segments := make([]string, 0, 8)
	for _, seg := range strings.Split(candidate, "/") {
		switch seg {
		case "", ".":
			// collapsed
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}

	if len(segments) == 0 {
		return rootPath
	}
	return "/" + strings.Join(segments, "/")
}

// Parent returns the directory portion of a canonical path. The parent of
// the root, and of any top-level entry, is the root.
func Parent(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i <= 0 {
		return rootPath
	}
	return path[:i]
}

// Base returns the final segment of a canonical path. The base of the
// root is the empty string.
func Base(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	return path[i+1:]
}
