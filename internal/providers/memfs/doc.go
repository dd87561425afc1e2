// Package memfs exposes the in-memory namespace as a tool-based service
// provider.
//
// The provider is organized into specialized modules:
//   - basic: file operations (create, write, read, delete) and their
//     batch variants
//   - directory: directory operations (mkdir, rmdir, list, cd, pwd)
//   - operations: entry manipulation (move, copy, info, stats)
//   - search: substring and glob search over stored paths
//   - persist: snapshot save/load
//
// Every tool takes already-tokenized parameters and returns a structured
// result; rendering is the caller's concern. Typed namespace errors are
// mapped to result failures, never panics.
package memfs
