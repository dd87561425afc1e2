// Package vfs implements an in-memory hierarchical namespace with
// Unix-like path semantics.
//
// The namespace is a flat map from canonical absolute path to entry;
// hierarchy is implicit in path-prefix relationships between keys. The
// package is organized into:
//   - path: canonical path normalization and decomposition
//   - store: the path-keyed entry map and its access primitives
//   - resolver: child and descendant enumeration by prefix scan
//   - namespace: mutation engine (create, write, move, copy, delete)
//   - batch: concurrent multi-target dispatch
//   - codec: line-oriented snapshot save/load
//
// All public operations on a Namespace are safe for concurrent use: a
// single exclusive lock guards the store and the working-directory
// cursor for the full duration of each call.
package vfs
