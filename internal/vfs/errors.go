package vfs

import (
	"errors"
	"fmt"
)

// Code classifies namespace errors.
type Code int

const (
	// CodeNotFound reports that a path names no entry.
	CodeNotFound Code = iota + 1
	// CodeAlreadyExists reports a creation or move/copy target collision.
	CodeAlreadyExists
	// CodeWrongKind reports that an operation expected a file and found a
	// directory, or the reverse.
	CodeWrongKind
	// CodeDirectoryNotEmpty reports a non-recursive delete of a populated
	// directory.
	CodeDirectoryNotEmpty
	// CodeInvalid reports an argument the namespace cannot act on, such as
	// removing the root or moving a directory into its own subtree.
	CodeInvalid
	// CodeIO reports that a snapshot file could not be opened or written.
	CodeIO
	// CodeMalformedRecord reports an unparseable snapshot line. It is
	// recoverable: loading skips the line and continues.
	CodeMalformedRecord
)

func (c Code) String() string {
	switch c {
	case CodeNotFound:
		return "not found"
	case CodeAlreadyExists:
		return "already exists"
	case CodeWrongKind:
		return "wrong kind"
	case CodeDirectoryNotEmpty:
		return "directory not empty"
	case CodeInvalid:
		return "invalid argument"
	case CodeIO:
		return "io failure"
	case CodeMalformedRecord:
		return "malformed record"
	default:
		return fmt.Sprintf("code %d", int(c))
	}
}

// Error is the typed failure returned by every namespace operation.
type Error struct {
	Code Code
	Op   string // operation that failed, e.g. "create", "move"
	Path string // canonical path that caused the failure
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Code, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two namespace errors by code, so callers can compare against
// a bare &Error{Code: ...} sentinel.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

func newError(code Code, op, path string) *Error {
	return &Error{Code: code, Op: op, Path: path}
}

func wrapError(code Code, op, path string, err error) *Error {
	return &Error{Code: code, Op: op, Path: path, Err: err}
}

func is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsNotFound reports whether err indicates an absent path.
func IsNotFound(err error) bool { return is(err, CodeNotFound) }

// IsAlreadyExists reports whether err indicates a path collision.
func IsAlreadyExists(err error) bool { return is(err, CodeAlreadyExists) }

// IsWrongKind reports whether err indicates a file/directory mismatch.
func IsWrongKind(err error) bool { return is(err, CodeWrongKind) }

// IsNotEmpty reports whether err indicates a populated directory.
func IsNotEmpty(err error) bool { return is(err, CodeDirectoryNotEmpty) }

// IsInvalid reports whether err indicates an unactionable argument.
func IsInvalid(err error) bool { return is(err, CodeInvalid) }

// IsIO reports whether err indicates a snapshot file access failure.
func IsIO(err error) bool { return is(err, CodeIO) }
