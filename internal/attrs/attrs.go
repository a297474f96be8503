// Package attrs reads and writes the marker Dropbox uses to exclude a
// directory from syncing. The marker lives in platform metadata: extended
// attributes on Linux and macOS, an alternate data stream on Windows.
package attrs

import (
	"errors"
)

// Name of the marker, as documented by Dropbox.
const Name = "com.dropbox.ignored"

// Value Dropbox expects the marker to carry.
var Value = []byte("1")

// ErrUnsupported means the underlying filesystem can't store the marker.
var ErrUnsupported = errors.New("attrs: attributes not supported")

// Status is the marker state of a directory.
type Status int

const (
	// Unknown means the marker could not be read.
	Unknown Status = iota
	Ignored
	NotIgnored
)

func (s Status) String() string {
	switch s {
	case Ignored:
		return "ignored"
	case NotIgnored:
		return "not ignored"
	default:
		return "unknown"
	}
}

// Store reads and writes the marker on a directory.
type Store interface {
	// Get returns the marker state. Unknown comes with an error
	// explaining why the state couldn't be read.
	Get(path string) (Status, error)
	// Set writes the marker. Setting an already-marked directory
	// succeeds. Directory contents are never touched.
	Set(path string) error
}
