package attrs

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// The attr(1) tool Dropbox's docs reference writes into the user
// namespace, so on Linux the marker lands under a user. prefix.
const xattrName = "user." + Name

// OS returns the Store for the current platform.
func OS() Store {
	return xattrStore{}
}

type xattrStore struct{}

func (xattrStore) Get(path string) (Status, error) {
	buf := make([]byte, 64)
	size, err := unix.Lgetxattr(path, xattrName, buf)
	if errors.Is(err, unix.ERANGE) {
		size, err = unix.Lgetxattr(path, xattrName, nil)
		if err == nil {
			buf = make([]byte, size)
			size, err = unix.Lgetxattr(path, xattrName, buf)
		}
	}
	switch {
	case err == nil:
	case errors.Is(err, unix.ENODATA):
		return NotIgnored, nil
	case errors.Is(err, unix.ENOTSUP):
		return Unknown, fmt.Errorf("attrs: %s: %w", path, ErrUnsupported)
	default:
		return Unknown, fmt.Errorf("attrs: reading %s on %s: %w", xattrName, path, err)
	}
	if bytes.Equal(buf[:size], Value) {
		return Ignored, nil
	}
	return NotIgnored, nil
}

func (xattrStore) Set(path string) error {
	if err := unix.Lsetxattr(path, xattrName, Value, 0); err != nil {
		if errors.Is(err, unix.ENOTSUP) {
			return fmt.Errorf("attrs: %s: %w", path, ErrUnsupported)
		}
		return fmt.Errorf("attrs: writing %s on %s: %w", xattrName, path, err)
	}
	return nil
}
