//go:build !linux && !darwin && !windows

package attrs

import (
	"fmt"
)

// OS returns the Store for the current platform.
func OS() Store {
	return unsupportedStore{}
}

type unsupportedStore struct{}

func (unsupportedStore) Get(path string) (Status, error) {
	return Unknown, fmt.Errorf("attrs: %s: %w", path, ErrUnsupported)
}

func (unsupportedStore) Set(path string) error {
	return fmt.Errorf("attrs: %s: %w", path, ErrUnsupported)
}
