package attrs

import (
	"bytes"
	"fmt"
	"os"
)

// OS returns the Store for the current platform.
func OS() Store {
	return streamStore{}
}

// streamStore keeps the marker in an NTFS alternate data stream on the
// directory.
type streamStore struct{}

func (streamStore) Get(path string) (Status, error) {
	b, err := os.ReadFile(path + ":" + Name)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing stream and a missing directory look the same.
			if _, serr := os.Lstat(path); serr != nil {
				return Unknown, fmt.Errorf("attrs: %s: %w", path, serr)
			}
			return NotIgnored, nil
		}
		return Unknown, fmt.Errorf("attrs: reading %s stream on %s: %w", Name, path, err)
	}
	if bytes.Equal(bytes.TrimSpace(b), Value) {
		return Ignored, nil
	}
	return NotIgnored, nil
}

func (streamStore) Set(path string) error {
	if err := os.WriteFile(path+":"+Name, Value, 0644); err != nil {
		return fmt.Errorf("attrs: writing %s stream on %s: %w", Name, path, err)
	}
	return nil
}
