// Package dropbox locates the Dropbox folder for the current user.
package dropbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrNotFound means no Dropbox folder could be located.
var ErrNotFound = errors.New("dropbox: folder not found")

// Resolve validates an explicit root, or falls back to Find when explicit
// is empty. The returned path is absolute. Resolve never creates anything.
func Resolve(explicit string) (string, error) {
	if explicit == "" {
		return Find()
	}
	abs, err := filepath.Abs(explicit)
	if err != nil {
		return "", fmt.Errorf("dropbox: resolving %s: %w", explicit, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("dropbox: %s: %w", abs, ErrNotFound)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("dropbox: %s is not a directory: %w", abs, ErrNotFound)
	}
	return abs, nil
}

// Find probes the locations the Dropbox client conventionally uses: the
// folders recorded in its info.json manifest first, then the well-known
// home-relative locations.
func Find() (string, error) {
	for _, candidate := range candidates() {
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func candidates() (paths []string) {
	paths = append(paths, manifestPaths()...)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, "Dropbox"),
			filepath.Join(home, "Documents", "Dropbox"),
		)
	}
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			paths = append(paths, filepath.Join(profile, "Dropbox"))
		}
		if drive, dir := os.Getenv("HOMEDRIVE"), os.Getenv("HOMEPATH"); drive != "" && dir != "" {
			paths = append(paths, filepath.Join(drive+dir, "Dropbox"))
		}
	}
	return paths
}

// manifest mirrors the per-account entries in Dropbox's info.json.
type manifest map[string]struct {
	Path string `json:"path"`
}

func manifestPaths() (paths []string) {
	for _, file := range manifestFiles() {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		var m manifest
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		// Personal accounts take priority over business accounts.
		for _, account := range []string{"personal", "business"} {
			if entry, ok := m[account]; ok && entry.Path != "" {
				paths = append(paths, entry.Path)
			}
		}
	}
	return paths
}

func manifestFiles() (files []string) {
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".dropbox", "info.json"))
	}
	if runtime.GOOS == "windows" {
		for _, env := range []string{"APPDATA", "LOCALAPPDATA"} {
			if dir := os.Getenv(env); dir != "" {
				files = append(files, filepath.Join(dir, "Dropbox", "info.json"))
			}
		}
	}
	return files
}
