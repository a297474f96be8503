// Package dirs finds target directories under a scan root.
package dirs

import (
	"fmt"
	"io/fs"
)

// Dir is a matched directory within the scan root.
type Dir struct {
	Path string // slash-separated, relative to the root
	Name string // the target name it matched
}

// Warning records a subtree the walk couldn't read.
type Warning struct {
	Path string
	Err  error
}

// Find walks fsys and returns every directory whose basename is one of
// names, in lexical order. Matched directories are not descended into.
// Directories for which skip returns true are neither returned nor
// descended. Unreadable subtrees become warnings and the walk continues.
// Symlinks are never followed.
func Find(fsys fs.FS, names []string, skip func(path string) bool) (found []*Dir, warnings []*Warning, err error) {
	match := make(map[string]bool, len(names))
	for _, name := range names {
		match[name] = true
	}
	err = fs.WalkDir(fsys, ".", func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, &Warning{Path: path, Err: err})
			return nil
		}
		if !de.IsDir() || path == "." {
			return nil
		}
		if skip != nil && skip(path) {
			return fs.SkipDir
		}
		if match[de.Name()] {
			found = append(found, &Dir{Path: path, Name: de.Name()})
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("dirs: walking: %w", err)
	}
	return found, warnings, nil
}

// Size returns the apparent size of the directory at dir: the sum of the
// sizes of every regular file under it. Unreadable entries are skipped.
func Size(fsys fs.FS, dir string) (total uint64, err error) {
	err = fs.WalkDir(fsys, dir, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !de.Type().IsRegular() {
			return nil
		}
		info, err := de.Info()
		if err != nil {
			return nil
		}
		total += uint64(info.Size())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("dirs: sizing %s: %w", dir, err)
	}
	return total, nil
}
