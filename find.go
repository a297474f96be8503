package dropfix

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matthewmueller/dropfix/internal/dirs"
	"github.com/matthewmueller/dropfix/internal/dropbox"
	"github.com/matthewmueller/virt"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Find selects the directories an ignore or check run would operate on.
type Find struct {
	Dir     string   // scan root (default: the detected Dropbox folder)
	Names   []string // target directory basenames (default: DefaultNames)
	Exclude []string // gitignore-style patterns to leave alone
	Protect []string // paths never scanned or modified
}

// Dir is a matched directory under the scan root.
type Dir struct {
	Path   string // absolute path
	Name   string // the target name it matched
	Size   uint64 // apparent size, when requested
	Reason string // why the marker state couldn't be read, when it couldn't
}

// Find resolves the scan root and returns every matching directory under
// it, in walk order.
func (c *Client) Find(ctx context.Context, in *Find) (root string, found []*Dir, err error) {
	root, err = dropbox.Resolve(in.Dir)
	if err != nil {
		return "", nil, err
	}
	names := in.Names
	if len(names) == 0 {
		names = DefaultNames
	}
	skip, err := skipFunc(root, in.Protect, in.Exclude)
	if err != nil {
		return "", nil, err
	}
	c.log.DebugContext(ctx, "dropfix: scanning", "root", root, "names", names)
	matches, warnings, err := dirs.Find(virt.OS(root), names, skip)
	if err != nil {
		return "", nil, err
	}
	for _, warning := range warnings {
		c.log.WarnContext(ctx, "dropfix: skipping unreadable directory", "path", warning.Path, "err", warning.Err)
	}
	for _, match := range matches {
		found = append(found, &Dir{
			Path: filepath.Join(root, filepath.FromSlash(match.Path)),
			Name: match.Name,
		})
	}
	return root, found, nil
}

// skipFunc folds the protected paths and exclude patterns into a single
// predicate over root-relative paths.
func skipFunc(root string, protect, exclude []string) (func(path string) bool, error) {
	var protected []string
	for _, p := range protect {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("dropfix: resolving protected path %s: %w", p, err)
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			// Outside the root, nothing to protect.
			continue
		}
		if rel == "." {
			// The root itself is protected, skip everything.
			return func(string) bool { return true }, nil
		}
		protected = append(protected, filepath.ToSlash(rel))
	}
	ignorer := gitignore.CompileIgnoreLines(exclude...)
	return func(path string) bool {
		for _, p := range protected {
			if path == p || strings.HasPrefix(path, p+"/") {
				return true
			}
		}
		return len(exclude) > 0 && ignorer.MatchesPath(path)
	}, nil
}
