package dropfix

import (
	"context"
)

// Ignore marks every matched directory so Dropbox stops syncing it.
type Ignore struct {
	Dir     string
	Names   []string
	Exclude []string
	Protect []string

	// DryRun reports what would change without writing anything.
	DryRun bool

	// Confirm, when set, is called with the matched directories before
	// anything is written. Returning false cancels the run. Nil means
	// proceed without asking.
	Confirm func(found []*Dir) (bool, error)

	// Report, when set, is called after each attempted write.
	Report func(n, total int, dir *Dir, err error)
}

// Summary describes what an ignore run did.
type Summary struct {
	Root      string
	Dirs      []*Dir
	Found     int
	Ignored   int
	Cancelled bool
	DryRun    bool
	Failures  []*Failure
}

// Failure is a directory the marker couldn't be written to.
type Failure struct {
	Path   string
	Reason string
}

func (c *Client) Ignore(ctx context.Context, in *Ignore) (*Summary, error) {
	root, found, err := c.Find(ctx, &Find{in.Dir, in.Names, in.Exclude, in.Protect})
	if err != nil {
		return nil, err
	}
	summary := &Summary{
		Root:   root,
		Dirs:   found,
		Found:  len(found),
		DryRun: in.DryRun,
	}
	if len(found) == 0 || in.DryRun {
		return summary, nil
	}
	if in.Confirm != nil {
		ok, err := in.Confirm(found)
		if err != nil {
			return nil, err
		}
		if !ok {
			summary.Cancelled = true
			return summary, nil
		}
	}
	// A failed write never stops the rest of the batch.
	for i, dir := range found {
		err := c.attrs.Set(dir.Path)
		if err != nil {
			c.log.ErrorContext(ctx, "dropfix: ignoring directory failed", "path", dir.Path, "err", err)
			summary.Failures = append(summary.Failures, &Failure{Path: dir.Path, Reason: err.Error()})
		} else {
			c.log.DebugContext(ctx, "dropfix: ignored directory", "path", dir.Path)
			summary.Ignored++
		}
		if in.Report != nil {
			in.Report(i+1, len(found), dir, err)
		}
	}
	return summary, nil
}
