package dropfix

import (
	"context"

	"github.com/matthewmueller/dropfix/internal/attrs"
	"github.com/matthewmueller/dropfix/internal/dirs"
	"github.com/matthewmueller/virt"
)

// Check reports the marker state of every matched directory. Nothing is
// mutated.
type Check struct {
	Dir     string
	Names   []string
	Exclude []string
	Protect []string

	// Sizes also computes the apparent size of each matched directory.
	// This descends into the matched directories, so it can be slow.
	Sizes bool
}

// Report partitions matched directories by their current marker state.
type Report struct {
	Root       string
	Ignored    []*Dir
	NotIgnored []*Dir
	Unknown    []*Dir
}

func (r *Report) Total() int {
	return len(r.Ignored) + len(r.NotIgnored) + len(r.Unknown)
}

func (c *Client) Check(ctx context.Context, in *Check) (*Report, error) {
	root, found, err := c.Find(ctx, &Find{in.Dir, in.Names, in.Exclude, in.Protect})
	if err != nil {
		return nil, err
	}
	report := &Report{Root: root}
	for _, dir := range found {
		if in.Sizes {
			if size, err := dirs.Size(virt.OS(dir.Path), "."); err == nil {
				dir.Size = size
			}
		}
		status, err := c.attrs.Get(dir.Path)
		switch status {
		case attrs.Ignored:
			report.Ignored = append(report.Ignored, dir)
		case attrs.NotIgnored:
			report.NotIgnored = append(report.NotIgnored, dir)
		default:
			if err != nil {
				dir.Reason = err.Error()
			}
			c.log.WarnContext(ctx, "dropfix: couldn't read marker", "path", dir.Path, "err", err)
			report.Unknown = append(report.Unknown, dir)
		}
	}
	return report, nil
}
