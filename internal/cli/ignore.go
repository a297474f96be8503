package cli

import (
	"context"
	"fmt"

	"github.com/livebud/cli"
	"github.com/matthewmueller/dropfix"
)

type Ignore struct {
	Path    string
	Dirs    []string
	Exclude []string
	Protect string
	DryRun  bool
	Yes     bool
}

func (i *Ignore) command(cli cli.Command) cli.Command {
	cmd := cli.Command("ignore", "mark matching directories so Dropbox skips them")
	cmd.Flag("path", "dropbox folder (auto-detects if not specified)").String(&i.Path).Default("")
	cmd.Flag("dirs", "directory names to ignore").Short('d').Optional().Strings(&i.Dirs)
	cmd.Flag("exclude", "gitignore-style patterns to leave alone").Optional().Strings(&i.Exclude)
	cmd.Flag("protect", "path never scanned or modified").String(&i.Protect).Default("")
	cmd.Flag("dry-run", "preview changes without applying them").Bool(&i.DryRun).Default(false)
	cmd.Flag("yes", "skip the confirmation prompt").Short('y').Bool(&i.Yes).Default(false)
	return cmd
}

func (c *CLI) Ignore(ctx context.Context, in *Ignore) error {
	protect, err := c.protectedPaths(in.Protect)
	if err != nil {
		return err
	}
	ignore := &dropfix.Ignore{
		Dir:     in.Path,
		Names:   in.Dirs,
		Exclude: in.Exclude,
		Protect: protect,
		DryRun:  in.DryRun,
	}
	if !in.Yes && !in.DryRun {
		ignore.Confirm = func(found []*dropfix.Dir) (bool, error) {
			c.listDirs(found)
			return c.Prompt.Confirm("\nIgnore %d directories? (y/n): ", len(found)), nil
		}
	}
	ignore.Report = func(n, total int, dir *dropfix.Dir, err error) {
		if err != nil {
			fmt.Fprintf(c.Stdout, "(%d/%d) %s %s\n", n, total, c.Color.Red("x"), dir.Path)
			return
		}
		fmt.Fprintf(c.Stdout, "(%d/%d) %s %s\n", n, total, c.Color.Green("+"), dir.Path)
	}
	summary, err := c.dropfix.Ignore(ctx, ignore)
	if err != nil {
		return err
	}
	c.printSummary(summary)
	return nil
}

func (c *CLI) printSummary(s *dropfix.Summary) {
	switch {
	case s.Found == 0:
		fmt.Fprintf(c.Stdout, "No matching directories found under %s\n", s.Root)
		return
	case s.Cancelled:
		fmt.Fprintln(c.Stdout, c.Color.Dim("Cancelled, nothing changed"))
		return
	case s.DryRun:
		c.listDirs(s.Dirs)
		fmt.Fprintf(c.Stdout, "\nDry run: would ignore %d directories under %s\n", s.Found, s.Root)
		return
	}
	fmt.Fprintf(c.Stdout, "\nIgnored %d of %d directories\n", s.Ignored, s.Found)
	for _, failure := range s.Failures {
		fmt.Fprintf(c.Stdout, "%s %s: %s\n", c.Color.Red("x"), failure.Path, failure.Reason)
	}
	if s.Ignored > 0 {
		fmt.Fprintln(c.Stdout, c.Color.Dim("Dropbox may need a restart to pick up the changes"))
	}
}
