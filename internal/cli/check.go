package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/livebud/cli"
	"github.com/matthewmueller/dropfix"
)

type Check struct {
	Path    string
	Dirs    []string
	Exclude []string
	Protect string
	Show    string
	Size    bool
}

func (ch *Check) command(cli cli.Command) cli.Command {
	cmd := cli.Command("check", "report which directories Dropbox ignores")
	cmd.Flag("path", "dropbox folder (auto-detects if not specified)").String(&ch.Path).Default("")
	cmd.Flag("dirs", "directory names to check").Short('d').Optional().Strings(&ch.Dirs)
	cmd.Flag("exclude", "gitignore-style patterns to leave alone").Optional().Strings(&ch.Exclude)
	cmd.Flag("protect", "path never scanned or modified").String(&ch.Protect).Default("")
	cmd.Flag("show", "which groups to report").Enum(&ch.Show, "all", "ignored", "not-ignored").Default("all")
	cmd.Flag("size", "include the size of each directory").Bool(&ch.Size).Default(false)
	return cmd
}

func (c *CLI) Check(ctx context.Context, in *Check) error {
	protect, err := c.protectedPaths(in.Protect)
	if err != nil {
		return err
	}
	report, err := c.dropfix.Check(ctx, &dropfix.Check{
		Dir:     in.Path,
		Names:   in.Dirs,
		Exclude: in.Exclude,
		Protect: protect,
		Sizes:   in.Size,
	})
	if err != nil {
		return err
	}
	if report.Total() == 0 {
		fmt.Fprintf(c.Stdout, "No matching directories found under %s\n", report.Root)
		return nil
	}
	if in.Show == "all" || in.Show == "ignored" {
		for _, dir := range report.Ignored {
			fmt.Fprintf(c.Stdout, "%s %s%s\n", c.Color.Green("+"), dir.Path, c.size(dir))
		}
	}
	if in.Show == "all" || in.Show == "not-ignored" {
		for _, dir := range report.NotIgnored {
			fmt.Fprintf(c.Stdout, "%s %s%s\n", c.Color.Red("-"), dir.Path, c.size(dir))
		}
	}
	// Unknown states show regardless of the filter, they need investigating.
	for _, dir := range report.Unknown {
		fmt.Fprintf(c.Stdout, "%s %s: %s\n", c.Color.Red("!"), dir.Path, dir.Reason)
	}
	fmt.Fprintf(c.Stdout, "\n%d checked: %d ignored, %d not ignored", report.Total(), len(report.Ignored), len(report.NotIgnored))
	if len(report.Unknown) > 0 {
		fmt.Fprintf(c.Stdout, ", %d unknown", len(report.Unknown))
	}
	fmt.Fprintln(c.Stdout)
	return nil
}

func (c *CLI) size(dir *dropfix.Dir) string {
	if dir.Size == 0 {
		return ""
	}
	return " " + c.Color.Dim(humanize.Bytes(dir.Size))
}
