package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/livebud/cli"
	"github.com/livebud/color"
	"github.com/matthewmueller/dropfix"
	"github.com/matthewmueller/dropfix/internal/prompt"
	"github.com/matthewmueller/logs"
)

// Version is stamped by the release build.
var Version = "devel"

func Run() int {
	cli := Default()
	ctx := context.Background()
	err := cli.Parse(ctx, os.Args[1:]...)
	if err != nil {
		logs.ErrorContext(ctx, err.Error())
		return 1
	}
	return 0
}

func Default() *CLI {
	return &CLI{
		os.Stdout,
		prompt.Default(),
		color.Default(),
		"info",
		nil,
		nil,
	}
}

type CLI struct {
	Stdout io.Writer
	Prompt prompt.Prompter
	Color  color.Writer

	// global flag
	logLevel string

	// Set after parsing
	log     *slog.Logger
	dropfix *dropfix.Client
}

func (c *CLI) logger(logLevel string) (*slog.Logger, error) {
	level, err := logs.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("cli: parsing log level: %w", err)
	}
	log := logs.New(logs.Filter(level, logs.Console(c.Stdout)))
	return log, nil
}

func (c *CLI) wrap(fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		c.log, err = c.logger(c.logLevel)
		if err != nil {
			return err
		}
		c.dropfix = dropfix.New(c.log)
		return fn(ctx)
	}
}

// protectedPaths defaults to the process working directory, so the tool
// never operates on wherever it was launched from.
func (c *CLI) protectedPaths(flag string) ([]string, error) {
	if flag != "" {
		return []string{flag}, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cli: getting working directory: %w", err)
	}
	return []string{wd}, nil
}

func (c *CLI) listDirs(found []*dropfix.Dir) {
	for _, dir := range found {
		fmt.Fprintf(c.Stdout, "%s %s\n", c.Color.Dim("-"), dir.Path)
	}
}

func (c *CLI) Parse(ctx context.Context, args ...string) error {
	cli := cli.New("dropfix", "keep development directories out of Dropbox sync")
	cli.Flag("log", "log configures the log level").Enum(&c.logLevel, "debug", "info", "warn", "error").Default("info")

	{ // ignore [--path=<root>] [--dirs=<name>...] [--dry-run] [--yes]
		in := &Ignore{}
		cmd := in.command(cli)
		cmd.Run(c.wrap(func(ctx context.Context) error {
			return c.Ignore(ctx, in)
		}))
	}

	{ // check [--path=<root>] [--dirs=<name>...] [--show=<filter>] [--size]
		in := &Check{}
		cmd := in.command(cli)
		cmd.Run(c.wrap(func(ctx context.Context) error {
			return c.Check(ctx, in)
		}))
	}

	{ // version
		cmd := cli.Command("version", "print the version")
		cmd.Run(func(ctx context.Context) error {
			fmt.Fprintln(c.Stdout, Version)
			return nil
		})
	}

	return cli.Parse(ctx, args...)
}
