package main

import (
	"os"

	"github.com/matthewmueller/dropfix/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
