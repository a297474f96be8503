// Package dropfix marks development directories under a Dropbox folder
// with the attribute that tells the sync client to skip them.
package dropfix

import (
	"log/slog"

	"github.com/matthewmueller/dropfix/internal/attrs"
)

// DefaultNames are the directories ignored when none are specified.
var DefaultNames = []string{".venv", ".conda", "node_modules"}

func New(log *slog.Logger) *Client {
	return &Client{log, attrs.OS()}
}

type Client struct {
	log   *slog.Logger
	attrs attrs.Store
}
