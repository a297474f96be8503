package dropbox_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/matryer/is"
	"github.com/matthewmueller/dropfix/internal/dropbox"
)

func setHome(t *testing.T, home string) {
	t.Helper()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
}

func TestResolveExplicit(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	root, err := dropbox.Resolve(dir)
	is.NoErr(err)
	is.Equal(root, dir)
}

func TestResolveMissing(t *testing.T) {
	is := is.New(t)
	_, err := dropbox.Resolve(filepath.Join(t.TempDir(), "nope"))
	is.True(errors.Is(err, dropbox.ErrNotFound))
}

func TestResolveFile(t *testing.T) {
	is := is.New(t)
	file := filepath.Join(t.TempDir(), "Dropbox")
	is.NoErr(os.WriteFile(file, []byte("not a directory"), 0644))
	_, err := dropbox.Resolve(file)
	is.True(errors.Is(err, dropbox.ErrNotFound))
}

func TestFindHome(t *testing.T) {
	is := is.New(t)
	home := t.TempDir()
	setHome(t, home)
	is.NoErr(os.MkdirAll(filepath.Join(home, "Dropbox"), 0755))

	root, err := dropbox.Find()
	is.NoErr(err)
	is.Equal(root, filepath.Join(home, "Dropbox"))
}

func TestFindDocuments(t *testing.T) {
	is := is.New(t)
	home := t.TempDir()
	setHome(t, home)
	is.NoErr(os.MkdirAll(filepath.Join(home, "Documents", "Dropbox"), 0755))

	root, err := dropbox.Find()
	is.NoErr(err)
	is.Equal(root, filepath.Join(home, "Documents", "Dropbox"))
}

// The client's info.json manifest wins over the conventional locations.
func TestFindManifest(t *testing.T) {
	is := is.New(t)
	home := t.TempDir()
	setHome(t, home)
	is.NoErr(os.MkdirAll(filepath.Join(home, "Dropbox"), 0755))

	account := filepath.Join(home, "Dropbox (Personal)")
	is.NoErr(os.MkdirAll(account, 0755))
	is.NoErr(os.MkdirAll(filepath.Join(home, ".dropbox"), 0755))
	manifest := `{"personal": {"path": ` + strconv.Quote(account) + `, "host": 123}}`
	is.NoErr(os.WriteFile(filepath.Join(home, ".dropbox", "info.json"), []byte(manifest), 0644))

	root, err := dropbox.Find()
	is.NoErr(err)
	is.Equal(root, account)
}

func TestFindNothing(t *testing.T) {
	is := is.New(t)
	setHome(t, t.TempDir())
	_, err := dropbox.Find()
	is.True(errors.Is(err, dropbox.ErrNotFound))
}
