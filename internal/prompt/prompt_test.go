package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/matthewmueller/dropfix/internal/prompt"
)

func TestConfirmYes(t *testing.T) {
	is := is.New(t)
	out := new(bytes.Buffer)
	p := prompt.New(strings.NewReader("y\n"), out)
	is.True(p.Confirm("Proceed? (y/n): "))
	is.Equal(out.String(), "Proceed? (y/n): ")
}

func TestConfirmNo(t *testing.T) {
	is := is.New(t)
	p := prompt.New(strings.NewReader("n\n"), new(bytes.Buffer))
	is.True(!p.Confirm("Proceed? (y/n): "))
}

// Keeps asking until the answer is boolean-ish.
func TestConfirmRetry(t *testing.T) {
	is := is.New(t)
	out := new(bytes.Buffer)
	p := prompt.New(strings.NewReader("maybe\nyes\n"), out)
	is.True(p.Confirm("ok? "))
	is.Equal(out.String(), "ok? ok? ")
}

// End of input counts as declining.
func TestConfirmEOF(t *testing.T) {
	is := is.New(t)
	p := prompt.New(strings.NewReader(""), new(bytes.Buffer))
	is.True(!p.Confirm("ok? "))
}

func TestString(t *testing.T) {
	is := is.New(t)
	p := prompt.New(strings.NewReader("hello\n"), new(bytes.Buffer))
	is.Equal(p.String("name: "), "hello")
}
