package streams

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type stream struct {
	fd int
}

// IsTerminal reports whether the stream is attached to an interactive terminal,
// including a Cygwin or MSYS pty. Streams built over plain readers and writers
// never are.
func (s *stream) IsTerminal() bool {
	if s.fd < 0 {
		return false
	}
	return term.IsTerminal(s.fd) || isatty.IsCygwinTerminal(uintptr(s.fd))
}

type fder interface {
	Fd() uintptr
}

func fdOf(v any) int {
	if f, ok := v.(fder); ok {
		return int(f.Fd())
	}
	return -1
}
