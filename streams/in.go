package streams

import (
	"io"
	"os"
)

type In struct {
	stream
	in io.Reader
}

var StdIn = NewIn(os.Stdin)

func NewIn(in io.Reader) *In {
	i := &In{in: in}
	i.fd = fdOf(in)

	return i
}

func (i *In) Read(p []byte) (n int, err error) {
	return i.in.Read(p)
}
