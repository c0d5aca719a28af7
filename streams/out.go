package streams

import (
	"io"
	"os"
)

type Out struct {
	stream
	out io.Writer
}

func NewOut(out io.Writer) *Out {
	o := &Out{out: out}
	o.fd = fdOf(out)

	return o
}

func (o *Out) Write(p []byte) (n int, err error) {
	return o.out.Write(p)
}

var (
	// StdOut is the standard output stream.
	StdOut = NewOut(os.Stdout)
	// StdErr is the standard error stream.
	StdErr = NewOut(os.Stderr)
)
