package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string {
	if loc.Name == "" {
		return fmt.Sprintf("line %v", loc.Line)
	}
	return fmt.Sprintf("%v:%v", loc.Name, loc.Line)
}

// Input implements sequential line reading through a Queue of one or more
// input streams. Streams that implement io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader

	// Last is the location of the line most recently returned by ReadLine.
	Last Location

	cur  io.Reader
	sc   *bufio.Scanner
	name string
	line int
}

// ReadLine returns the next line, without its line terminator, moving on
// to the next queued stream as each one runs out. Returns io.EOF once
// every stream is exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.sc == nil && !in.nextIn() {
			return "", io.EOF
		}
		if in.sc.Scan() {
			in.line++
			in.Last = Location{in.name, in.line}
			return in.sc.Text(), nil
		}
		err := in.sc.Err()
		in.closeIn()
		if err != nil {
			return "", fmt.Errorf("%v: %w", Location{in.name, in.line + 1}, err)
		}
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.sc = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.sc = bufio.NewScanner(in.cur)
	in.name = nameOf(in.cur)
	in.line = 0
	return true
}

// NamedReader attaches a name to r for use in Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.Closer); ok {
		return namedReadCloser{namedReader{r, name}, cl}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	namedReader
	io.Closer
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
