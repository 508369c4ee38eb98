package fileinput

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeTracker struct {
	io.Reader
	closed bool
}

func (ct *closeTracker) Close() error {
	ct.closed = true
	return nil
}

func TestInput(t *testing.T) {
	second := &closeTracker{Reader: strings.NewReader("x\n")}
	in := Input{Queue: []io.Reader{
		NamedReader("prelude", strings.NewReader("/x 10 def\n\n/double { 2 * } def")),
		NamedReader("main", second),
	}}

	type read struct {
		loc  string
		line string
	}
	var got []read
	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, read{in.Last.String(), line})
	}

	assert.Equal(t, []read{
		{"prelude:1", "/x 10 def"},
		{"prelude:2", ""},
		{"prelude:3", "/double { 2 * } def"},
		{"main:1", "x"},
	}, got)
	assert.True(t, second.closed, "expected exhausted input to be closed")

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected EOF to persist")
}

func TestInput_Close(t *testing.T) {
	queued := &closeTracker{Reader: strings.NewReader("1\n")}
	in := Input{Queue: []io.Reader{strings.NewReader("1 2 +\n"), queued}}

	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2 +", line)
	assert.Equal(t, "<unnamed *strings.Reader>:1", in.Last.String())

	assert.NoError(t, in.Close())
	assert.True(t, queued.closed, "expected queued input to be closed")
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "line 3", Location{Line: 3}.String())
	assert.Equal(t, "lib.stk:7", Location{"lib.stk", 7}.String())
}
