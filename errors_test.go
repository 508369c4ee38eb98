package main

import (
	"errors"
	"io"
	"testing"

	"github.com/jcorbin/gostack/internal/fileinput"
	"github.com/stretchr/testify/assert"
)

func Test_errors(t *testing.T) {
	for _, tc := range []struct {
		err  error
		msg  string
		kind error
	}{
		{errUnmatchedClose, "malformed block: unmatched }", ErrMalformedBlock},
		{errUnterminated, "malformed block: unterminated block", ErrMalformedBlock},
		{undefinedError("nope"), `undefined name "nope"`, ErrUndefinedName},
		{underflowError(""), "stack underflow", ErrStackUnderflow},
		{underflowError("exch"), "stack underflow in exch", ErrStackUnderflow},
		{typeError{"+", "number", Block{Number(1)}}, "type mismatch: + wants a number, got { 1 }", ErrTypeMismatch},
		{typeError{"def", "symbol", Number(1)}, "type mismatch: def wants a symbol, got 1", ErrTypeMismatch},
		{
			&LineError{fileinput.Location{Name: "lib.stk", Line: 3}, "}", errUnmatchedClose},
			`lib.stk:3: at "}": malformed block: unmatched }`,
			ErrMalformedBlock,
		},
		{
			&LineError{Loc: fileinput.Location{Name: "<stdin>", Line: 9}, Err: errUnterminated},
			"<stdin>:9: malformed block: unterminated block",
			ErrMalformedBlock,
		},
		{haltError{ErrDivisionByZero}, "halted: division by zero", ErrDivisionByZero},
	} {
		t.Run(tc.msg, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.msg)
			assert.True(t, errors.Is(tc.err, tc.kind), "expected %v to be %v", tc.err, tc.kind)
		})
	}
	assert.EqualError(t, haltError{}, "halted")
	assert.False(t, errors.Is(haltError{}, io.EOF))
}
