package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/gostack/internal/fileinput"
)

// Every failure the VM reports wraps exactly one of these; match them with
// errors.Is.
var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUndefinedName  = errors.New("undefined name")
	ErrMalformedBlock = errors.New("malformed block")
	ErrDivisionByZero = errors.New("division by zero")
)

var (
	errUnmatchedClose = malformedError("unmatched " + blockClose)
	errUnterminated   = malformedError("unterminated block")
)

type malformedError string
type undefinedError string
type underflowError string

type typeError struct {
	op   string
	want string
	got  Value
}

func (err malformedError) Error() string { return fmt.Sprintf("%v: %v", ErrMalformedBlock, string(err)) }
func (err malformedError) Unwrap() error { return ErrMalformedBlock }

func (name undefinedError) Error() string { return fmt.Sprintf("%v %q", ErrUndefinedName, string(name)) }
func (name undefinedError) Unwrap() error { return ErrUndefinedName }

func (op underflowError) Error() string {
	if op == "" {
		return ErrStackUnderflow.Error()
	}
	return fmt.Sprintf("%v in %v", ErrStackUnderflow, string(op))
}
func (op underflowError) Unwrap() error { return ErrStackUnderflow }

func (err typeError) Error() string {
	return fmt.Sprintf("%v: %v wants a %v, got %v", ErrTypeMismatch, err.op, err.want, formatValue(err.got))
}
func (err typeError) Unwrap() error { return ErrTypeMismatch }

// LineError reports a failure while processing one line of input.
type LineError struct {
	Loc  fileinput.Location
	Word string // top-level word being processed; empty at end of input
	Err  error
}

func (err *LineError) Error() string {
	if err.Word == "" {
		return fmt.Sprintf("%v: %v", err.Loc, err.Err)
	}
	return fmt.Sprintf("%v: at %q: %v", err.Loc, err.Word, err.Err)
}

func (err *LineError) Unwrap() error { return err.Err }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }
