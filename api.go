package main

import (
	"context"
	"io"

	"github.com/jcorbin/gostack/internal/fileinput"
	"github.com/jcorbin/gostack/internal/panicerr"
)

// New creates a VM with every built-in bound, then applies any options.
func New(opts ...VMOption) *VM {
	var vm VM
	vm.bindBuiltins()
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Stack returns a copy of the operand stack, bottom first.
func (vm *VM) Stack() []Value {
	return append(make([]Value, 0, len(vm.stack)), vm.stack...)
}

// Lookup returns the value bound to name, if any.
func (vm *VM) Lookup(name string) (Value, bool) {
	val, ok := vm.vars[name]
	return val, ok
}

// FormatStack renders the operand stack as diagnostic text, e.g.
// "[3 { 3 4 * }]".
func (vm *VM) FormatStack() string { return formatStack(vm.stack) }

// FormatValue renders a single value as diagnostic text.
func FormatValue(val Value) string { return formatValue(val) }

// Batch processes every line from in, stopping at the first failing line
// unless keepGoing is set, in which case failures are passed to report.
// A block still open at the end of input is reported as ErrMalformedBlock.
func (vm *VM) Batch(ctx context.Context, in *fileinput.Input, keepGoing bool, report func(error)) error {
	return panicerr.Recover("VM", func() error {
		return vm.batch(ctx, in, keepGoing, report)
	})
}

// Interact processes lines from src, writing the rendered stack to the VM
// output after each one. Failing lines are passed to report and the session
// goes on.
func (vm *VM) Interact(ctx context.Context, src LineSource, report func(error)) error {
	return panicerr.Recover("VM", func() error {
		return vm.interact(ctx, src, report)
	})
}

// LineSource provides lines of input; ReadLine returns io.EOF when done.
type LineSource interface {
	ReadLine() (string, error)
}

func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

// WithBinding pre-binds name to val, as def would.
func WithBinding(name string, val Value) VMOption { return bindingOption{name, val} }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
