package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gostack/internal/fileinput"
)

func (vm *VM) batch(ctx context.Context, in *fileinput.Input, keepGoing bool, report func(error)) error {
	defer in.Close()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return vm.endOfInput(in.Last)
		} else if err != nil {
			return err
		}
		if err := vm.processLine(in.Last, line); err != nil {
			if !keepGoing || report == nil {
				return err
			}
			report(err)
		}
	}
}

func (vm *VM) interact(ctx context.Context, src LineSource, report func(error)) error {
	loc := fileinput.Location{Name: "<stdin>"}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return vm.endOfInput(loc)
		} else if err != nil {
			return err
		}
		loc.Line++
		if err := vm.processLine(loc, line); err != nil {
			if report == nil {
				return err
			}
			report(err)
		}
		vm.writeLine("stack: " + formatStack(vm.stack))
		if err := vm.out.Flush(); err != nil {
			return err
		}
	}
}

// endOfInput checks that no block was left open when input ran out.
func (vm *VM) endOfInput(loc fileinput.Location) error {
	if vm.building() {
		vm.resetBlocks()
		return &LineError{Loc: loc, Err: errUnterminated}
	}
	return vm.out.Flush()
}
