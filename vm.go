package main

import (
	"github.com/jcorbin/gostack/internal/fileinput"
)

// VM holds the machine state of one session: the operand stack, the name
// bindings, and the stack of blocks still being read. State persists across
// lines until the VM is discarded.
type VM struct {
	ioCore

	// The operand stack; the top is the last element.
	stack []Value

	// Bindings from operator name to value. Built-ins live here too, as
	// *Native values, so they may be rebound like any other name.
	vars map[string]Value

	// One entry per "{" not yet closed; innermost last.
	blocks []Block

	// op is the name currently being called, for diagnostics.
	op string
}

// ProcessLine evaluates every word of line in order. Any failure stops
// processing of the rest of the line and discards in-progress blocks; the
// stack and bindings are left as the failure found them.
func (vm *VM) ProcessLine(line string) error {
	return vm.processLine(fileinput.Location{}, line)
}

func (vm *VM) processLine(loc fileinput.Location, line string) (rerr error) {
	var word string
	defer func() {
		if e := recover(); e != nil {
			halt, ok := e.(haltError)
			if !ok {
				panic(e)
			}
			vm.resetBlocks()
			vm.op = ""
			rerr = &LineError{Loc: loc, Word: word, Err: halt.error}
		}
	}()
	for _, word = range words(line) {
		vm.processWord(word)
	}
	return vm.out.Flush()
}

func (vm *VM) processWord(word string) {
	tok := classify(word)
	if vm.logfn != nil {
		vm.logf(">", "%v -- %v", word, formatStack(vm.stack))
	}
	switch tok.kind {
	case tokenOpen:
		vm.openBlock()
	case tokenClose:
		vm.closeBlock()
	case tokenValue:
		vm.eval(tok.val)
	}
}

// eval evaluates one value: deferred into the innermost block while one is
// being read, pushed if it is not an Operator, otherwise called.
func (vm *VM) eval(val Value) {
	if vm.building() {
		vm.appendBlock(val)
		return
	}
	if op, isOp := val.(Operator); isOp {
		vm.call(string(op))
		return
	}
	vm.push(val)
}

// call resolves name in the bindings: bound blocks run, natives are invoked,
// and any other value is pushed as a constant.
func (vm *VM) call(name string) {
	bound, defined := vm.vars[name]
	if !defined {
		vm.halt(undefinedError(name))
	}
	defer func(op string) { vm.op = op }(vm.op)
	vm.op = name
	switch v := bound.(type) {
	case Block:
		vm.logf("call", "%v %v", name, formatValue(v))
		vm.run(v)
	case *Native:
		v.Func(vm)
	default:
		vm.push(v)
	}
}

// run evaluates every element of blk in order against the live state.
func (vm *VM) run(blk Block) {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}
	for _, val := range blk {
		if vm.logfn != nil {
			vm.logf(">", "%v -- %v", formatValue(val), formatStack(vm.stack))
		}
		vm.eval(val)
	}
}

func (vm *VM) bind(name string, val Value) {
	if vm.vars == nil {
		vm.vars = make(map[string]Value)
	}
	vm.vars[name] = val
}

func (vm *VM) push(val Value) {
	vm.stack = append(vm.stack, val)
}

func (vm *VM) pop() (val Value) {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(underflowError(vm.op))
	}
	val, vm.stack[i] = vm.stack[i], nil
	vm.stack = vm.stack[:i]
	return val
}

func (vm *VM) peek() Value {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(underflowError(vm.op))
	}
	return vm.stack[i]
}

func (vm *VM) popNumber() Number {
	val := vm.pop()
	n, ok := val.(Number)
	if !ok {
		vm.halt(typeError{vm.op, "number", val})
	}
	return n
}

func (vm *VM) popBlock() Block {
	val := vm.pop()
	blk, ok := val.(Block)
	if !ok {
		vm.halt(typeError{vm.op, "block", val})
	}
	return blk
}

func (vm *VM) popSymbol() Symbol {
	val := vm.pop()
	sym, ok := val.(Symbol)
	if !ok {
		vm.halt(typeError{vm.op, "symbol", val})
	}
	return sym
}
