package main

import (
	"fmt"
	"io"
	"sort"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	// include built-in bindings that still hold their original native
	builtins bool
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	dump.dumpStack()
	dump.dumpBlocks()
	dump.dumpVars()
}

func (dump vmDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", formatStack(dump.vm.stack))
}

func (dump vmDumper) dumpBlocks() {
	if len(dump.vm.blocks) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Pending Blocks\n")
	for i, blk := range dump.vm.blocks {
		fmt.Fprintf(dump.out, "  %v: %v\n", i, formatStack(blk))
	}
}

func (dump vmDumper) dumpVars() {
	names := make([]string, 0, len(dump.vm.vars))
	for name, val := range dump.vm.vars {
		if !dump.builtins && isBuiltin(name, val) {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	fmt.Fprintf(dump.out, "# Bindings\n")
	for _, name := range names {
		fmt.Fprintf(dump.out, "  %-*v %v\n", width, name, formatValue(dump.vm.vars[name]))
	}
}

func isBuiltin(name string, val Value) bool {
	native, ok := val.(*Native)
	if !ok {
		return false
	}
	for _, builtin := range builtins {
		if builtin == native {
			return builtin.Name == name
		}
	}
	return false
}
