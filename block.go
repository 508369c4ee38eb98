package main

// The block builder keeps a stack of in-progress block contents, one per
// open "{" not yet matched; vm.blocks is empty outside of any block.

func (vm *VM) openBlock() {
	vm.blocks = append(vm.blocks, Block{})
	vm.logf("{", "open block depth:%v", len(vm.blocks))
}

// closeBlock completes the innermost in-progress block, appending it to its
// enclosing block if there is one, or evaluating it as a literal otherwise.
func (vm *VM) closeBlock() {
	i := len(vm.blocks) - 1
	if i < 0 {
		vm.halt(errUnmatchedClose)
	}
	blk := vm.blocks[i]
	vm.blocks[i] = nil
	vm.blocks = vm.blocks[:i]
	vm.logf("}", "close block depth:%v %v", i, formatValue(blk))
	if i > 0 {
		vm.blocks[i-1] = append(vm.blocks[i-1], blk)
		return
	}
	vm.eval(blk)
}

// appendBlock defers val into the innermost in-progress block.
func (vm *VM) appendBlock(val Value) {
	i := len(vm.blocks) - 1
	vm.blocks[i] = append(vm.blocks[i], val)
}

// building returns true while any block is in progress.
func (vm *VM) building() bool { return len(vm.blocks) > 0 }

// resetBlocks discards any in-progress blocks.
func (vm *VM) resetBlocks() {
	if len(vm.blocks) > 0 {
		vm.logf("#", "discard %v in-progress block(s)", len(vm.blocks))
	}
	vm.blocks = nil
}
