package main

// Built-in words; operands are listed deepest first, so "a b -" computes
// a - b.
//
// Name    Stack effect            Function
//  +      a b -- a+b              add
//  -      a b -- a-b              subtract
//  *      a b -- a*b              multiply
//  /      a b -- a/b              divide, truncating; b must not be 0
//  <      a b -- 1|0              1 if a < b
//  dup    a -- a a                copy the top value
//  exch   a b -- b a              swap the top two values
//  pop    a --                    discard the top value
//  clear  ... --                  discard every value
//  if     {c} {t} {f} -- ...      run c, pop its result, run t if non-zero else f
//  def    /name v --              evaluate v, bind its result to name
//  puts   a --                    write a to output
//  stack  --                      write the whole stack to output
var builtins = []*Native{
	{"+", (*VM).add},
	{"-", (*VM).sub},
	{"*", (*VM).mul},
	{"/", (*VM).div},
	{"<", (*VM).less},
	{"dup", (*VM).dup},
	{"exch", (*VM).exch},
	{"pop", (*VM).drop},
	{"clear", (*VM).clear},
	{"if", (*VM).ifElse},
	{"def", (*VM).def},
	{"puts", (*VM).puts},
	{"stack", (*VM).pstack},
}

func (vm *VM) bindBuiltins() {
	for _, native := range builtins {
		vm.bind(native.Name, native)
	}
}

func (vm *VM) add() { b, a := vm.popNumber(), vm.popNumber(); vm.push(a + b) }
func (vm *VM) sub() { b, a := vm.popNumber(), vm.popNumber(); vm.push(a - b) }
func (vm *VM) mul() { b, a := vm.popNumber(), vm.popNumber(); vm.push(a * b) }

func (vm *VM) div() {
	b, a := vm.popNumber(), vm.popNumber()
	if b == 0 {
		vm.halt(ErrDivisionByZero)
	}
	vm.push(a / b)
}

func (vm *VM) less() { b, a := vm.popNumber(), vm.popNumber(); vm.push(boolNumber(a < b)) }

func (vm *VM) dup()  { vm.push(vm.peek()) }
func (vm *VM) exch() { b, a := vm.pop(), vm.pop(); vm.push(b); vm.push(a) }
func (vm *VM) drop() { vm.pop() }

func (vm *VM) clear() {
	for i := range vm.stack {
		vm.stack[i] = nil
	}
	vm.stack = vm.stack[:0]
}

// ifElse runs the condition block, then exactly one of the branches.
func (vm *VM) ifElse() {
	f, t, c := vm.popBlock(), vm.popBlock(), vm.popBlock()
	vm.run(c)
	if vm.popNumber() != 0 {
		vm.run(t)
	} else {
		vm.run(f)
	}
}

// def evaluates its value before binding, so an operator argument binds the
// value it resolves to rather than the operator itself.
func (vm *VM) def() {
	vm.eval(vm.pop())
	val := vm.pop()
	name := vm.popSymbol()
	vm.logf("def", "%v = %v", string(name), formatValue(val))
	vm.bind(string(name), val)
}

func (vm *VM) puts()   { vm.writeLine(vm.pop().String()) }
func (vm *VM) pstack() { vm.writeLine(formatStack(vm.stack)) }

func boolNumber(b bool) Number {
	if b {
		return 1
	}
	return 0
}
