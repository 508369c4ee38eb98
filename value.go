package main

import (
	"strconv"
	"strings"
)

// Value is any runtime entity the VM can hold on its stack or bind to a
// name: a Number, Operator, Symbol, Block, or *Native.
type Value interface {
	// String renders the value as puts writes it.
	String() string

	value()
}

// Number is a signed 32-bit integer literal.
type Number int32

// Operator names an action to perform immediately when evaluated.
type Operator string

// Symbol is a name pushed as a binding target, written with a leading '/'.
type Symbol string

// Block is deferred code: its contents are only evaluated when something
// explicitly runs it.
type Block []Value

// Native is a built-in procedure. Natives are compared by pointer, so two
// natives are equal only when they are the same built-in.
type Native struct {
	Name string
	Func func(vm *VM)
}

func (Number) value()   {}
func (Operator) value() {}
func (Symbol) value()   {}
func (Block) value()    {}
func (*Native) value()  {}

func (n Number) String() string    { return strconv.Itoa(int(n)) }
func (op Operator) String() string { return string(op) }
func (sym Symbol) String() string  { return string(sym) }
func (Block) String() string       { return "<block>" }
func (*Native) String() string     { return "<native>" }

// formatValue renders a value for diagnostics: unlike String, symbols keep
// their marker and blocks show their contents.
func formatValue(val Value) string {
	var sb strings.Builder
	writeValue(&sb, val)
	return sb.String()
}

func formatStack(stack []Value) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeValue(&sb, val)
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeValue(sb *strings.Builder, val Value) {
	switch v := val.(type) {
	case nil:
		sb.WriteString("<nil>")
	case Symbol:
		sb.WriteByte(symbolMarker)
		sb.WriteString(string(v))
	case Block:
		sb.WriteByte('{')
		for _, elem := range v {
			sb.WriteByte(' ')
			writeValue(sb, elem)
		}
		sb.WriteString(" }")
	case *Native:
		sb.WriteString("<native ")
		sb.WriteString(v.Name)
		sb.WriteByte('>')
	default:
		sb.WriteString(v.String())
	}
}
