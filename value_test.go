package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_formatValue(t *testing.T) {
	dup, _ := New().Lookup("dup")
	for _, tc := range []struct {
		name string
		val  Value
		str  string
		diag string
	}{
		{"number", Number(-12), "-12", "-12"},
		{"operator", Operator("dup"), "dup", "dup"},
		{"symbol", Symbol("x"), "x", "/x"},
		{"empty block", Block{}, "<block>", "{ }"},
		{"block", Block{Number(3), Number(4), Operator("*")}, "<block>", "{ 3 4 * }"},
		{"nested block", Block{Symbol("f"), Block{Number(1)}, Operator("def")}, "<block>", "{ /f { 1 } def }"},
		{"native", dup, "<native>", "<native dup>"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.val.String(), "expected puts text")
			assert.Equal(t, tc.diag, FormatValue(tc.val), "expected diagnostic text")
		})
	}
}

func Test_formatStack(t *testing.T) {
	assert.Equal(t, "[]", formatStack(nil))
	assert.Equal(t, "[3 { 3 4 * }]", formatStack([]Value{
		Number(3),
		Block{Number(3), Number(4), Operator("*")},
	}))

	vm := New()
	assert.NoError(t, vm.ProcessLine("1 /x { 2 }"))
	assert.Equal(t, "[1 /x { 2 }]", vm.FormatStack())
}
