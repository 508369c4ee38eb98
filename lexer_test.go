package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_classify(t *testing.T) {
	for _, tc := range []struct {
		word string
		tok  token
	}{
		{"", token{kind: tokenNone}},
		{"{", token{kind: tokenOpen}},
		{"}", token{kind: tokenClose}},
		{"{{", token{tokenValue, Operator("{{")}},
		{"0", token{tokenValue, Number(0)}},
		{"42", token{tokenValue, Number(42)}},
		{"-1", token{tokenValue, Number(-1)}},
		{"+7", token{tokenValue, Number(7)}},
		{"2147483647", token{tokenValue, Number(2147483647)}},
		{"-2147483648", token{tokenValue, Number(-2147483648)}},
		{"2147483648", token{tokenValue, Operator("2147483648")}},
		{"12ab", token{tokenValue, Operator("12ab")}},
		{"0x10", token{tokenValue, Operator("0x10")}},
		{"/x", token{tokenValue, Symbol("x")}},
		{"/double", token{tokenValue, Symbol("double")}},
		{"//", token{tokenValue, Symbol("/")}},
		{"/1", token{tokenValue, Symbol("1")}},
		{"/", token{tokenValue, Operator("/")}},
		{"+", token{tokenValue, Operator("+")}},
		{"-", token{tokenValue, Operator("-")}},
		{"dup", token{tokenValue, Operator("dup")}},
	} {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.tok, classify(tc.word))
		})
	}
}

func Test_words(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "+"}, words("1 2 +"))
	assert.Equal(t, []string{"{", "3", "}"}, words("  {\t3  }  "))
	assert.Empty(t, words(""))
	assert.Empty(t, words(" \t "))
}
