package main

import (
	"strconv"
	"strings"
)

const (
	blockOpen    = "{"
	blockClose   = "}"
	symbolMarker = '/'
)

type tokenKind uint8

const (
	tokenNone tokenKind = iota
	tokenOpen
	tokenClose
	tokenValue
)

// token is one classified word of source text.
type token struct {
	kind tokenKind
	val  Value
}

// words splits a line of source into whitespace separated words; runs of
// whitespace never produce empty words.
func words(line string) []string {
	return strings.Fields(line)
}

// classify decides what a single word means, without side effects:
// - "{" and "}" are block delimiters
// - anything that parses fully as a decimal int32 is a Number
// - "/name" is the Symbol "name"; a bare "/" is the division Operator
// - any other word is an Operator of the same name
// The empty word classifies as tokenNone and is ignored.
func classify(word string) token {
	switch word {
	case "":
		return token{kind: tokenNone}
	case blockOpen:
		return token{kind: tokenOpen}
	case blockClose:
		return token{kind: tokenClose}
	}
	if n, err := strconv.ParseInt(word, 10, 32); err == nil {
		return token{kind: tokenValue, val: Number(n)}
	}
	if len(word) > 1 && word[0] == symbolMarker {
		return token{kind: tokenValue, val: Symbol(word[1:])}
	}
	return token{kind: tokenValue, val: Operator(word)}
}
