/* Command gostack is a small interactive stack language.

Source is read a line at a time and split into whitespace separated words.
Each word is either:

	123      a Number (signed 32-bit), pushed onto the stack
	/name    a Symbol, pushed as the target of a later def
	{ ... }  a Block: the words between the braces are kept unevaluated
	name     an Operator, looked up and performed immediately

Blocks nest, and may span lines. Operators are resolved through the
bindings: a bound Block runs its contents against the live stack, a bound
built-in runs, and any other bound value is pushed as a constant. Built-ins
are ordinary bindings, see builtins.go for the list.

	1 2 +                     ( stack: [3] )
	/double { 2 * } def
	10 double                 ( stack: [3 20] )
	{ 1 2 < } { 100 } { 200 } if

Any failure (type mismatch, stack underflow, undefined name, malformed
block, division by zero) aborts the rest of the line. Interactively the
session goes on with whatever stack and bindings the failure left behind;
a batch run stops unless -keep-going is given.

Usage:

	gostack [flags]           interactive session, stack shown after each line
	gostack [flags] FILE      run FILE
*/
package main
