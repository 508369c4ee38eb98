package panicerr

import "runtime/debug"

// Recover calls f, converting any panic that escapes it into a non-nil error
// return. The recovered value and a stack trace are retained; see IsPanic and
// PanicStack.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicError{name: name, e: e, stack: debug.Stack()}
		}
	}()
	return f()
}
