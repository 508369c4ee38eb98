package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gostack/internal/flushio"
)

type ioCore struct {
	out     flushio.WriteFlusher
	closers []io.Closer
	logging
}

// Close flushes output and closes anything the VM was given ownership of.
func (ioc *ioCore) Close() (err error) {
	if ioc.out != nil {
		err = ioc.out.Flush()
	}
	for i := len(ioc.closers) - 1; i >= 0; i-- {
		if cerr := ioc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	ioc.closers = nil
	return err
}

func (ioc *ioCore) writeLine(s string) {
	if _, err := io.WriteString(ioc.out, s+"\n"); err != nil {
		ioc.halt(err)
	}
}

// halt aborts evaluation of the current line with err.
func (ioc *ioCore) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if ioc.out != nil {
			ioc.out.Flush()
		}
	}()
	ioc.logf("#", "halt error: %v", err)
	panic(haltError{err})
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
