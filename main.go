package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/jcorbin/gostack/internal/fileinput"
	"github.com/jcorbin/gostack/internal/logio"
)

func main() {
	logger := logio.New(os.Stderr)

	cfg, err := parseConfig("gostack", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	var opts = []VMOption{
		WithOutput(os.Stdout),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(log.Printf))
	}
	vm := New(opts...)

	ctx := context.Background()
	if cfg.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.ErrorIf(runSession(ctx, vm, cfg, logger))
	if cfg.Dump {
		vmDumper{vm: vm, out: os.Stderr}.dump()
	}
	logger.ErrorIf(vm.Close())
	os.Exit(logger.ExitCode())
}

// runSession loads any prelude files, then runs either the named batch file
// or an interactive session.
func runSession(ctx context.Context, vm *VM, cfg Config, logger *logio.Logger) (err error) {
	var in fileinput.Input
	defer func() {
		if cerr := in.Close(); err == nil {
			err = cerr
		}
	}()
	for _, name := range append(cfg.Prelude, cfg.BatchFile) {
		if name == "" {
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		in.Queue = append(in.Queue, f)
	}

	if !cfg.Interactive {
		var report func(error)
		if cfg.KeepGoing {
			report = func(err error) { logger.Errorf("%v", err) }
		}
		return vm.Batch(ctx, &in, cfg.KeepGoing, report)
	}

	if err := vm.Batch(ctx, &in, false, nil); err != nil {
		return err
	}
	le := newLineEditor(vm, cfg)
	defer func() {
		if cerr := le.Close(); err == nil {
			err = cerr
		}
	}()
	printErr := logger.Leveledf("ERROR")
	return vm.Interact(ctx, le, func(err error) { printErr("%v", err) })
}
