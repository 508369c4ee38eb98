package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// lineEditor is a LineSource reading from the terminal with line editing
// and history. The prompt changes while a block is still open.
type lineEditor struct {
	ln      *liner.State
	vm      *VM
	prompt  string
	cont    string
	history string
}

func newLineEditor(vm *VM, cfg Config) *lineEditor {
	le := &lineEditor{
		ln:      liner.NewLiner(),
		vm:      vm,
		prompt:  cfg.Prompt,
		cont:    cfg.ContPrompt,
		history: cfg.History,
	}
	le.ln.SetCtrlCAborts(true)
	if le.history != "" {
		if f, err := os.Open(le.history); err == nil {
			le.ln.ReadHistory(f)
			f.Close()
		}
	}
	return le
}

func (le *lineEditor) ReadLine() (string, error) {
	prompt := le.prompt
	if le.vm.building() {
		prompt = le.cont
	}
	line, err := le.ln.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	} else if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		le.ln.AppendHistory(line)
	}
	return line, nil
}

// Close saves history, if configured, and restores the terminal.
func (le *lineEditor) Close() (err error) {
	if le.history != "" {
		var f *os.File
		if f, err = os.Create(le.history); err == nil {
			_, err = le.ln.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := le.ln.Close(); err == nil {
		err = cerr
	}
	return err
}
