package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls a command line session. It may be loaded from a YAML file
// named by -config; flags given explicitly override file values.
type Config struct {
	Trace       bool          `yaml:"trace"`
	Dump        bool          `yaml:"dump"`
	KeepGoing   bool          `yaml:"keep_going"`
	Timeout     time.Duration `yaml:"timeout"`
	Prompt      string        `yaml:"prompt"`
	ContPrompt  string        `yaml:"cont_prompt"`
	History     string        `yaml:"history"`
	Prelude     []string      `yaml:"prelude"`
	ConfigFile  string        `yaml:"-"`
	BatchFile   string        `yaml:"-"`
	Interactive bool          `yaml:"-"`
}

var defaultConfig = Config{
	Prompt:     "> ",
	ContPrompt: ". ",
}

type stringList []string

func (sl *stringList) String() string     { return strings.Join(*sl, ",") }
func (sl *stringList) Set(s string) error { *sl = append(*sl, s); return nil }

// parseConfig builds a Config from command line arguments: a single optional
// positional argument names a batch file, otherwise the session is
// interactive.
func parseConfig(name string, args []string, output io.Writer) (Config, error) {
	var flags Config
	var prelude stringList

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: %v [flags] [file]\n", name)
		fs.PrintDefaults()
	}
	fs.StringVar(&flags.ConfigFile, "config", "", "load settings from a YAML file")
	fs.BoolVar(&flags.Trace, "trace", false, "enable trace logging")
	fs.BoolVar(&flags.Dump, "dump", false, "dump VM state to stderr when the session ends")
	fs.BoolVar(&flags.KeepGoing, "keep-going", false, "in batch mode, report failing lines and continue")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "specify a time limit")
	fs.StringVar(&flags.Prompt, "prompt", defaultConfig.Prompt, "interactive prompt")
	fs.StringVar(&flags.ContPrompt, "cont-prompt", defaultConfig.ContPrompt, "interactive prompt while a block is open")
	fs.StringVar(&flags.History, "history", "", "interactive history file")
	fs.Var(&prelude, "prelude", "batch file to load before the session (repeatable)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := defaultConfig
	if flags.ConfigFile != "" {
		if err := cfg.load(flags.ConfigFile); err != nil {
			return Config{}, err
		}
		cfg.ConfigFile = flags.ConfigFile
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = flags.Trace
		case "dump":
			cfg.Dump = flags.Dump
		case "keep-going":
			cfg.KeepGoing = flags.KeepGoing
		case "timeout":
			cfg.Timeout = flags.Timeout
		case "prompt":
			cfg.Prompt = flags.Prompt
		case "cont-prompt":
			cfg.ContPrompt = flags.ContPrompt
		case "history":
			cfg.History = flags.History
		}
	})
	cfg.Prelude = append(cfg.Prelude, prelude...)

	switch fs.NArg() {
	case 0:
		cfg.Interactive = true
	case 1:
		cfg.BatchFile = fs.Arg(0)
	default:
		fs.Usage()
		return Config{}, errors.New("too many arguments")
	}
	return cfg, nil
}

func (cfg *Config) load(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %v: %w", name, err)
	}
	return nil
}
