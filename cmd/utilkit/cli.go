package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kbukum/utilkit/config"
	"github.com/kbukum/utilkit/errors"
	"github.com/kbukum/utilkit/logger"
)

const (
	serviceName = "utilkit"
	envPrefix   = "UTILKIT"

	exitOK       = 0
	exitFailure  = 1
	exitBadInput = 2
)

const usage = `usage: utilkit [--config file] <command> [flags] [args]

commands:
  format [--trim] [--lowercase] <text...>   format text (stdin when no text)
  parse [--strict] [<json>]                 parse JSON (stdin when no arg), print it compactly or null
  log [--prefix p] [--error] <message...>   write a prefixed line to stdout (stderr with --error)
  version                                   print the build version
`

// env bundles the streams and configuration a command runs with.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *config.ServiceConfig
	log    *logger.Logger
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"format":  runFormat,
	"parse":   runParse,
	"log":     runLog,
	"version": runVersion,
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	e.log = diagnostics(&logger.Config{}, stdout, stderr)

	fs := newFlagSet(serviceName, stderr)
	configFile := fs.String("config", "", "path to a config file")
	fs.SetInterspersed(false)
	if err := fs.Parse(args); err != nil {
		return e.fail(err)
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return exitBadInput
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		if name == "help" {
			fmt.Fprint(stdout, usage)
			return exitOK
		}
		fmt.Fprint(stderr, usage)
		return e.fail(errors.InvalidInput("command", fmt.Sprintf("unknown command %q", name)))
	}

	cfg := &config.ServiceConfig{Name: serviceName}
	logger.SetGlobalLogger(e.log)
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix), config.WithLogger(e.log)}
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if err := config.Load(serviceName, cfg, opts...); err != nil {
		return e.fail(err)
	}
	e.cfg = cfg
	e.log = diagnostics(&cfg.Logging, stdout, stderr)
	logger.SetGlobalLogger(e.log)

	e.log.Debug("running command", logger.Fields(logger.FieldOperation, name, "environment", cfg.Environment))
	if err := cmd(e, fs.Args()[1:]); err != nil {
		return e.fail(err)
	}
	return exitOK
}

// fail reports err on the diagnostics logger and maps it to an exit code.
func (e *env) fail(err error) int {
	if stderrors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	appErr := errors.Wrap(err)
	fields := logger.Fields(logger.FieldCode, string(appErr.Code))
	if appErr.Cause != nil {
		fields[logger.FieldError] = appErr.Cause.Error()
	}
	e.log.Error(appErr.Message, fields)
	if errors.IsInputCode(appErr.Code) {
		return exitBadInput
	}
	return exitFailure
}

// diagnostics builds the CLI's own logger. Colors are only emitted when
// the destination is a terminal.
func diagnostics(cfg *logger.Config, stdout, stderr io.Writer) *logger.Logger {
	c := *cfg
	c.ApplyDefaults()
	w := stderr
	if strings.EqualFold(c.Output, "stdout") {
		w = stdout
	}
	if !logger.IsTerminal(w) {
		c.NoColor = true
	}
	return logger.NewWithWriter(&c, "cli", w)
}

func newFlagSet(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	return fs
}

// parseFlags wraps flag errors as invalid input.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.InvalidInput("flags", err.Error()).WithCause(err)
	}
	return nil
}
