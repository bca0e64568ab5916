package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kbukum/utilkit/errors"
	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/util"
	"github.com/kbukum/utilkit/validation"
	"github.com/kbukum/utilkit/version"
)

func runFormat(e *env, args []string) error {
	fs := newFlagSet("format", e.stderr)
	trim := fs.Bool("trim", e.cfg.Format.Trim, "remove leading and trailing whitespace")
	lowercase := fs.Bool("lowercase", e.cfg.Format.Lowercase, "convert to lower case")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	input, err := argsOrStdin(e, fs.Args())
	if err != nil {
		return err
	}
	out := util.FormatString(input, &util.FormatOptions{Trim: *trim, Lowercase: *lowercase})
	_, err = fmt.Fprintln(e.stdout, out)
	return err
}

func runParse(e *env, args []string) error {
	fs := newFlagSet("parse", e.stderr)
	strict := fs.Bool("strict", false, "report malformed input instead of printing null")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if appErr := validation.New().MaxCount("json", fs.Args(), 1).Validate(); appErr != nil {
		return appErr
	}

	input, err := argsOrStdin(e, fs.Args())
	if err != nil {
		return err
	}

	var value *any
	if *strict {
		if value, err = util.DecodeJSON[any](input); err != nil {
			return err
		}
	} else {
		value = util.ParseJSON[any](input)
	}
	if value == nil {
		e.log.Debug("parse produced null", logger.Fields(logger.FieldOperation, "parse", "bytes", len(input)))
		_, err = fmt.Fprintln(e.stdout, "null")
		return err
	}
	return writeJSON(e.stdout, *value)
}

func runLog(e *env, args []string) error {
	fs := newFlagSet("log", e.stderr)
	prefix := fs.String("prefix", logger.DefaultPrefix, "line prefix (overrides logging.prefix)")
	toErr := fs.Bool("error", false, "write an error line to stderr")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	opts := []logger.PrefixedOption{logger.WithOutput(e.stdout), logger.WithErrorOutput(e.stderr)}
	if fs.Changed("prefix") {
		opts = append(opts, logger.WithPrefix(*prefix))
	}
	p := logger.NewPrefixedFromConfig(&e.cfg.Logging, opts...)

	msg := strings.Join(fs.Args(), " ")
	if *toErr {
		p.Error(msg)
	} else {
		p.Log(msg)
	}
	return nil
}

func runVersion(e *env, args []string) error {
	if appErr := validation.New().MaxCount("args", args, 0).Validate(); appErr != nil {
		return appErr
	}
	_, err := fmt.Fprintln(e.stdout, version.Short())
	return err
}

// argsOrStdin joins args with spaces, or reads all of stdin without its
// final line break when there are no args.
func argsOrStdin(e *env, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return "", errors.Internal(err).WithDetail("stream", "stdin")
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// writeJSON prints v compactly on one line without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Internal(err)
	}
	_, err := buf.WriteTo(w)
	return err
}
