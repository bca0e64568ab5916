package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/kbukum/utilkit/util"
)

const (
	// DefaultPrefix is used when no prefix option is given.
	DefaultPrefix = "[LOG]"
	// ErrorTag follows the prefix on lines written by Prefixed.Error.
	ErrorTag = "[ERROR]"
)

// Prefixed writes single plain-text lines tagged with a fixed prefix.
// Log lines go to the output stream, error lines to the error stream.
// The prefix is fixed at construction.
//
// Lines are text, not bytes: each invalid UTF-8 byte in the prefix or
// message is written as U+FFFD.
type Prefixed struct {
	prefix string
	out    zerolog.Logger
	errOut zerolog.Logger
}

type prefixedOptions struct {
	prefix *string
	out    io.Writer
	errOut io.Writer
}

// PrefixedOption configures a Prefixed logger.
type PrefixedOption func(*prefixedOptions)

// WithPrefix sets the line prefix. An empty prefix is kept as-is.
func WithPrefix(prefix string) PrefixedOption {
	return func(o *prefixedOptions) { o.prefix = &prefix }
}

// WithOutput sets the stream used by Log. Defaults to os.Stdout.
func WithOutput(w io.Writer) PrefixedOption {
	return func(o *prefixedOptions) { o.out = w }
}

// WithErrorOutput sets the stream used by Error. Defaults to os.Stderr.
func WithErrorOutput(w io.Writer) PrefixedOption {
	return func(o *prefixedOptions) { o.errOut = w }
}

// NewPrefixed creates a Prefixed logger. Without WithPrefix the prefix is
// DefaultPrefix.
func NewPrefixed(opts ...PrefixedOption) *Prefixed {
	o := prefixedOptions{out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	return &Prefixed{
		prefix: util.DerefOr(o.prefix, DefaultPrefix),
		out:    newLineLogger(o.out),
		errOut: newLineLogger(o.errOut),
	}
}

// NewPrefixedFromConfig creates a Prefixed logger using cfg.Prefix.
// Options given here are applied after the config and win over it.
func NewPrefixedFromConfig(cfg *Config, opts ...PrefixedOption) *Prefixed {
	var all []PrefixedOption
	if cfg != nil && cfg.Prefix != nil {
		all = append(all, WithPrefix(*cfg.Prefix))
	}
	return NewPrefixed(append(all, opts...)...)
}

// Prefix returns the prefix written before every message.
func (p *Prefixed) Prefix() string {
	return p.prefix
}

// Log writes "{prefix} {msg}" to the output stream.
func (p *Prefixed) Log(msg string) {
	p.out.Log().Msg(p.prefix + " " + msg)
}

// Error writes "{prefix} [ERROR] {msg}" to the error stream.
func (p *Prefixed) Error(msg string) {
	p.errOut.Log().Msg(p.prefix + " " + ErrorTag + " " + msg)
}

// newLineLogger renders only the message part, with no level, timestamp or
// colour, and finishes each event with a newline in a single write.
// Events are sent without a level so the global level cannot drop them.
func newLineLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	})
}
