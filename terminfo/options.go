package terminfo

import (
	"github.com/thanhnguyen2187/tinfo/terminfo/tparse"
	"github.com/thanhnguyen2187/tinfo/terminfo/tpath"
	"go.uber.org/zap"
)

type (
	options struct {
		env        *tpath.Env
		logger     *zap.Logger
		parserOpts []tparse.Option
	}
	Option func(*options)
)

// WithEnv replaces the process environment used for the search.
func WithEnv(env tpath.Env) Option {
	return func(o *options) {
		o.env = &env
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithStrictMagic() Option {
	return func(o *options) {
		o.parserOpts = append(o.parserOpts, tparse.WithStrictMagic())
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
