package tpath

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Env is the part of the process environment that drives the search. A nil
// field means the variable is not set, which is not the same as set to "".
type Env struct {
	Term         *string `envconfig:"TERM"`
	Terminfo     *string `envconfig:"TERMINFO"`
	Home         *string `envconfig:"HOME"`
	TerminfoDirs *string `envconfig:"TERMINFO_DIRS"`
}

const (
	FallbackTermName = "xterm"
)

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, errors.Wrap(err, "tpath.LoadEnv error")
	}
	return &env, nil
}

// DefaultTermName is TERM when it is set and not empty, "xterm" otherwise.
func DefaultTermName(env Env) string {
	if env.Term != nil && *env.Term != "" {
		return *env.Term
	}
	return FallbackTermName
}
