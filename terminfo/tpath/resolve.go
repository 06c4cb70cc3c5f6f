package tpath

import (
	"os"
	"strconv"
	"strings"

	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
	"go.uber.org/zap"
)

type (
	Resolver struct {
		env    Env
		logger *zap.Logger
		exists func(path string) bool
	}
	Option func(*Resolver)
)

var systemDirs = [...]string{
	"/usr/share/terminfo",
	"/usr/share/lib/terminfo",
	"/lib/terminfo",
	"/usr/lib/terminfo",
	"/usr/local/share/terminfo",
	"/usr/local/share/lib/terminfo",
	"/usr/local/lib/terminfo",
	"/usr/local/ncurses/lib/terminfo",
	"/opt/local/share/terminfo",
	"/opt/local/lib/terminfo",
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func NewResolver(env Env, opts ...Option) *Resolver {
	resolver := Resolver{
		env:    env,
		logger: zap.NewNop(),
		exists: fileExists,
	}
	for _, opt := range opts {
		opt(&resolver)
	}
	return &resolver
}

// Candidates lists the directories searched, in priority order. rootPrefix is
// prepended to each one as a plain string.
func (r *Resolver) Candidates(rootPrefix string) []string {
	dirs := make([]string, 0, len(systemDirs)+3)
	if r.env.Terminfo != nil {
		dirs = append(dirs, rootPrefix+*r.env.Terminfo)
	}
	if r.env.Home != nil {
		dirs = append(dirs, rootPrefix+*r.env.Home+"/.terminfo")
	}
	if r.env.TerminfoDirs != nil {
		for _, dir := range strings.Split(*r.env.TerminfoDirs, ":") {
			dirs = append(dirs, rootPrefix+dir)
		}
	}
	for _, dir := range systemDirs {
		dirs = append(dirs, rootPrefix+dir)
	}
	return dirs
}

// ResolvePath finds the compiled entry for termName. An empty termName falls
// back to DefaultTermName; a name that cannot be found falls back to "xterm"
// once.
func (r *Resolver) ResolvePath(termName string, rootPrefix string) (string, error) {
	if termName == "" {
		termName = DefaultTermName(r.env)
	}

	dirs := r.Candidates(rootPrefix)
	if path, ok := r.probe(dirs, termName); ok {
		return path, nil
	}
	if termName != FallbackTermName {
		r.logger.Debug(
			"terminal entry not found, falling back",
			zap.String("term", termName),
			zap.String("fallback", FallbackTermName),
		)
		if path, ok := r.probe(dirs, FallbackTermName); ok {
			return path, nil
		}
	}

	return "", &terr.NotFoundError{
		Term:     termName,
		Searched: dirs,
	}
}

func (r *Resolver) probe(dirs []string, termName string) (string, bool) {
	first := termName[0]
	hexPath := strconv.FormatUint(uint64(first), 16) + "/" + termName
	alphaPath := termName[:1] + "/" + termName
	for _, dir := range dirs {
		for _, path := range []string{dir + "/" + hexPath, dir + "/" + alphaPath} {
			found := r.exists(path)
			r.logger.Debug("probe", zap.String("path", path), zap.Bool("found", found))
			if found {
				return path, true
			}
		}
	}
	return "", false
}
