// Package terminal ties a tty to the terminfo entry of its terminal type.
package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/terminfo"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type (
	Mode string
	// ModeSwitcher changes the line discipline of a tty.
	ModeSwitcher interface {
		MakeRaw(fd int) (*term.State, error)
		Restore(fd int, state *term.State) error
	}
	Terminal struct {
		tty  string
		term string
		file *os.File
		// owned is set when Open opened the file itself
		owned    bool
		db       *terminfo.Database
		switcher ModeSwitcher
		logger   *zap.Logger

		mu    sync.Mutex
		mode  Mode
		state *term.State
		in    io.Reader
		out   io.Writer
	}
	Option  func(*options)
	options struct {
		file       *os.File
		db         *terminfo.Database
		rootPrefix string
		dbOpts     []terminfo.Option
		switcher   ModeSwitcher
		logger     *zap.Logger
	}
	xTermSwitcher struct{}
)

const (
	ModeNormal Mode = "normal"
	ModeSilent Mode = "silent"

	// DefaultTTY is the controlling terminal of the process.
	DefaultTTY = "/dev/tty"
)

func (xTermSwitcher) MakeRaw(fd int) (*term.State, error) {
	return term.MakeRaw(fd)
}

func (xTermSwitcher) Restore(fd int, state *term.State) error {
	return term.Restore(fd, state)
}

// WithFile uses an already open tty instead of opening one. The caller keeps
// ownership of the file.
func WithFile(file *os.File) Option {
	return func(o *options) {
		o.file = file
	}
}

// WithDatabase skips the terminfo lookup.
func WithDatabase(db *terminfo.Database) Option {
	return func(o *options) {
		o.db = db
	}
}

func WithRootPrefix(rootPrefix string) Option {
	return func(o *options) {
		o.rootPrefix = rootPrefix
	}
}

func WithDatabaseOptions(opts ...terminfo.Option) Option {
	return func(o *options) {
		o.dbOpts = append(o.dbOpts, opts...)
	}
}

func WithModeSwitcher(switcher ModeSwitcher) Option {
	return func(o *options) {
		o.switcher = switcher
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Open binds tty to the terminfo entry of termName. An empty tty means
// DefaultTTY; an empty termName is resolved the way terminfo.New does it.
// Input and output default to the standard streams.
func Open(tty string, termName string, opts ...Option) (*Terminal, error) {
	o := options{
		switcher: xTermSwitcher{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if tty == "" {
		tty = DefaultTTY
	}

	db := o.db
	if db == nil {
		dbOpts := append([]terminfo.Option{terminfo.WithLogger(o.logger)}, o.dbOpts...)
		var err error
		db, err = terminfo.New(termName, o.rootPrefix, dbOpts...)
		if err != nil {
			return nil, errors.Wrap(err, "terminal.Open error")
		}
	}

	file := o.file
	owned := false
	if file == nil {
		var err error
		file, err = os.OpenFile(tty, os.O_RDWR, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "terminal.Open error opening %q", tty)
		}
		owned = true
	}

	o.logger.Debug(
		"opened terminal",
		zap.String("tty", tty),
		zap.String("term", termName),
		zap.String("entry", db.Name()),
	)

	return &Terminal{
		tty:      tty,
		term:     termName,
		file:     file,
		owned:    owned,
		db:       db,
		switcher: o.switcher,
		logger:   o.logger,
		mode:     ModeNormal,
		in:       os.Stdin,
		out:      os.Stdout,
	}, nil
}

// SilentMode turns echo and line buffering off so that replies of the
// terminal can be read byte by byte. The previous state is kept for
// NormalMode.
func (t *Terminal) SilentMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode == ModeSilent {
		return nil
	}
	state, err := t.switcher.MakeRaw(int(t.file.Fd()))
	if err != nil {
		return errors.Wrapf(err, "terminal.SilentMode error on %q", t.tty)
	}
	t.state = state
	t.mode = ModeSilent
	return nil
}

func (t *Terminal) NormalMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mode == ModeNormal {
		return nil
	}
	if err := t.switcher.Restore(int(t.file.Fd()), t.state); err != nil {
		return errors.Wrapf(err, "terminal.NormalMode error on %q", t.tty)
	}
	t.state = nil
	t.mode = ModeNormal
	return nil
}

// Close goes back to normal mode and closes the tty if Open opened it.
func (t *Terminal) Close() error {
	if err := t.NormalMode(); err != nil {
		return err
	}
	if !t.owned {
		return nil
	}
	return t.file.Close()
}

func (t *Terminal) Mode() Mode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

// IsTerminal reports whether the bound file is a terminal at all.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.file.Fd()))
}

func (t *Terminal) TTY() string {
	return t.tty
}

func (t *Terminal) Term() string {
	return t.term
}

func (t *Terminal) Database() *terminfo.Database {
	return t.db
}

func (t *Terminal) Capabilities() terminfo.Capabilities {
	return t.db
}

func (t *Terminal) Input() io.Reader {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.in
}

func (t *Terminal) Output() io.Writer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out
}

func (t *Terminal) SetInput(in io.Reader) *Terminal {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.in = in
	return t
}

func (t *Terminal) SetOutput(out io.Writer) *Terminal {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out = out
	return t
}
