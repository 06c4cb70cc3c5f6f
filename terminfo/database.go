// Package terminfo reads compiled terminfo entries and answers capability
// lookups by name.
package terminfo

import (
	"os"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/ds"
	"github.com/thanhnguyen2187/tinfo/terminfo/tcaps"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
	"github.com/thanhnguyen2187/tinfo/terminfo/tparse"
	"github.com/thanhnguyen2187/tinfo/terminfo/tpath"
	"go.uber.org/zap"
)

type (
	// Capabilities is the read side of a decoded entry.
	Capabilities interface {
		Boolean(name string) bool
		Number(name string) (int, bool)
		String(name string) (string, bool)
	}
	// Database is immutable once constructed and safe for concurrent use.
	Database struct {
		term   string
		root   string
		path   string
		parsed *tparse.Parsed
		named  Named
		names  NamesField
	}
)

var _ Capabilities = (*Database)(nil)

// New looks up the entry for termName under rootPrefix and decodes it.
func New(termName string, rootPrefix string, opts ...Option) (*Database, error) {
	o := buildOptions(opts)
	env := o.env
	if env == nil {
		loaded, err := tpath.LoadEnv()
		if err != nil {
			return nil, errors.Wrap(err, "terminfo.New error")
		}
		env = loaded
	}

	resolver := tpath.NewResolver(*env, tpath.WithLogger(o.logger))
	path, err := resolver.ResolvePath(termName, rootPrefix)
	if err != nil {
		return nil, err
	}

	db, err := load(path, o)
	if err != nil {
		return nil, err
	}
	db.term = termName
	db.root = rootPrefix
	return db, nil
}

// Load decodes the file at path without searching.
func Load(path string, opts ...Option) (*Database, error) {
	return load(path, buildOptions(opts))
}

func load(path string, o options) (*Database, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, &terr.IOError{Path: path, Err: err}
	}
	o.logger.Debug("read terminfo entry", zap.String("path", path), zap.Int("size", len(blob)))

	db, err := decode(blob, o)
	if err != nil {
		return nil, err
	}
	db.path = path
	return db, nil
}

// Decode builds a database from an in-memory entry.
func Decode(blob []byte, opts ...Option) (*Database, error) {
	return decode(blob, buildOptions(opts))
}

func decode(blob []byte, o options) (*Database, error) {
	parsed, err := tparse.New(blob, o.parserOpts...).Parse()
	if err != nil {
		return nil, err
	}
	names := ParseNamesField(parsed.Names)
	o.logger.Debug(
		"decoded terminfo entry",
		zap.String("name", names.Name),
		zap.Int("magic", parsed.Header.MagicNumber),
		zap.Int("booleans", len(parsed.Booleans)),
		zap.Int("numbers", len(parsed.Numbers)),
		zap.Int("strings", len(parsed.Strings)),
	)

	return &Database{
		parsed: parsed,
		named:  NewNamed(*parsed),
		names:  names,
	}, nil
}

// Boolean accepts a long name or a capname. Unknown names are false.
func (d *Database) Boolean(name string) bool {
	i, ok := tcaps.BoolIndex(name)
	if !ok {
		return false
	}
	value, _ := d.named.Booleans.Get(tcaps.BoolName(i))
	return value
}

// Number reports false for unknown names and absent values.
func (d *Database) Number(name string) (int, bool) {
	i, ok := tcaps.NumberIndex(name)
	if !ok {
		return 0, false
	}
	value, _ := d.named.Numbers.Get(tcaps.NumberName(i))
	if value < 0 {
		return 0, false
	}
	return value, true
}

// String reports false for unknown names and absent values.
func (d *Database) String(name string) (string, bool) {
	i, ok := tcaps.StringIndex(name)
	if !ok {
		return "", false
	}
	value, _ := d.named.Strings.Get(tcaps.StringName(i))
	if value == nil {
		return "", false
	}
	return *value, true
}

// Term returns the terminal name given to New, which may be empty.
func (d *Database) Term() string {
	return d.term
}

func (d *Database) Root() string {
	return d.root
}

// Path is empty for a database built with Decode.
func (d *Database) Path() string {
	return d.path
}

func (d *Database) Parsed() tparse.Parsed {
	return *d.parsed
}

// Named must not be modified.
func (d *Database) Named() Named {
	return d.named
}

func (d *Database) Name() string {
	return d.names.Name
}

func (d *Database) Aliases() []string {
	return ds.ShallowCopy(d.names.Aliases)
}

func (d *Database) Description() string {
	return d.names.Description
}
