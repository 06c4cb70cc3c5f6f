package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/config"
	"github.com/thanhnguyen2187/tinfo/logging"
	"github.com/thanhnguyen2187/tinfo/terminfo"
	"github.com/thanhnguyen2187/tinfo/terminfo/tcaps"
	"github.com/thanhnguyen2187/tinfo/ui"
	"go.uber.org/zap"
)

type (
	Args struct {
		Path        *PathCmd        `arg:"subcommand:path" help:"print the file the entry is read from"`
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"print the decoded entry as JSON"`
		Get         *GetCmd         `arg:"subcommand:get" help:"print one capability"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the capabilities"`
		Verbose     bool            `arg:"-v" help:"log every probed path"`
		Strict      bool            `help:"reject unknown magic numbers"`
	}
	// LookupArgs selects the entry. Both fall back to the environment.
	LookupArgs struct {
		Term string `arg:"-t" help:"terminal name, defaults to $TERM" placeholder:"NAME"`
		Root string `arg:"-r" help:"prefix of every searched directory" placeholder:"DIR"`
	}
	PathCmd struct {
		LookupArgs
	}
	DumpCmd struct {
		LookupArgs
		All   bool `help:"include absent capabilities as null"`
		Debug bool `help:"print the positional parse result instead"`
	}
	GetCmd struct {
		LookupArgs
		Kind string `arg:"required" help:"bool, num or str"`
		Name string `arg:"required" help:"long name or capname" placeholder:"CAP"`
	}
	InteractiveCmd struct {
		LookupArgs
	}
	// Runner executes a parsed command line.
	Runner struct {
		stdout io.Writer
		cfg    *config.Config
		logger *zap.Logger
		strict bool
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Read compiled terminfo entries from the command line.\n",
			"Entries are searched in $TERMINFO, $HOME/.terminfo, $TERMINFO_DIRS",
			"and the usual system directories.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (r *Runner) open(lookup LookupArgs) (*terminfo.Database, error) {
	root := lookup.Root
	if root == "" {
		root = r.cfg.RootPrefix
	}
	opts := []terminfo.Option{terminfo.WithLogger(r.logger)}
	if r.strict {
		opts = append(opts, terminfo.WithStrictMagic())
	}
	return terminfo.New(lookup.Term, root, opts...)
}

func (r *Runner) RunPath(cmd PathCmd) error {
	db, err := r.open(cmd.LookupArgs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.stdout, db.Path())
	return err
}

func (r *Runner) RunDump(cmd DumpCmd) error {
	db, err := r.open(cmd.LookupArgs)
	if err != nil {
		return err
	}

	var value any
	if cmd.Debug {
		value = db.Parsed()
	} else {
		value = ToOrderedMap(db, cmd.All)
	}
	bs, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cli.RunDump error")
	}
	_, err = fmt.Fprintln(r.stdout, string(bs))
	return err
}

func (r *Runner) RunGet(cmd GetCmd) error {
	kind, ok := tcaps.ParseKind(cmd.Kind)
	if !ok {
		return errors.Errorf("unknown kind %q, expected one of bool, num, str", cmd.Kind)
	}
	if _, ok := kind.Index(cmd.Name); !ok {
		return errors.Errorf("unknown %s capability %q", kind, cmd.Name)
	}
	db, err := r.open(cmd.LookupArgs)
	if err != nil {
		return err
	}

	switch kind {
	case tcaps.KindBool:
		_, err = fmt.Fprintln(r.stdout, db.Boolean(cmd.Name))
	case tcaps.KindNumber:
		n, ok := db.Number(cmd.Name)
		if !ok {
			return errors.Errorf("%s has no value for %q", db.Name(), cmd.Name)
		}
		_, err = fmt.Fprintln(r.stdout, n)
	case tcaps.KindString:
		s, ok := db.String(cmd.Name)
		if !ok {
			return errors.Errorf("%s has no value for %q", db.Name(), cmd.Name)
		}
		_, err = fmt.Fprintf(r.stdout, "%q\n", s)
	}
	return err
}

func (r *Runner) RunInteractive(cmd InteractiveCmd) error {
	db, err := r.open(cmd.LookupArgs)
	if err != nil {
		return err
	}
	return ui.Start(db)
}

// ToOrderedMap keeps catalog order. Absent values are skipped unless all is
// set, in which case they are null.
func ToOrderedMap(db *terminfo.Database, all bool) *orderedmap.OrderedMap {
	named := db.Named()

	booleans := orderedmap.New()
	named.Booleans.Each(func(name string, value bool) bool {
		if value || all {
			booleans.Set(name, value)
		}
		return true
	})
	numbers := orderedmap.New()
	named.Numbers.Each(func(name string, value int) bool {
		if value >= 0 {
			numbers.Set(name, value)
		} else if all {
			numbers.Set(name, nil)
		}
		return true
	})
	strs := orderedmap.New()
	named.Strings.Each(func(name string, value *string) bool {
		if value != nil {
			strs.Set(name, *value)
		} else if all {
			strs.Set(name, nil)
		}
		return true
	})

	lhm := orderedmap.New()
	lhm.Set("name", db.Name())
	lhm.Set("aliases", db.Aliases())
	lhm.Set("description", db.Description())
	lhm.Set("path", db.Path())
	lhm.Set("booleans", booleans)
	lhm.Set("numbers", numbers)
	lhm.Set("strings", strs)
	return lhm
}

// Run parses argv, without the program name, and executes the chosen
// subcommand. Help goes to stdout.
func Run(argv []string, stdout io.Writer) error {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "tinfo"}, &args)
	if err != nil {
		return errors.Wrap(err, "cli.Run error")
	}
	err = parser.Parse(argv)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg := config.LoadOrDefault()
	logCfg := cfg.LoggerConfig()
	if args.Verbose {
		logCfg = logging.DevelopmentConfig()
	}
	logger := logging.NewOrNop(logCfg)
	defer logger.Sync()

	runner := Runner{
		stdout: stdout,
		cfg:    cfg,
		logger: logger,
		strict: args.Strict || cfg.StrictMagic,
	}
	switch {
	case args.Path != nil:
		return runner.RunPath(*args.Path)
	case args.Dump != nil:
		return runner.RunDump(*args.Dump)
	case args.Get != nil:
		return runner.RunGet(*args.Get)
	case args.Interactive != nil:
		return runner.RunInteractive(*args.Interactive)
	default:
		parser.WriteHelp(stdout)
		return nil
	}
}

func Start() {
	if err := Run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tinfo:", err)
		os.Exit(1)
	}
}
