package terminfo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/thanhnguyen2187/tinfo/terminfo/tcaps"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
	"github.com/thanhnguyen2187/tinfo/terminfo/tparse"
	"github.com/thanhnguyen2187/tinfo/terminfo/tpath"
	"github.com/thanhnguyen2187/tinfo/terminfo/tsection"
	xo "github.com/xo/terminfo"
)

type EndToEndTestSuite struct {
	FileNames   []string
	Blobs       [][]byte
	Databases   []*Database
	Independent []*xo.Terminfo
	R           *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupSuite() {
	suite.R = suite.Require()
	suite.FileNames = []string{
		"xterm-256color",
		"xterm",
		"dumb",
	}
	suite.Blobs = lo.Map(
		suite.FileNames,
		func(name string, _ int) []byte {
			bs, err := os.ReadFile(filepath.Join("testdata", name))
			suite.R.NoError(err)
			return bs
		},
	)
	suite.Databases = lo.Map(
		suite.Blobs,
		func(bs []byte, _ int) *Database {
			db, err := Decode(bs)
			suite.R.NoError(err)
			return db
		},
	)
	suite.Independent = lo.Map(
		suite.Blobs,
		func(bs []byte, _ int) *xo.Terminfo {
			ti, err := xo.Decode(bs)
			suite.R.NoError(err)
			return ti
		},
	)
}

func (suite *EndToEndTestSuite) TestNames() {
	for i, db := range suite.Databases {
		ti := suite.Independent[i]
		suite.Equal(ti.Names[0], db.Name())
		suite.Equal(ti.Names[len(ti.Names)-1], db.Description())
		suite.Equal(ti.Names[1:len(ti.Names)-1], db.Aliases())
	}
}

func (suite *EndToEndTestSuite) TestBooleans() {
	for i, db := range suite.Databases {
		ti := suite.Independent[i]
		for j := 0; j < tcaps.BoolCount; j++ {
			name := tcaps.BoolName(j)
			suite.Equal(ti.Bools[j], db.Boolean(name), "%s %s", suite.FileNames[i], name)
			suite.Equal(ti.Bools[j], db.Boolean(tcaps.KindBool.Capname(j)), "%s %s", suite.FileNames[i], name)
		}
	}
}

func (suite *EndToEndTestSuite) TestNumbers() {
	for i, db := range suite.Databases {
		ti := suite.Independent[i]
		for j := 0; j < tcaps.NumberCount; j++ {
			name := tcaps.NumberName(j)
			expected, defined := ti.Nums[j]
			value, ok := db.Number(name)
			// xo reads 32-bit numbers as unsigned, so absent shows up as 0xFFFFFFFF.
			if !defined || int32(expected) < 0 {
				suite.False(ok, "%s %s", suite.FileNames[i], name)
				continue
			}
			suite.True(ok, "%s %s", suite.FileNames[i], name)
			suite.Equal(expected, value, "%s %s", suite.FileNames[i], name)
		}
	}
}

func (suite *EndToEndTestSuite) TestStrings() {
	for i, db := range suite.Databases {
		ti := suite.Independent[i]
		for j := 0; j < tcaps.StringCount; j++ {
			// the independent decoder reorders the pairs of acs_chars
			if j == xo.AcsChars {
				continue
			}
			name := tcaps.StringName(j)
			expected := ti.Strings[j]
			value, ok := db.String(name)
			if expected == nil {
				suite.False(ok, "%s %s", suite.FileNames[i], name)
				continue
			}
			suite.True(ok, "%s %s", suite.FileNames[i], name)
			suite.Equal(string(expected), value, "%s %s", suite.FileNames[i], name)
		}
	}
}

func (suite *EndToEndTestSuite) TestDecodeTwice() {
	for i, bs := range suite.Blobs {
		db, err := Decode(bs)
		suite.R.NoError(err)
		suite.Equal(suite.Databases[i].Parsed(), db.Parsed())

		first, err := json.Marshal(suite.Databases[i].Named())
		suite.R.NoError(err)
		second, err := json.Marshal(db.Named())
		suite.R.NoError(err)
		suite.Equal(string(first), string(second))
	}
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}

func TestDatabase_Xterm256Color(t *testing.T) {
	db, err := Load("testdata/xterm-256color")
	require.NoError(t, err)
	assert.Equal(t, "testdata/xterm-256color", db.Path())

	clearScreen, ok := db.String("clear_screen")
	require.True(t, ok)
	assert.Equal(t, "\x1b[H\x1b[2J", clearScreen)

	colors, ok := db.Number("max_colors")
	require.True(t, ok)
	assert.Equal(t, 256, colors)

	pairs, ok := db.Number("pairs")
	require.True(t, ok)
	assert.Equal(t, 65536, pairs)

	assert.True(t, db.Boolean("auto_right_margin"))
	assert.True(t, db.Boolean("ccc"))
	assert.False(t, db.Boolean("auto_left_margin"))

	_, ok = db.Number("lines_of_memory")
	assert.False(t, ok)
	_, ok = db.String("no_such_capability")
	assert.False(t, ok)
	assert.False(t, db.Boolean("no_such_capability"))
	_, ok = db.Number("clear_screen")
	assert.False(t, ok)

	assert.Equal(t, "xterm-256color", db.Name())
	assert.Empty(t, db.Aliases())
	assert.Equal(t, "xterm with 256 colors", db.Description())
}

func TestDatabase_Dumb(t *testing.T) {
	db, err := Load("testdata/dumb")
	require.NoError(t, err)

	_, ok := db.String("clear_screen")
	assert.False(t, ok)
	bell, ok := db.String("bel")
	require.True(t, ok)
	assert.Equal(t, "\x07", bell)

	// dumb declares two booleans only
	assert.False(t, db.Boolean("eat_newline_glitch"))
	// and a single number
	_, ok = db.Number("lines")
	assert.False(t, ok)

	named := db.Named()
	assert.Equal(t, tcaps.BoolCount, named.Booleans.Len())
	assert.Equal(t, tcaps.NumberCount, named.Numbers.Len())
	assert.Equal(t, tcaps.StringCount, named.Strings.Len())
	lines, _ := named.Numbers.Get("lines")
	assert.Equal(t, tsection.NumberAbsent, lines)
}

func TestDatabase_New(t *testing.T) {
	root := t.TempDir()
	blob, err := os.ReadFile("testdata/xterm")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(root+"/usr/share/terminfo/78", 0o755))
	require.NoError(t, os.WriteFile(root+"/usr/share/terminfo/78/xterm", blob, 0o644))

	db, err := New("ansi", root, WithEnv(tpath.Env{}))
	require.NoError(t, err)
	assert.Equal(t, "ansi", db.Term())
	assert.Equal(t, root, db.Root())
	assert.Equal(t, root+"/usr/share/terminfo/78/xterm", db.Path())
	assert.Equal(t, "xterm", db.Name())
	assert.Equal(t, []string{"xterm-debian"}, db.Aliases())

	db, err = New("", root, WithEnv(tpath.Env{Term: lo.ToPtr("xterm")}))
	require.NoError(t, err)
	assert.Equal(t, "", db.Term())
	assert.Equal(t, "xterm", db.Name())
}

func TestDatabase_NewFromProcessEnvironment(t *testing.T) {
	root := t.TempDir()
	blob, err := os.ReadFile("testdata/xterm-256color")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(root+"/custom/78", 0o755))
	require.NoError(t, os.WriteFile(root+"/custom/78/xterm-256color", blob, 0o644))

	t.Setenv("TERMINFO", "/custom")
	t.Setenv("TERM", "xterm-256color")

	db, err := New("", root)
	require.NoError(t, err)
	assert.Equal(t, root+"/custom/78/xterm-256color", db.Path())
}

func TestDatabase_StringOffsetAtTableEnd(t *testing.T) {
	blob := []byte{
		0x1A, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x02, 0x00,
		'a', 0x00,
		0x00, 0x00, 0x02, 0x00,
		'A', 0x00,
	}
	db, err := Decode(blob)
	require.NoError(t, err)

	backTab, ok := db.String("back_tab")
	assert.True(t, ok)
	assert.Equal(t, "A", backTab)

	bell, ok := db.String("bell")
	assert.True(t, ok)
	assert.Equal(t, "", bell)
}

func TestDatabase_Errors(t *testing.T) {
	_, err := New("xterm", t.TempDir(), WithEnv(tpath.Env{}))
	var notFoundErr *terr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	var ioErr *terr.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, os.ErrNotExist)

	blob, err := os.ReadFile("testdata/xterm")
	require.NoError(t, err)
	_, err = Decode(blob[:1000])
	var formatErr *terr.FormatError
	assert.ErrorAs(t, err, &formatErr)

	broken := append([]byte{}, blob...)
	broken[0] = 0x00
	_, err = Decode(broken)
	assert.NoError(t, err)
	_, err = Decode(broken, WithStrictMagic())
	assert.ErrorAs(t, err, &formatErr)
}

func TestParseNamesField(t *testing.T) {
	testCases := []struct {
		names    string
		expected NamesField
	}{
		{
			"xterm|xterm-debian|xterm terminal emulator (X Window System)\x00",
			NamesField{"xterm", []string{"xterm-debian"}, "xterm terminal emulator (X Window System)"},
		},
		{
			"dumb|80-column dumb tty\x00\x00",
			NamesField{"dumb", []string{}, "80-column dumb tty"},
		},
		{
			"vt100\x00",
			NamesField{"vt100", []string{}, ""},
		},
		{
			"",
			NamesField{"", []string{}, ""},
		},
		{
			"a|b|c|d",
			NamesField{"a", []string{"b", "c"}, "d"},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, ParseNamesField(testCase.names), testCase.names)
	}
}

func TestNewNamed_CatalogMismatch(t *testing.T) {
	parsed := tparse.Parsed{
		Booleans: lo.Times(tcaps.BoolCount+3, func(int) bool { return true }),
		Numbers:  []int{80},
		Strings:  []*string{lo.ToPtr("\t")},
	}
	named := NewNamed(parsed)
	assert.Equal(t, tcaps.BoolCount, named.Booleans.Len())
	assert.Equal(t, tcaps.BoolNames(), named.Booleans.Keys())

	columns, _ := named.Numbers.Get("columns")
	assert.Equal(t, 80, columns)
	initTabs, _ := named.Numbers.Get("init_tabs")
	assert.Equal(t, tsection.NumberAbsent, initTabs)

	backTab, _ := named.Strings.Get("back_tab")
	require.NotNil(t, backTab)
	assert.Equal(t, "\t", *backTab)
	bell, ok := named.Strings.Get("bell")
	assert.True(t, ok)
	assert.Nil(t, bell)
}
