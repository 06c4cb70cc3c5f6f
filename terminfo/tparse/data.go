package tparse

import (
	"sync"

	"github.com/thanhnguyen2187/tinfo/terminfo/theader"
)

type (
	// Parsed is the positional content of a compiled entry. Numbers use
	// tsection.NumberAbsent and Strings use nil for missing values.
	Parsed struct {
		Header      theader.Header  `json:"header"`
		Offsets     theader.Offsets `json:"offsets"`
		Names       string          `json:"names"`
		Booleans    []bool          `json:"booleans"`
		Numbers     []int           `json:"numbers"`
		StringTable []byte          `json:"-"`
		Strings     []*string       `json:"strings"`
	}
	Parser struct {
		blob        []byte
		strictMagic bool

		once   sync.Once
		done   int32
		parsed *Parsed
		err    error
	}
	Option func(*Parser)
)

// WithStrictMagic rejects every magic number other than the legacy and the
// extended number formats.
func WithStrictMagic() Option {
	return func(p *Parser) {
		p.strictMagic = true
	}
}
