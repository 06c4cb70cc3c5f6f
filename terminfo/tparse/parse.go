package tparse

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/terminfo/tbytes"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
	"github.com/thanhnguyen2187/tinfo/terminfo/theader"
	"github.com/thanhnguyen2187/tinfo/terminfo/tsection"
)

// New creates a parser over blob. Nothing is decoded until Parse is called.
func New(blob []byte, opts ...Option) *Parser {
	parser := Parser{
		blob: blob,
	}
	for _, opt := range opts {
		opt(&parser)
	}
	return &parser
}

// Parse decodes the blob on the first call. Every later call returns the
// same result and the same error.
func (p *Parser) Parse() (*Parsed, error) {
	p.once.Do(func() {
		p.parsed, p.err = decode(p.blob, p.strictMagic)
		atomic.StoreInt32(&p.done, 1)
	})
	return p.parsed, p.err
}

func (p *Parser) IsParsed() bool {
	return atomic.LoadInt32(&p.done) == 1
}

func decode(blob []byte, strictMagic bool) (*Parsed, error) {
	reader := tbytes.NewBytesReader(blob)
	parsed := Parsed{}

	header, err := theader.Decode(reader)
	if err != nil {
		return nil, err
	}
	if strictMagic && !theader.IsKnownMagic(header.MagicNumber) {
		return nil, &terr.FormatError{
			Section: theader.SectionHeaders,
			Reason:  fmt.Sprintf("unknown magic number %#o", header.MagicNumber),
		}
	}
	parsed.Header = *header

	parsed.Offsets = theader.ComputeOffsets(parsed.Header)
	if err := parsed.Offsets.Validate(parsed.Header, len(blob)); err != nil {
		return nil, err
	}

	parsed.Names, err = tsection.DecodeNames(
		reader, parsed.Offsets.Names, header.NamesBytes,
	)
	if err != nil {
		return nil, errors.Wrap(err, "tparse.decode error")
	}

	parsed.Booleans, err = tsection.DecodeBooleans(
		reader, parsed.Offsets.Booleans, header.BooleansBytes,
	)
	if err != nil {
		return nil, errors.Wrap(err, "tparse.decode error")
	}

	parsed.Numbers, err = tsection.DecodeNumbers(
		reader, parsed.Offsets.Numbers, header.NumbersCount, header.NumberWidth(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "tparse.decode error")
	}

	parsed.StringTable, err = tsection.DecodeStringTable(
		reader, parsed.Offsets.StringTable, header.StringTableBytes,
	)
	if err != nil {
		return nil, errors.Wrap(err, "tparse.decode error")
	}

	parsed.Strings, err = tsection.DecodeStrings(
		reader, parsed.Offsets.Strings, header.StringsCount, parsed.StringTable,
	)
	if err != nil {
		return nil, errors.Wrap(err, "tparse.decode error")
	}

	return &parsed, nil
}
