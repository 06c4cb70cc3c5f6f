package theader

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/terminfo/tbytes"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
)

// IsKnownMagic reports whether magic is one of the two formats with a known
// number width.
func IsKnownMagic(magic int) bool {
	return magic == MagicLegacy || magic == MagicExtendedNumbers
}

// NumberWidth returns the size in bytes of one entry of the numbers section.
// Unknown magic numbers are decoded with the legacy layout.
func (h Header) NumberWidth() int {
	if h.MagicNumber == MagicExtendedNumbers {
		return tbytes.Int32Size
	}
	return tbytes.Int16Size
}

// Decode reads the six header fields from the start of the reader. The magic
// number is recorded, not validated.
func Decode(reader *tbytes.Reader) (*Header, error) {
	if reader.Size() < DefaultHeaderSize {
		return nil, terr.Truncated(SectionHeaders)
	}
	if err := reader.SeekTo(0); err != nil {
		return nil, errors.Wrap(err, "theader.Decode error")
	}

	readInt := tbytes.CreateInt16ReadFunction(reader)
	headerInstructions := []tbytes.Instruction{
		{Key: "magic_number", ReadFunction: readInt},
		{Key: "names_bytes", ReadFunction: readInt},
		{Key: "booleans_bytes", ReadFunction: readInt},
		{Key: "numbers_count", ReadFunction: readInt},
		{Key: "strings_count", ReadFunction: readInt},
		{Key: "string_table_bytes", ReadFunction: readInt},
	}

	header, err := tbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "theader.Decode error")
	}
	if err := header.validate(); err != nil {
		return nil, err
	}

	return header, nil
}

func (h Header) validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"names bytes", h.NamesBytes},
		{"booleans bytes", h.BooleansBytes},
		{"numbers count", h.NumbersCount},
		{"strings count", h.StringsCount},
		{"string table bytes", h.StringTableBytes},
	}
	for _, field := range fields {
		if field.value < 0 {
			return &terr.FormatError{
				Section: SectionHeaders,
				Reason:  fmt.Sprintf("%s is %d", field.name, field.value),
			}
		}
	}
	return nil
}
