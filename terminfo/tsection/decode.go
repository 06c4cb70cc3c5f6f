package tsection

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/thanhnguyen2187/tinfo/terminfo/tbytes"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
	"github.com/thanhnguyen2187/tinfo/terminfo/theader"
)

func readSection(reader *tbytes.Reader, section string, offset int, n int) ([]byte, error) {
	if err := reader.SeekTo(offset); err != nil {
		return nil, errors.Wrap(terr.Truncated(section), err.Error())
	}
	bs, err := reader.ReadBytes(n)
	if err != nil {
		return nil, errors.Wrap(terr.Truncated(section), err.Error())
	}
	return bs, nil
}

// DecodeNames returns the raw names section, NUL terminator included.
func DecodeNames(reader *tbytes.Reader, offset int, size int) (string, error) {
	bs, err := readSection(reader, theader.SectionNames, offset, size)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func DecodeBooleans(reader *tbytes.Reader, offset int, size int) ([]bool, error) {
	bs, err := readSection(reader, theader.SectionBooleans, offset, size)
	if err != nil {
		return nil, err
	}
	booleans := lo.Map(
		bs,
		func(b byte, _ int) bool {
			return b == 1
		},
	)
	return booleans, nil
}

// DecodeNumbers reads count entries of width bytes each. With 4-byte entries
// every negative value is reported as NumberAbsent.
func DecodeNumbers(reader *tbytes.Reader, offset int, count int, width int) ([]int, error) {
	if width != tbytes.Int16Size && width != tbytes.Int32Size {
		return nil, &terr.FormatError{
			Section: theader.SectionNumbers,
			Reason:  fmt.Sprintf("unsupported number width %d", width),
		}
	}
	bs, err := readSection(reader, theader.SectionNumbers, offset, count*width)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, count)
	for i := 0; i < count; i++ {
		b := bs[i*width:]
		number := 0
		if width == tbytes.Int16Size {
			number = tbytes.ParseInt16(b[0], b[1])
		} else {
			number = tbytes.ParseInt32(b[0], b[1], b[2], b[3])
			if number < 0 {
				number = NumberAbsent
			}
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}

func DecodeStringTable(reader *tbytes.Reader, offset int, size int) ([]byte, error) {
	return readSection(reader, theader.SectionStringTable, offset, size)
}

// DecodeStrings reads count string offsets and resolves each one against the
// string table. Absent capabilities are nil.
func DecodeStrings(reader *tbytes.Reader, offset int, count int, table []byte) ([]*string, error) {
	bs, err := readSection(reader, theader.SectionStrings, offset, count*tbytes.Int16Size)
	if err != nil {
		return nil, err
	}

	strs := make([]*string, 0, count)
	for i := 0; i < count; i++ {
		stringOffset := tbytes.ParseInt16(bs[2*i], bs[2*i+1])
		value, err := StringValue(table, stringOffset)
		if err != nil {
			err := errors.Wrapf(err, "tsection.DecodeStrings error at index %d", i)
			return nil, err
		}
		strs = append(strs, value)
	}

	return strs, nil
}

// StringValue returns the bytes of table from offset up to the next NUL, or
// up to the end of the table when there is none. An offset at or past the end
// of the table gives an empty string.
func StringValue(table []byte, offset int) (*string, error) {
	if offset == StringAbsent || offset == StringCancelled {
		return nil, nil
	}
	if offset < 0 {
		return nil, &terr.FormatError{
			Section: theader.SectionStrings,
			Reason: fmt.Sprintf(
				"negative offset %d into the string table",
				offset,
			),
		}
	}

	if offset >= len(table) {
		return lo.ToPtr(""), nil
	}

	value := table[offset:]
	if end := bytes.IndexByte(value, 0); end >= 0 {
		value = value[:end]
	}
	return lo.ToPtr(string(value)), nil
}
