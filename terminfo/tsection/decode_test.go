package tsection

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/tinfo/terminfo/tbytes"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
	"github.com/thanhnguyen2187/tinfo/terminfo/theader"
)

func TestDecodeNames(t *testing.T) {
	reader := tbytes.NewBytesReader([]byte("..dumb|80-column dumb tty\x00"))
	names, err := DecodeNames(reader, 2, 24)
	require.NoError(t, err)
	assert.Equal(t, "dumb|80-column dumb tty\x00", names)

	_, err = DecodeNames(reader, 2, 25)
	var formatErr *terr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, theader.SectionNames, formatErr.Section)
}

func TestDecodeBooleans(t *testing.T) {
	reader := tbytes.NewBytesReader([]byte{0x01, 0x00, 0x02, 0x01, 0xFF})
	booleans, err := DecodeBooleans(reader, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true, false}, booleans)

	booleans, err = DecodeBooleans(reader, 5, 0)
	require.NoError(t, err)
	assert.Empty(t, booleans)
}

func TestDecodeNumbers(t *testing.T) {
	legacy := tbytes.NewBytesReader([]byte{
		0x50, 0x00,
		0xFF, 0xFF,
		0x08, 0x00,
		0xFE, 0xFF,
	})
	numbers, err := DecodeNumbers(legacy, 0, 4, tbytes.Int16Size)
	require.NoError(t, err)
	assert.Equal(t, []int{80, NumberAbsent, 8, 65534}, numbers)

	extended := tbytes.NewBytesReader([]byte{
		0x00, 0x00, 0x01, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF,
		0xFE, 0xFF, 0xFF, 0xFF,
	})
	numbers, err = DecodeNumbers(extended, 0, 3, tbytes.Int32Size)
	require.NoError(t, err)
	assert.Equal(t, []int{65536, NumberAbsent, NumberAbsent}, numbers)

	_, err = DecodeNumbers(extended, 0, 4, tbytes.Int32Size)
	var formatErr *terr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, theader.SectionNumbers, formatErr.Section)

	_, err = DecodeNumbers(extended, 0, 1, 3)
	assert.Error(t, err)
}

func TestDecodeStrings(t *testing.T) {
	table := []byte("\x07\x00\r\x00\x1b[H\x1b[2J\x00tail")
	offsets := []byte{
		0x00, 0x00,
		0xFF, 0xFF,
		0x02, 0x00,
		0xFE, 0xFF,
		0x04, 0x00,
		0x0C, 0x00,
		0x05, 0x00,
	}
	reader := tbytes.NewBytesReader(offsets)
	strs, err := DecodeStrings(reader, 0, 7, table)
	require.NoError(t, err)

	values := lo.Map(
		strs,
		func(s *string, _ int) string {
			return lo.FromPtrOr(s, "<absent>")
		},
	)
	assert.Equal(
		t,
		[]string{"\x07", "<absent>", "\r", "<absent>", "\x1b[H\x1b[2J", "tail", "[H\x1b[2J"},
		values,
	)
}

func TestDecodeStrings_OffsetPastTable(t *testing.T) {
	reader := tbytes.NewBytesReader([]byte{0x00, 0x00, 0x04, 0x00, 0x10, 0x00})
	strs, err := DecodeStrings(reader, 0, 3, []byte("abc\x00"))
	require.NoError(t, err)
	require.Len(t, strs, 3)
	assert.Equal(t, "abc", *strs[0])
	require.NotNil(t, strs[1])
	assert.Equal(t, "", *strs[1])
	require.NotNil(t, strs[2])
	assert.Equal(t, "", *strs[2])
}

func TestStringValue_NegativeOffset(t *testing.T) {
	_, err := StringValue([]byte("abc\x00"), -5)
	var formatErr *terr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, theader.SectionStrings, formatErr.Section)
}

func TestStringValue(t *testing.T) {
	table := []byte("abc\x00\x00def")

	value, err := StringValue(table, 0)
	require.NoError(t, err)
	assert.Equal(t, "abc", *value)

	value, err = StringValue(table, 4)
	require.NoError(t, err)
	assert.Equal(t, "", *value)

	value, err = StringValue(table, 5)
	require.NoError(t, err)
	assert.Equal(t, "def", *value)

	value, err = StringValue(table, StringAbsent)
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = StringValue(table, len(table))
	assert.Error(t, err)
}
