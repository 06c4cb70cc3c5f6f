package theader

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/tinfo/terminfo/tbytes"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
)

func readFixture(t *testing.T, name string) []byte {
	bs, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)
	return bs
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		fixture string
		header  Header
		offsets Offsets
	}{
		{
			fixture: "xterm-256color",
			header:  Header{MagicExtendedNumbers, 37, 38, 15, 413, 1626},
			offsets: Offsets{
				Headers:     0,
				Names:       12,
				Booleans:    49,
				Numbers:     88,
				Strings:     148,
				StringTable: 974,
				End:         2600,
			},
		},
		{
			fixture: "xterm",
			header:  Header{MagicLegacy, 61, 38, 15, 413, 1552},
			offsets: Offsets{
				Headers:     0,
				Names:       12,
				Booleans:    73,
				Numbers:     112,
				Strings:     142,
				StringTable: 968,
				End:         2520,
			},
		},
		{
			fixture: "dumb",
			header:  Header{MagicLegacy, 24, 2, 1, 130, 8},
			offsets: Offsets{
				Headers:     0,
				Names:       12,
				Booleans:    36,
				Numbers:     38,
				Strings:     40,
				StringTable: 300,
				End:         308,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.fixture, func(t *testing.T) {
			bs := readFixture(t, testCase.fixture)
			header, err := Decode(tbytes.NewBytesReader(bs))
			require.NoError(t, err)
			assert.Equal(t, testCase.header, *header)

			offsets := ComputeOffsets(*header)
			assert.Equal(t, testCase.offsets, offsets)
			assert.NoError(t, offsets.Validate(*header, len(bs)))
		})
	}
}

func TestDecode_Truncated(t *testing.T) {
	_, err := Decode(tbytes.NewBytesReader([]byte{0x1A, 0x01, 0x00}))
	var formatErr *terr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, SectionHeaders, formatErr.Section)
}

func TestDecode_NegativeField(t *testing.T) {
	bs := []byte{
		0x1A, 0x01,
		0xFF, 0xFF, // names bytes
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}
	_, err := Decode(tbytes.NewBytesReader(bs))
	var formatErr *terr.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, "names bytes")
}

func TestDecode_UnknownMagic(t *testing.T) {
	bs := []byte{
		0x34, 0x12,
		0x02, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}
	header, err := Decode(tbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, 0x1234, header.MagicNumber)
	assert.False(t, IsKnownMagic(header.MagicNumber))
	assert.Equal(t, tbytes.Int16Size, header.NumberWidth())
}

func TestComputeOffsets_Padding(t *testing.T) {
	// 12 + 5 + 2 = 19, so the numbers start at 20
	odd := ComputeOffsets(Header{MagicLegacy, 5, 2, 1, 1, 1})
	assert.Equal(t, 20, odd.Numbers)
	assert.Equal(t, 22, odd.Strings)
	assert.Equal(t, 24, odd.StringTable)
	assert.Equal(t, 25, odd.End)

	even := ComputeOffsets(Header{MagicLegacy, 6, 2, 1, 1, 1})
	assert.Equal(t, 20, even.Numbers)

	wide := ComputeOffsets(Header{MagicExtendedNumbers, 6, 2, 3, 0, 0})
	assert.Equal(t, 32, wide.Strings)
}

func TestComputeOffsets_Ordered(t *testing.T) {
	for namesBytes := 0; namesBytes < 8; namesBytes++ {
		for booleansBytes := 0; booleansBytes < 8; booleansBytes++ {
			header := Header{MagicLegacy, namesBytes, booleansBytes, 3, 4, 5}
			o := ComputeOffsets(header)
			assert.LessOrEqual(t, o.Headers, o.Names)
			assert.LessOrEqual(t, o.Names, o.Booleans)
			assert.LessOrEqual(t, o.Booleans, o.Numbers)
			assert.Less(t, o.Numbers, o.Strings)
			assert.Less(t, o.Strings, o.StringTable)
			assert.Less(t, o.StringTable, o.End)
			assert.Zero(t, o.Numbers%2)
		}
	}
}

func TestOffsets_Validate(t *testing.T) {
	header := Header{MagicLegacy, 6, 2, 1, 2, 10}
	offsets := ComputeOffsets(header)
	require.Equal(t, 36, offsets.End)

	assert.NoError(t, offsets.Validate(header, 36))
	assert.NoError(t, offsets.Validate(header, 4096))

	testCases := map[int]string{
		11: SectionHeaders,
		15: SectionNames,
		19: SectionBooleans,
		21: SectionNumbers,
		25: SectionStrings,
		35: SectionStringTable,
	}
	for size, section := range testCases {
		err := offsets.Validate(header, size)
		var formatErr *terr.FormatError
		require.ErrorAs(t, err, &formatErr, "size %d", size)
		assert.Equal(t, section, formatErr.Section, "size %d", size)
	}
}
