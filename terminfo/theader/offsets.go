package theader

import (
	"github.com/thanhnguyen2187/tinfo/ds"
	"github.com/thanhnguyen2187/tinfo/terminfo/tbytes"
	"github.com/thanhnguyen2187/tinfo/terminfo/terr"
)

// ComputeOffsets lays the sections out one after another. A pad byte is
// inserted after the booleans whenever the numbers would start on an odd
// offset.
func ComputeOffsets(header Header) Offsets {
	offsets := Offsets{}
	offsets.Headers = 0
	offsets.Names = DefaultHeaderSize
	offsets.Booleans = offsets.Names + header.NamesBytes
	offsets.Numbers = ds.NearestDivisibleByM(
		offsets.Booleans+header.BooleansBytes,
		tbytes.Int16Size,
	)
	offsets.Strings = offsets.Numbers + header.NumbersCount*header.NumberWidth()
	offsets.StringTable = offsets.Strings + header.StringsCount*tbytes.Int16Size
	offsets.End = offsets.StringTable + header.StringTableBytes
	return offsets
}

// Validate fails with a FormatError naming the first section that does not
// fit into size bytes.
func (o Offsets) Validate(header Header, size int) error {
	sections := []struct {
		name  string
		start int
		end   int
	}{
		{SectionHeaders, o.Headers, o.Names},
		{SectionNames, o.Names, o.Names + header.NamesBytes},
		{SectionBooleans, o.Booleans, o.Booleans + header.BooleansBytes},
		{SectionNumbers, o.Numbers, o.Strings},
		{SectionStrings, o.Strings, o.StringTable},
		{SectionStringTable, o.StringTable, o.End},
	}
	for _, section := range sections {
		// an empty section may sit exactly at the end of the data
		if section.end > size || (section.start > size && section.end > section.start) {
			return terr.Truncated(section.name)
		}
	}
	return nil
}
