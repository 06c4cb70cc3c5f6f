package theader

type (
	Header struct {
		MagicNumber      int `json:"magic_number"`
		NamesBytes       int `json:"names_bytes"`
		BooleansBytes    int `json:"booleans_bytes"`
		NumbersCount     int `json:"numbers_count"`
		StringsCount     int `json:"strings_count"`
		StringTableBytes int `json:"string_table_bytes"`
	}
	// Offsets holds the byte offset of every section, counted from the start
	// of the data. End is the offset right after the string table.
	Offsets struct {
		Headers     int `json:"headers"`
		Names       int `json:"names"`
		Booleans    int `json:"booleans"`
		Numbers     int `json:"numbers"`
		Strings     int `json:"strings"`
		StringTable int `json:"string_table"`
		End         int `json:"end"`
	}
)

const (
	// DefaultHeaderSize is six 16-bit fields.
	DefaultHeaderSize = 12

	// MagicLegacy is octal 0432, the format with 16-bit numbers.
	MagicLegacy = 0o432
	// MagicExtendedNumbers is octal 01036, written by ncurses 6.1 and later
	// when numbers need 32 bits.
	MagicExtendedNumbers = 0o1036
)

const (
	SectionHeaders     = "headers"
	SectionNames       = "names"
	SectionBooleans    = "booleans"
	SectionNumbers     = "numbers"
	SectionStrings     = "strings"
	SectionStringTable = "string table"
)
