// Package tcaps is the catalog of the standard capabilities, in the order the
// compiled format stores their values.
package tcaps

type (
	capability struct {
		name    string
		capname string
	}
	// Kind is one of the three value types a capability can have.
	Kind int
)

const (
	BoolCount   = 44
	NumberCount = 39
	StringCount = 414
)

const (
	KindBool Kind = iota
	KindNumber
	KindString
)

var (
	boolIndexes   = buildIndexes(booleans[:])
	numberIndexes = buildIndexes(numbers[:])
	stringIndexes = buildIndexes(strs[:])
)

func buildIndexes(caps []capability) map[string]int {
	indexes := make(map[string]int, 2*len(caps))
	for i, c := range caps {
		indexes[c.name] = i
	}
	// a capname never shadows a long name of another capability
	for i, c := range caps {
		if _, ok := indexes[c.capname]; !ok {
			indexes[c.capname] = i
		}
	}
	return indexes
}

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "num"
	case KindString:
		return "str"
	default:
		return "unknown"
	}
}

func (k Kind) Count() int {
	switch k {
	case KindBool:
		return BoolCount
	case KindNumber:
		return NumberCount
	case KindString:
		return StringCount
	default:
		return 0
	}
}

func (k Kind) table() []capability {
	switch k {
	case KindBool:
		return booleans[:]
	case KindNumber:
		return numbers[:]
	case KindString:
		return strs[:]
	default:
		return nil
	}
}

func (k Kind) indexes() map[string]int {
	switch k {
	case KindBool:
		return boolIndexes
	case KindNumber:
		return numberIndexes
	case KindString:
		return stringIndexes
	default:
		return nil
	}
}

// ParseKind accepts the names printed by Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, kind := range []Kind{KindBool, KindNumber, KindString} {
		if kind.String() == s {
			return kind, true
		}
	}
	return 0, false
}

// Name returns the long name at position i, or "" when i is out of range.
func (k Kind) Name(i int) string {
	table := k.table()
	if i < 0 || i >= len(table) {
		return ""
	}
	return table[i].name
}

// Capname returns the short name at position i, or "" when i is out of range.
func (k Kind) Capname(i int) string {
	table := k.table()
	if i < 0 || i >= len(table) {
		return ""
	}
	return table[i].capname
}

// Names returns a copy of the long names in catalog order.
func (k Kind) Names() []string {
	table := k.table()
	names := make([]string, len(table))
	for i, c := range table {
		names[i] = c.name
	}
	return names
}

// Index looks a capability up by long name or capname.
func (k Kind) Index(name string) (int, bool) {
	i, ok := k.indexes()[name]
	return i, ok
}

func BoolName(i int) string   { return KindBool.Name(i) }
func NumberName(i int) string { return KindNumber.Name(i) }
func StringName(i int) string { return KindString.Name(i) }

func BoolNames() []string   { return KindBool.Names() }
func NumberNames() []string { return KindNumber.Names() }
func StringNames() []string { return KindString.Names() }

func BoolIndex(name string) (int, bool)   { return KindBool.Index(name) }
func NumberIndex(name string) (int, bool) { return KindNumber.Index(name) }
func StringIndex(name string) (int, bool) { return KindString.Index(name) }
