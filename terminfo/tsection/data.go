package tsection

const (
	// NumberAbsent marks a numeric capability the entry does not define.
	NumberAbsent = -1

	// StringAbsent and StringCancelled are the two string offsets that mean
	// the capability has no value.
	StringAbsent    = -1
	StringCancelled = 0xFFFE
)
