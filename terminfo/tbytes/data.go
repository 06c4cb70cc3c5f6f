package tbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	// Int16Size is the width of a legacy number or a string offset.
	Int16Size = 2
	// Int32Size is the width of a number in the extended number format.
	Int32Size = 4
	// Missing is what ParseInt16 returns for the 0xFF 0xFF pair.
	Missing = -1
)
