package tool

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/ds"
	"github.com/thanhnguyen2187/tinfo/terminal"
)

type (
	Cursor struct {
		base
	}
	Direction string
	// Position is zero based, the way cursor_address expects it.
	Position struct {
		Row int `json:"row"`
		Col int `json:"col"`
	}
)

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionHome  Direction = "home"
	// DirectionBOL moves to the beginning of the current line.
	DirectionBOL Direction = "bol"

	// Keep tells MoveTo to keep the current row or column.
	Keep = -1
)

func NewCursor(terminal Terminal) *Cursor {
	return &Cursor{base{terminal: terminal}}
}

// Position asks the terminal where the cursor is. The terminal is switched to
// silent mode for the reply, and back to normal mode afterwards unless it was
// already silent.
func (c *Cursor) Position() (*Position, error) {
	if c.terminal.Mode() == terminal.ModeSilent {
		return c.queryPosition()
	}
	if err := c.terminal.SilentMode(); err != nil {
		return nil, err
	}
	position, err := c.queryPosition()
	if normalErr := c.terminal.NormalMode(); normalErr != nil && err == nil {
		err = normalErr
	}
	if err != nil {
		return nil, err
	}
	return position, nil
}

func (c *Cursor) queryPosition() (*Position, error) {
	if err := c.sendCapability("user7"); err != nil {
		return nil, err
	}
	return ParsePositionReport(byteReaderOf(c.terminal.Input()))
}

// singleByteReader never reads past the byte it returns, so keys typed after
// the reply stay in the tty.
type singleByteReader struct {
	reader io.Reader
	buf    [1]byte
}

func (r *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.reader, r.buf[:]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

func byteReaderOf(reader io.Reader) io.ByteReader {
	if byteReader, ok := reader.(io.ByteReader); ok {
		return byteReader
	}
	return &singleByteReader{reader: reader}
}

// ParsePositionReport reads an "ESC [ row ; col R" reply and converts its one
// based values.
func ParsePositionReport(reader io.ByteReader) (*Position, error) {
	for _, expected := range []byte{'\x1b', '['} {
		b, err := reader.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "tool.ParsePositionReport error reading prefix")
		}
		if b != expected {
			return nil, errors.Errorf("tool.ParsePositionReport unexpected byte %q", b)
		}
	}

	row, err := readNumber(reader, ';')
	if err != nil {
		return nil, err
	}
	col, err := readNumber(reader, 'R')
	if err != nil {
		return nil, err
	}
	return &Position{Row: row - 1, Col: col - 1}, nil
}

func readNumber(reader io.ByteReader, delimiter byte) (int, error) {
	digits := make([]byte, 0, 4)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, errors.Wrapf(err, "tool.readNumber error waiting for %q", delimiter)
		}
		if b == delimiter {
			break
		}
		digits = append(digits, b)
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, errors.Wrapf(err, "tool.readNumber error parsing %q", digits)
	}
	return n, nil
}

// MoveTo moves to a zero based position. Keep for row or col queries the
// current position first.
func (c *Cursor) MoveTo(row int, col int) error {
	if row < 0 || col < 0 {
		position, err := c.Position()
		if err != nil {
			return err
		}
		if row < 0 {
			row = position.Row
		}
		if col < 0 {
			col = position.Col
		}
	}
	return c.sendCapability("cursor_address", row, col)
}

func (c *Cursor) Move(direction Direction, steps int) error {
	switch direction {
	case DirectionUp:
		return c.sendCapability("parm_up_cursor", steps)
	case DirectionDown:
		return c.sendCapability("parm_down_cursor", steps)
	case DirectionLeft:
		return c.sendCapability("parm_left_cursor", steps)
	case DirectionRight:
		return c.sendCapability("parm_right_cursor", steps)
	case DirectionHome:
		return c.MoveTo(0, 0)
	case DirectionBOL:
		return c.MoveTo(Keep, 0)
	default:
		return errors.Wrap(
			ds.ErrUnreachableCode{Caller: "tool.Cursor.Move", Value: direction},
			fmt.Sprintf("unknown direction %q", direction),
		)
	}
}

func (c *Cursor) Save() error {
	return c.sendCapability("save_cursor")
}

func (c *Cursor) Restore() error {
	return c.sendCapability("restore_cursor")
}

func (c *Cursor) Hide() error {
	return c.sendCapability("cursor_invisible")
}

func (c *Cursor) Show() error {
	return c.sendCapability("cursor_visible")
}
