package tool

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/ds"
)

type (
	Screen struct {
		base
	}
	Part string
	// TextMode is a character attribute of the SGR family.
	TextMode string
)

const (
	PartAll       Part = "all"
	PartBOL       Part = "bol"
	PartEOL       Part = "eol"
	PartEOS       Part = "eos"
	PartLine      Part = "line"
	PartCharacter Part = "character"

	TextModeNone       TextMode = "none"
	TextModeHide       TextMode = "hide"
	TextModeBold       TextMode = "bold"
	TextModeUnderscore TextMode = "underscore"
	TextModeBlink      TextMode = "blink"
	TextModeInverse    TextMode = "inverse"
)

// textModeSequences holds the "on" and "off" sequence of each mode. none
// resets every attribute either way.
var textModeSequences = map[TextMode][2]string{
	TextModeNone:       {"\x1b[0m", "\x1b[0m"},
	TextModeHide:       {"\x1b[8m", "\x1b[28m"},
	TextModeBold:       {"\x1b[1m", "\x1b[22m"},
	TextModeUnderscore: {"\x1b[4m", "\x1b[24m"},
	TextModeBlink:      {"\x1b[5m", "\x1b[25m"},
	TextModeInverse:    {"\x1b[7m", "\x1b[27m"},
}

func NewScreen(terminal Terminal) *Screen {
	return &Screen{base{terminal: terminal}}
}

func (s *Screen) Clear(part Part) error {
	switch part {
	case PartAll:
		return s.sendCapability("clear_screen")
	case PartBOL:
		return s.sendCapability("clr_bol")
	case PartEOL:
		return s.sendCapability("clr_eol")
	case PartEOS:
		return s.sendCapability("clr_eos")
	default:
		return unknownPart("tool.Screen.Clear", part)
	}
}

// Delete removes count lines, or count characters at the cursor.
func (s *Screen) Delete(part Part, count int) error {
	switch part {
	case PartLine:
		return s.sendCapability("parm_delete_line", count)
	case PartCharacter:
		value, err := s.capability("delete_character")
		if err != nil {
			return err
		}
		return s.send(strings.Repeat(value, count))
	default:
		return unknownPart("tool.Screen.Delete", part)
	}
}

func (s *Screen) Insert(part Part, count int) error {
	switch part {
	case PartLine:
		return s.sendCapability("parm_insert_line", count)
	default:
		return unknownPart("tool.Screen.Insert", part)
	}
}

func (s *Screen) Mode(mode TextMode, on bool) error {
	sequences, ok := textModeSequences[mode]
	if !ok {
		return errors.Errorf("tool.Screen.Mode unknown mode %q", mode)
	}
	if on {
		return s.send(sequences[0])
	}
	return s.send(sequences[1])
}

// Foreground accepts one of ColorAliases or a six digit RGB hex value. The
// hex form needs a terminal with at least 256 colors.
func (s *Screen) Foreground(color string) error {
	return s.colorize("set_a_foreground", color)
}

func (s *Screen) Background(color string) error {
	return s.colorize("set_a_background", color)
}

func (s *Screen) colorize(capability string, color string) error {
	index, err := s.colorIndex(color)
	if err != nil {
		return err
	}
	return s.sendCapability(capability, index)
}

func (s *Screen) colorIndex(color string) (int, error) {
	if index, ok := AliasIndex(color); ok {
		return index, nil
	}
	maxColors, _ := s.terminal.Capabilities().Number("max_colors")
	if maxColors < PaletteSize {
		return 0, errors.Errorf(
			"tool.Screen.colorIndex %q is not a color alias and the terminal has %d colors",
			color, maxColors,
		)
	}
	index, ok := NearestPaletteIndex(color)
	if !ok {
		return 0, errors.Errorf("tool.Screen.colorIndex %q is neither a color alias nor an RGB hex value", color)
	}
	return index, nil
}

func unknownPart(caller string, part Part) error {
	return errors.Wrap(
		ds.ErrUnreachableCode{Caller: caller, Value: part},
		fmt.Sprintf("unknown part %q", part),
	)
}
