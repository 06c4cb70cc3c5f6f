// Package tool writes cursor and screen control sequences built from the
// capabilities of a terminal.
package tool

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/terminal"
	"github.com/thanhnguyen2187/tinfo/terminfo"
	xo "github.com/xo/terminfo"
)

type (
	// Terminal is what the tools need from terminal.Terminal.
	Terminal interface {
		Capabilities() terminfo.Capabilities
		Input() io.Reader
		Output() io.Writer
		Mode() terminal.Mode
		SilentMode() error
		NormalMode() error
	}
	// MissingCapabilityError is returned instead of writing an empty
	// sequence.
	MissingCapabilityError struct {
		Name string
	}
	base struct {
		terminal Terminal
	}
)

func (r *MissingCapabilityError) Error() string {
	return fmt.Sprintf("tool: terminal has no %q capability", r.Name)
}

func (b base) Terminal() Terminal {
	return b.terminal
}

func (b base) send(cmd string) error {
	if cmd == "" {
		return nil
	}
	_, err := io.WriteString(b.terminal.Output(), cmd)
	if err != nil {
		return errors.Wrap(err, "tool.send error")
	}
	return nil
}

func (b base) capability(name string) (string, error) {
	value, ok := b.terminal.Capabilities().String(name)
	if !ok {
		return "", &MissingCapabilityError{Name: name}
	}
	return value, nil
}

// sendCapability substitutes params into the named capability and writes
// the result.
func (b base) sendCapability(name string, params ...any) error {
	value, err := b.capability(name)
	if err != nil {
		return err
	}
	if len(params) == 0 {
		return b.send(value)
	}
	return b.send(xo.Printf([]byte(value), params...))
}
