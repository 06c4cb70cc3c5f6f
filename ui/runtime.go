// Package ui is an interactive browser for the capabilities of an entry.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/thanhnguyen2187/tinfo/terminfo"
)

func Start(db *terminfo.Database) error {
	browser := NewBrowser(db)
	if err := tea.NewProgram(browser, tea.WithAltScreen()).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
