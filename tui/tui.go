// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Snapshot names a saved snapshot to restore into the workbench on startup.
	Snapshot mo.Option[string]
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	bubble.newState(workbenchState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
