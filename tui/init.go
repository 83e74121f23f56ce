// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dynstack-cli/dynstack/key"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/spf13/viper"
)

// Init initializes the terminal user interface, restoring the startup snapshot when one applies.
func (b *statefulBubble) Init() tea.Cmd {
	if name, ok := b.options.Snapshot.Get(); ok {
		snap, found := snapshot.Load(name).Get()
		if !found {
			b.raiseError(fmt.Errorf("snapshot %s not found", name))
			return nil
		}

		return tea.Batch(textinput.Blink, b.restoreSnapshot(snap))
	}

	// Auto-restore the default snapshot if configured
	if viper.GetBool(key.SnapshotsLoadOnStart) {
		if name := viper.GetString(key.SnapshotsDefault); name != "" {
			if snap, found := snapshot.Load(name).Get(); found {
				return tea.Batch(textinput.Blink, b.restoreSnapshot(snap))
			}
		}
	}

	return tea.Batch(textinput.Blink, b.syncWorkbench())
}
