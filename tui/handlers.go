// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// snapshotsLoadedMsg carries the saved snapshots, sorted by name.
type snapshotsLoadedMsg []*snapshot.Snapshot

// snapshotSavedMsg carries the name of a freshly persisted snapshot.
type snapshotSavedMsg string

// snapshotRemovedMsg carries the name of a deleted snapshot.
type snapshotRemovedMsg string

// loadSnapshots reads the snapshot registry off the UI loop.
func (b *statefulBubble) loadSnapshots() tea.Cmd {
	return func() tea.Msg {
		saved, err := snapshot.Get()
		if err != nil {
			return err
		}

		snaps := lo.Values(saved)
		slices.SortFunc(snaps, func(a, b *snapshot.Snapshot) int {
			return strings.Compare(a.Name, b.Name)
		})

		return snapshotsLoadedMsg(snaps)
	}
}

// saveSnapshot persists the current workbench under the given name off the UI loop.
func (b *statefulBubble) saveSnapshot(name string) tea.Cmd {
	return func() tea.Msg {
		if err := snapshot.Save(name, b.workbench); err != nil {
			return err
		}

		return snapshotSavedMsg(name)
	}
}

// removeSnapshot deletes a named snapshot off the UI loop.
func (b *statefulBubble) removeSnapshot(name string) tea.Cmd {
	return func() tea.Msg {
		if err := snapshot.Remove(name); err != nil {
			return err
		}

		return snapshotRemovedMsg(name)
	}
}

// restoreSnapshot replaces the live workbench with a saved snapshot's contents.
func (b *statefulBubble) restoreSnapshot(snap *snapshot.Snapshot) tea.Cmd {
	b.workbench = snap.Restore()
	b.undoJournal.Clear()
	return b.syncWorkbench()
}
