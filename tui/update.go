// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dynstack-cli/dynstack/internal/ui"
	"github.com/dynstack-cli/dynstack/log"
	"github.com/dynstack-cli/dynstack/recall"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case snapshotsLoadedMsg:
		items := make([]list.Item, len(msg))
		for i, snap := range msg {
			items[i] = &listItem{internal: snap}
		}

		cmd = tea.Batch(cmd, b.snapshotsC.SetItems(items))
		b.newState(snapshotsState)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			onListBack := func(l *list.Model) tea.Cmd {
				l.ResetSelected()
				l.ResetFilter()
				return tea.Batch(cmd, l.NewStatusMessage(""))
			}

			switch b.state {
			case pushState:
				b.inputC.SetValue("")
				b.inputC.Blur()
				b.pushSuggestion = mo.None[string]()
			case snapshotNameState:
				b.nameC.SetValue("")
				b.nameC.Blur()
			case snapshotsState:
				if b.snapshotsC.FilterState() != list.Unfiltered {
					b.snapshotsC, cmd = b.snapshotsC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.snapshotsC)
			case workbenchState:
				if b.workbenchC.FilterState() != list.Unfiltered {
					b.workbenchC, cmd = b.workbenchC.Update(msg)
					return b, cmd
				}
				cmd = onListBack(&b.workbenchC)
			}

			b.previousState()
			return b, cmd
		}
	}

	switch b.state {
	case workbenchState:
		return b.updateWorkbench(msg)
	case pushState:
		return b.updatePush(msg)
	case snapshotNameState:
		return b.updateSnapshotName(msg)
	case snapshotsState:
		return b.updateSnapshots(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateWorkbench(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {

		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.workbenchC.Items()); n > 0 && b.workbenchC.Index() == 0 {
				b.workbenchC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.workbenchC.Items()); n > 0 && b.workbenchC.Index() == n-1 {
				b.workbenchC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.push):
			b.newState(pushState)
			b.inputC.SetValue("")
			b.inputC.Focus()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.pop):
			data, ok := b.workbench.Pop().Get()
			if !ok {
				return b, ui.Notify("Nothing to pop")
			}

			b.recordUndo(undoEntry{value: data})
			return b, tea.Batch(b.syncWorkbench(), ui.Notify(fmt.Sprintf("Popped %s", data)))
		case bubblesKey.Matches(msg, b.keymap.peek):
			data, ok := b.workbench.Peek().Get()
			if !ok {
				return b, ui.Notify("The workbench is empty")
			}

			return b, ui.Notify(fmt.Sprintf("Top: %s", data))
		case bubblesKey.Matches(msg, b.keymap.clear):
			if b.workbench.IsEmpty() {
				return b, ui.Notify("The workbench is already empty")
			}

			n := b.workbench.Size()
			b.workbench.Clear()
			b.undoJournal.Clear()
			return b, tea.Batch(b.syncWorkbench(), ui.Notify(fmt.Sprintf("Discarded %d elements", n)))
		case bubblesKey.Matches(msg, b.keymap.undo):
			entry, ok := b.undoJournal.Pop().Get()
			if !ok {
				return b, ui.Notify("Nothing to undo")
			}

			if entry.wasPush {
				b.workbench.Pop()
			} else {
				lo.Must0(b.workbench.Push(entry.value))
			}
			return b, tea.Batch(b.syncWorkbench(), ui.Notify("Undone"))
		case bubblesKey.Matches(msg, b.keymap.save):
			b.newState(snapshotNameState)
			b.nameC.SetValue("")
			b.nameC.Focus()
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.load):
			return b, b.loadSnapshots()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	b.workbenchC, cmd = b.workbenchC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePush(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			data := b.inputC.Value()
			if err := b.workbench.Push(data); err != nil {
				b.raiseError(err)
				return b, nil
			}

			b.recordUndo(undoEntry{wasPush: true})

			// Synchronous on purpose: the update loop reads the suggestion
			// cache that Remember invalidates.
			if err := recall.Remember(data, 1); err != nil {
				log.Warnf("failed to remember payload: %v", err)
			}

			b.inputC.SetValue("")
			b.inputC.Blur()
			b.pushSuggestion = mo.None[string]()
			b.previousState()
			return b, tea.Batch(b.syncWorkbench(), ui.Notify(fmt.Sprintf("Pushed %s", data)))
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion) && b.pushSuggestion.IsPresent():
			b.inputC.SetValue(b.pushSuggestion.MustGet())
			b.pushSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if b.inputC.Value() != "" {
		if suggestion, ok := recall.Suggest(b.inputC.Value()).Get(); ok && suggestion != b.inputC.Value() {
			b.pushSuggestion = mo.Some(suggestion)
		} else {
			b.pushSuggestion = mo.None[string]()
		}
	} else if b.pushSuggestion.IsPresent() {
		b.pushSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateSnapshotName(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case snapshotSavedMsg:
		b.nameC.SetValue("")
		b.nameC.Blur()
		b.previousState()
		return b, ui.Notify(fmt.Sprintf("Saved snapshot %s", string(msg)))
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && strings.TrimSpace(b.nameC.Value()) != "":
			return b, b.saveSnapshot(strings.TrimSpace(b.nameC.Value()))
		}
	}

	b.nameC, cmd = b.nameC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSnapshots(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case snapshotRemovedMsg:
		return b, tea.Batch(b.loadSnapshots(), ui.Notify(fmt.Sprintf("Removed snapshot %s", string(msg))))
	case tea.KeyMsg:
		switch {

		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(b.snapshotsC.Items()); n > 0 && b.snapshotsC.Index() == 0 {
				b.snapshotsC.Select(n - 1)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(b.snapshotsC.Items()); n > 0 && b.snapshotsC.Index() == n-1 {
				b.snapshotsC.Select(0)
				return b, nil
			}
		case bubblesKey.Matches(msg, b.keymap.remove):
			if b.snapshotsC.SelectedItem() == nil {
				break
			}
			snap := b.snapshotsC.SelectedItem().(*listItem).internal.(*snapshot.Snapshot)
			return b, b.removeSnapshot(snap.Name)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.snapshotsC.SelectedItem() == nil {
				break
			}
			snap := b.snapshotsC.SelectedItem().(*listItem).internal.(*snapshot.Snapshot)

			cmd = b.restoreSnapshot(snap)
			b.previousState()
			return b, tea.Batch(cmd, ui.Notify(fmt.Sprintf("Restored snapshot %s", snap.Name)))
		}
	}

	b.snapshotsC, cmd = b.snapshotsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}
	return b, cmd
}
