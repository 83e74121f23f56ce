package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/dynstack-cli/dynstack/key"
	"github.com/dynstack-cli/dynstack/log"
	"github.com/dynstack-cli/dynstack/recall"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/dynstack-cli/dynstack/style"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type state int

const (
	opSelectState state = iota + 1
	pushState
	snapshotSaveState
	snapshotLoadState
	quitState
)

// Operation labels presented by the selector.
const (
	opPush     = "push"
	opPop      = "pop"
	opPeek     = "peek"
	opRender   = "render"
	opClear    = "clear"
	opUndo     = "undo"
	opSave     = "save snapshot"
	opLoad     = "load snapshot"
	opQuitMini = "quit"
)

func (m *mini) handleOpSelectState() error {
	util.ClearScreen()
	title(fmt.Sprintf("Workbench >> %s on stack", util.Quantify(m.workbench.Size(), "element", "elements")))

	if top, ok := m.workbench.Peek().Get(); ok {
		fmt.Println(style.Faint("top: " + style.Truncate(truncateAt)(top)))
	}

	var choice string
	prompt := &survey.Select{
		Message: "Operation",
		Options: []string{
			opPush, opPop, opPeek, opRender, opClear,
			opUndo, opSave, opLoad, opQuitMini,
		},
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	switch choice {
	case opPush:
		m.newState(pushState)
	case opPop:
		m.handlePop()
	case opPeek:
		m.workbench.PrintTop()
		pause()
	case opRender:
		m.workbench.Print()
		pause()
	case opClear:
		return m.handleClear()
	case opUndo:
		m.handleUndo()
	case opSave:
		m.newState(snapshotSaveState)
	case opLoad:
		m.newState(snapshotLoadState)
	case opQuitMini:
		m.newState(quitState)
	}

	return nil
}

func (m *mini) handlePushState() error {
	var payload string
	prompt := &survey.Input{
		Message: "Payload",
		Suggest: recall.SuggestMany,
	}

	err := survey.AskOne(prompt, &payload, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	if err := m.workbench.Push(payload); err != nil {
		return err
	}
	m.recordUndo(undo{wasPush: true})

	if err := recall.Remember(payload, 1); err != nil {
		log.Warnf("failed to remember payload: %v", err)
	}

	m.previousState()
	return nil
}

func (m *mini) handlePop() {
	data, ok := m.workbench.Pop().Get()
	if !ok {
		fail("Nothing to pop")
		pause()
		return
	}

	m.recordUndo(undo{value: data})
	fmt.Println(data)
	pause()
}

func (m *mini) handleClear() error {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Discard %s?", util.Quantify(m.workbench.Size(), "element", "elements")),
		Default: false,
	}

	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return err
	}

	if confirmed {
		m.workbench.Clear()
		m.undoJournal.Clear()
	}
	return nil
}

// handleUndo reverts the most recent recorded mutation: a push is undone by
// popping, a pop by re-pushing the recorded payload.
func (m *mini) handleUndo() {
	entry, ok := m.undoJournal.Pop().Get()
	if !ok {
		fail("Nothing to undo")
		pause()
		return
	}

	if entry.wasPush {
		m.workbench.Pop()
		return
	}

	lo.Must0(m.workbench.Push(entry.value))
}

// recordUndo appends to the undo journal, resetting it when the configured
// depth is exceeded.
func (m *mini) recordUndo(entry undo) {
	if depth := viper.GetInt(key.WorkbenchUndoDepth); depth > 0 && m.undoJournal.Size() >= depth {
		m.undoJournal.Clear()
	}

	lo.Must0(m.undoJournal.Push(entry))
}

func (m *mini) handleSnapshotSaveState() error {
	var name string
	prompt := &survey.Input{Message: "Snapshot name"}

	err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	erase := progress("Saving snapshot..")
	err = snapshot.Save(strings.TrimSpace(name), m.workbench)
	erase()
	if err != nil {
		return err
	}

	m.previousState()
	return nil
}

func (m *mini) handleSnapshotLoadState() error {
	names, err := snapshot.Names()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fail("No snapshots saved yet")
		pause()
		m.previousState()
		return nil
	}

	slices.Sort(names)

	var name string
	prompt := &survey.Select{
		Message: "Snapshot",
		Options: names,
	}

	if err := survey.AskOne(prompt, &name); err != nil {
		return err
	}

	if err := m.restoreSnapshot(name); err != nil {
		return err
	}

	m.previousState()
	return nil
}

// restoreSnapshot replaces the workbench contents with a saved snapshot.
func (m *mini) restoreSnapshot(name string) error {
	snap, ok := snapshot.Load(name).Get()
	if !ok {
		return errors.New("snapshot not found: " + name)
	}

	m.workbench.Clear()
	m.undoJournal.Clear()
	for i := len(snap.Items) - 1; i >= 0; i-- {
		if err := m.workbench.Push(snap.Items[i]); err != nil {
			return err
		}
	}

	return nil
}

// pause blocks until the user acknowledges the printed output.
func pause() {
	var confirmed bool
	_ = survey.AskOne(&survey.Confirm{Message: "Continue?", Default: true}, &confirmed)
}
