// Package mini implements a lightweight, minimalist prompt interface for operating the workbench stack.
package mini

import (
	"fmt"
	"os"

	"github.com/dynstack-cli/dynstack/stack"
	"github.com/dynstack-cli/dynstack/style"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var truncateAt = 100

// Options encapsulates the runtime configuration for the mini interface.
type Options struct {
	// Snapshot names a saved snapshot to restore into the workbench on startup.
	Snapshot mo.Option[string]
}

// undo records the inverse of a single workbench mutation.
type undo struct {
	// wasPush marks an undo entry created by a push; undoing it pops.
	wasPush bool
	// value holds the popped payload to re-push when undoing a pop.
	value string
}

type mini struct {
	width, height int

	state         state
	statesHistory *stack.Stack[state]

	workbench   *stack.Stack[string]
	undoJournal *stack.Stack[undo]
}

func newMini() *mini {
	return &mini{
		statesHistory: lo.Must(stack.New[state](stack.Discard[state], stack.Sprint[state])),
		workbench: lo.Must(stack.New[string](
			stack.Discard[string],
			func(v string) string { return v },
		)),
		undoJournal: lo.Must(stack.New[undo](stack.Discard[undo], stack.Sprint[undo])),
	}
}

func (m *mini) previousState() {
	if s, ok := m.statesHistory.Pop().Get(); ok {
		m.setState(s)
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	lo.Must0(m.statesHistory.Push(m.state))
	m.setState(s)
}

// Run executes the mini interface loop until the user quits.
func Run(options *Options) error {
	m := newMini()
	m.state = opSelectState

	if name, ok := options.Snapshot.Get(); ok {
		if err := m.restoreSnapshot(name); err != nil {
			return err
		}
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for {
		if err := m.handleState(); err != nil {
			return err
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case opSelectState:
		return m.handleOpSelectState()
	case pushState:
		return m.handlePushState()
	case snapshotSaveState:
		return m.handleSnapshotSaveState()
	case snapshotLoadState:
		return m.handleSnapshotLoadState()
	case quitState:
		os.Exit(0)
	}

	return nil
}

func title(s string) {
	fmt.Println(style.Title(s))
}

func fail(s string) {
	fmt.Println(style.Fg(style.ErrorColor)(s))
}

func progress(s string) (eraser func()) {
	return util.PrintErasable(s)
}
