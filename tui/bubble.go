// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dynstack-cli/dynstack/constant"
	"github.com/dynstack-cli/dynstack/internal/ui"
	"github.com/dynstack-cli/dynstack/key"
	"github.com/dynstack-cli/dynstack/stack"
	"github.com/dynstack-cli/dynstack/style"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// undoEntry records the inverse of a single workbench mutation.
type undoEntry struct {
	// wasPush marks an undo entry created by a push; undoing it pops.
	wasPush bool
	// value holds the popped payload to re-push when undoing a pop.
	value string
}

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
type statefulBubble struct {
	state         state
	statesHistory *stack.Stack[state]

	keymap *statefulKeymap

	// components
	inputC      textinput.Model
	nameC       textinput.Model
	workbenchC  list.Model
	snapshotsC  list.Model
	helpC       help.Model

	workbench   *stack.Stack[string]
	undoJournal *stack.Stack[undoEntry]

	pushSuggestion mo.Option[string]
	lastError      error

	width, height int
	notifier      *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState facilitates an idempotent transition to a target state, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		errorState,
	}, b.state) {
		lo.Must0(b.statesHistory.Push(b.state))
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Pop().Get(); ok {
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	b.workbenchC.SetSize(listWidth, listHeight)
	b.workbenchC.Help.Width = listWidth

	b.snapshotsC.SetSize(listWidth, listHeight)
	b.snapshotsC.Help.Width = listWidth

	b.inputC.Width = listWidth
	b.nameC.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth
}

// syncWorkbench rebuilds the workbench list items from the live stack, top-down.
func (b *statefulBubble) syncWorkbench() tea.Cmd {
	items := make([]list.Item, 0, b.workbench.Size())

	depth := 0
	b.workbench.Map(func(f *stack.Frame[string]) {
		items = append(items, &listItem{internal: &payload{value: f.Data(), depth: depth}})
		depth++
	})

	b.workbenchC.Title = fmt.Sprintf("Workbench - %s", util.Quantify(b.workbench.Size(), "element", "elements"))
	return b.workbenchC.SetItems(items)
}

// recordUndo appends to the undo journal, resetting it when the configured depth is exceeded.
func (b *statefulBubble) recordUndo(entry undoEntry) {
	if depth := viper.GetInt(key.WorkbenchUndoDepth); depth > 0 && b.undoJournal.Size() >= depth {
		b.undoJournal.Clear()
	}

	lo.Must0(b.undoJournal.Push(entry))
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: lo.Must(stack.New[state](stack.Discard[state], stack.Sprint[state])),
		keymap:        keymap,

		workbench: lo.Must(stack.New[string](
			stack.Discard[string],
			func(v string) string { return v },
		)),
		undoJournal: lo.Must(stack.New[undoEntry](stack.Discard[undoEntry], stack.Sprint[undoEntry])),

		notifier: &ui.Model{},
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Payload to push (v%s)", constant.Version)
	bubble.inputC.CharLimit = 120
	bubble.inputC.Prompt = viper.GetString(key.TUIPushPrompt)

	bubble.nameC = textinput.New()
	bubble.nameC.Placeholder = "Snapshot name"
	bubble.nameC.CharLimit = 60
	bubble.nameC.Prompt = "Name: "

	bubble.workbenchC = makeList("Workbench", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
		),
	})
	bubble.workbenchC.SetStatusBarItemName("element", "elements")

	bubble.snapshotsC = makeList("Snapshots", true, &listOptions{
		TitleStyle: mo.Some(
			lipgloss.NewStyle().Foreground(style.Base).Background(style.Yellow).Padding(0, 1),
		),
	})
	bubble.snapshotsC.SetStatusBarItemName("snapshot", "snapshots")

	bubble.options = options

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
