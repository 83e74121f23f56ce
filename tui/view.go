// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dynstack-cli/dynstack/color"
	"github.com/dynstack-cli/dynstack/icon"
	"github.com/dynstack-cli/dynstack/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case workbenchState:
		output = b.viewWorkbench()
	case pushState:
		output = b.viewPush()
	case snapshotNameState:
		output = b.viewSnapshotName()
	case snapshotsState:
		output = b.viewSnapshots()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewWorkbench() string {
	return listExtraPaddingStyle.Render(b.workbenchC.View())
}

func (b *statefulBubble) viewSnapshots() string {
	return listExtraPaddingStyle.Render(b.snapshotsC.View())
}

func (b *statefulBubble) viewPush() string {
	lines := []string{
		style.Title("Push"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.pushSuggestion.Get(); ok {
		lines = append(lines,
			"",
			style.Truncate(b.width)(style.Faint(fmt.Sprintf("tab: %s", suggestion))),
		)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewSnapshotName() string {
	lines := []string{
		style.Title("Save Snapshot"),
		"",
		style.Truncate(b.width)(fmt.Sprintf(icon.Get(icon.Snapshot)+" Saving %s", style.Fg(color.Purple)(fmt.Sprintf("%d elements", b.workbench.Size())))),
		"",
		b.nameC.View(),
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorBody := errorStyle.Render(fmt.Sprintf("Critical Failure: %v", b.lastError.Error()))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
