// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dynstack-cli/dynstack/icon"
	"github.com/dynstack-cli/dynstack/key"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/dynstack-cli/dynstack/style"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/spf13/viper"
)

// payload wraps a single workbench element along with its depth from the top.
type payload struct {
	value string
	depth int
}

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal interface{}
	marked   bool
}

func (t *listItem) toggleMark() {
	t.marked = !t.marked
}

func (t *listItem) getMark() string {
	switch t.internal.(type) {
	case *snapshot.Snapshot:
		return icon.Get(icon.Snapshot)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *payload:
		var sb = strings.Builder{}

		sb.WriteString(e.value)
		if e.depth == 0 {
			sb.WriteString(" ")
			sb.WriteString(style.Faint("(top)"))
		}

		title = sb.String()
	case *snapshot.Snapshot:
		title = e.Name
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *payload:
		if viper.GetBool(key.TUIShowIndexes) {
			description = lipgloss.NewStyle().Foreground(style.FaintColor).Render(fmt.Sprintf("depth %d", e.depth))
		}
	case *snapshot.Snapshot:
		var parts []string

		parts = append(parts, util.Quantify(len(e.Items), "element", "elements"))
		if !e.Taken.IsZero() {
			parts = append(parts, lipgloss.NewStyle().Foreground(style.FaintColor).Render(e.Taken.Format("2006-01-02 15:04")))
		}

		description = strings.Join(parts, " • ")
	case string:
		description = ""
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *payload:
		return e.value
	case *snapshot.Snapshot:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}
