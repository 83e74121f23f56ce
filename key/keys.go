// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Recall Memory - these keys configure the persistence of previously pushed payloads and their suggestions.
const (
	RecallSuggestions = "recall.suggestions"
	RecallLimit       = "recall.limit"
)

// Snapshot Registry - these keys govern named snapshot persistence and restoration.
const (
	SnapshotsDefault     = "snapshots.default"
	SnapshotsLoadOnStart = "snapshots.load_on_start"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIPushPrompt  = "tui.push_prompt"
	TUIShowIndexes = "tui.show_indexes"
)

// Workbench - these keys govern behavior shared by the TUI and mini interactive modes.
const (
	WorkbenchUndoDepth = "workbench.undo_depth"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
