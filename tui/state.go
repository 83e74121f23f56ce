// Package tui provides the primary terminal user interface implementation.
package tui

type state int

const (
	workbenchState state = iota
	pushState
	snapshotNameState
	snapshotsState
	errorState
)
