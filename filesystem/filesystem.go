// Package filesystem routes every disk operation through a process-global
// afero backend, so the test suites can swap the real filesystem for a
// volatile in-memory one and keep all IO off the disk.
package filesystem

import "github.com/spf13/afero"

var active = afero.Afero{Fs: afero.NewOsFs()}

// API returns the afero wrapper around the active backend.
func API() afero.Afero {
	return active
}

// SetOsFs switches the backend to the host operating system's filesystem.
func SetOsFs() {
	active = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches the backend to an in-memory filesystem.
func SetMemMapFs() {
	active = afero.Afero{Fs: afero.NewMemMapFs()}
}
