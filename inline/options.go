// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"io"

	"github.com/samber/mo"
)

// Options encapsulates the runtime configuration for a single inline execution.
type Options struct {
	// Out receives the execution output; defaults to standard output.
	Out io.Writer

	// Script is the raw semicolon-separated op-script to execute.
	Script string

	// Json switches the output from plain text lines to a single JSON document.
	Json bool

	// Load names a snapshot used to seed the workbench before the first op.
	Load mo.Option[string]
}
