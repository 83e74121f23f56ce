// Package script provides a bridge between the workbench stack and user Lua programs.
//
// A Lua 5.1 virtual machine is initialized per run with the stack's operations
// bound as global functions, so scripts can drive the container imperatively.
package script

import (
	"io"
	"os"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/stack"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Options encapsulates the runtime configuration for a single script execution.
type Options struct {
	// Path locates the Lua file, read through the virtualized filesystem.
	Path string

	// Out receives print_stack output; defaults to standard output.
	Out io.Writer
}

// Run executes the Lua file with a fresh workbench stack bound into its
// global environment.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	src, err := filesystem.API().ReadFile(options.Path)
	if err != nil {
		return err
	}

	state := lua.NewState()
	defer state.Close()

	workbench := lo.Must(stack.New[string](
		stack.Discard[string],
		func(v string) string { return v },
	))

	bind(state, workbench, options.Out)

	return state.DoString(string(src))
}
