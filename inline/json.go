// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/dynstack-cli/dynstack/stack"
)

// OpResult records the outcome of a single executed operation.
type OpResult struct {
	// Op is the operation name as written in the script.
	Op string `json:"op"`
	// Arg is the operation's argument, if any.
	Arg string `json:"arg,omitempty"`
	// Result holds the value the operation produced, if any.
	Result string `json:"result,omitempty"`
	// Size is the workbench element count after the operation.
	Size int `json:"size"`
}

// Output is the JSON document emitted for a full inline execution.
type Output struct {
	Script string      `json:"script"`
	Ops    []*OpResult `json:"ops"`
	// Stack holds the final workbench payloads from the top downward.
	Stack []string `json:"stack"`
}

func newOutput(script string, ops []*OpResult, workbench *stack.Stack[string]) *Output {
	items := make([]string, 0, workbench.Size())
	workbench.Map(func(f *stack.Frame[string]) {
		items = append(items, f.Data())
	})

	return &Output{
		Script: script,
		Ops:    ops,
		Stack:  items,
	}
}

func writeJson(out io.Writer, output *Output) error {
	data, err := json.Marshal(output)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
