// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dynstack-cli/dynstack/log"
	"github.com/dynstack-cli/dynstack/recall"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/dynstack-cli/dynstack/stack"
	"github.com/samber/lo"
)

// Run parses and executes the configured op-script against a workbench stack,
// writing either plain text lines or a single JSON document to the output.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	ops, err := ParseScript(options.Script)
	if err != nil {
		return err
	}

	// Seed the workbench, either fresh or from a named snapshot.
	var workbench *stack.Stack[string]
	if name, ok := options.Load.Get(); ok {
		snap, found := snapshot.Load(name).Get()
		if !found {
			return fmt.Errorf("snapshot not found: %s", name)
		}
		workbench = snap.Restore()
	} else {
		workbench = lo.Must(stack.New[string](
			stack.Discard[string],
			func(v string) string { return v },
		))
	}

	results := make([]*OpResult, 0, len(ops))
	for _, op := range ops {
		result, err := execute(workbench, op)
		if err != nil {
			return err
		}

		results = append(results, result)
		if !options.Json && result.Result != "" {
			fmt.Fprintln(options.Out, result.Result)
		}
	}

	if options.Json {
		return writeJson(options.Out, newOutput(options.Script, results, workbench))
	}

	return nil
}

// execute applies a single operation to the workbench and records its outcome.
func execute(workbench *stack.Stack[string], op Op) (*OpResult, error) {
	result := &OpResult{Op: string(op.Kind), Arg: op.Arg}

	switch op.Kind {
	case OpPush:
		if err := workbench.Push(op.Arg); err != nil {
			return nil, err
		}
		if err := recall.Remember(op.Arg, 1); err != nil {
			log.Warnf("failed to remember payload: %v", err)
		}
	case OpPop:
		if data, ok := workbench.Pop().Get(); ok {
			result.Result = data
		}
	case OpPeek:
		if data, ok := workbench.Peek().Get(); ok {
			result.Result = data
		}
	case OpSize:
		result.Result = strconv.Itoa(workbench.Size())
	case OpEmpty:
		result.Result = strconv.FormatBool(workbench.IsEmpty())
	case OpRender:
		result.Result = workbench.Render().MustGet()
	case OpRenderTop:
		result.Result = workbench.RenderTop().MustGet()
	case OpClear:
		workbench.Clear()
	case OpSave:
		if err := snapshot.Save(op.Arg, workbench); err != nil {
			return nil, fmt.Errorf("save snapshot %s: %w", op.Arg, err)
		}
	case OpLoad:
		snap, ok := snapshot.Load(op.Arg).Get()
		if !ok {
			return nil, fmt.Errorf("snapshot not found: %s", op.Arg)
		}

		workbench.Clear()
		for i := len(snap.Items) - 1; i >= 0; i-- {
			if err := workbench.Push(snap.Items[i]); err != nil {
				return nil, err
			}
		}
	}

	result.Size = workbench.Size()
	return result, nil
}
