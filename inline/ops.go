// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"strings"
)

// OpKind identifies a single workbench operation within an op-script.
type OpKind string

// Supported op-script operations.
const (
	OpPush      OpKind = "push"
	OpPop       OpKind = "pop"
	OpPeek      OpKind = "peek"
	OpSize      OpKind = "size"
	OpEmpty     OpKind = "empty"
	OpRender    OpKind = "render"
	OpRenderTop OpKind = "render-top"
	OpClear     OpKind = "clear"
	OpSave      OpKind = "save"
	OpLoad      OpKind = "load"
)

// Op is a parsed op-script operation with its optional argument.
type Op struct {
	Kind OpKind
	Arg  string
}

// requiresArg marks the operations that take a mandatory argument; the
// remaining operations accept none.
var requiresArg = map[OpKind]bool{
	OpPush: true,
	OpSave: true,
	OpLoad: true,
}

var knownOps = map[OpKind]struct{}{
	OpPush:      {},
	OpPop:       {},
	OpPeek:      {},
	OpSize:      {},
	OpEmpty:     {},
	OpRender:    {},
	OpRenderTop: {},
	OpClear:     {},
	OpSave:      {},
	OpLoad:      {},
}

// ParseScript parses a semicolon-separated op-script into typed operations.
// Empty segments are skipped; `push` consumes the remainder of its segment as
// the payload, whitespace-trimmed.
func ParseScript(script string) ([]Op, error) {
	var ops []Op

	for _, segment := range strings.Split(script, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, arg, _ := strings.Cut(segment, " ")
		kind := OpKind(name)
		arg = strings.TrimSpace(arg)

		if _, ok := knownOps[kind]; !ok {
			return nil, fmt.Errorf("unknown op: %s", name)
		}

		if requiresArg[kind] && arg == "" {
			return nil, fmt.Errorf("op %s requires an argument", kind)
		}

		if !requiresArg[kind] && arg != "" {
			return nil, fmt.Errorf("op %s takes no argument, got %q", kind, arg)
		}

		ops = append(ops, Op{Kind: kind, Arg: arg})
	}

	return ops, nil
}
