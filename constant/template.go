// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Script Function Identifiers - these constants define the global functions bound into Lua scripts.
const (
	PushFn       = "push"
	PopFn        = "pop"
	PeekFn       = "peek"
	SizeFn       = "size"
	EmptyFn      = "empty"
	RenderFn     = "render"
	ClearFn      = "clear"
	SaveFn       = "save"
	LoadFn       = "load"
	PrintStackFn = "print_stack"
)

// ScriptTemplate is a Go text/template for scaffolding new Lua script files.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

-- The host binds a LIFO stack of strings into this script:
--   {{ .PushFn }}(value)          adds value on top
--   {{ .PopFn }}() -> value|nil   removes and returns the top value
--   {{ .PeekFn }}() -> value|nil  returns the top value without removing it
--   {{ .SizeFn }}() -> n          element count
--   {{ .EmptyFn }}() -> bool      whether the stack has no elements
--   {{ .RenderFn }}() -> s        multi-line rendering, top first
--   {{ .ClearFn }}()              removes every element
--   {{ .SaveFn }}(name)           persists the stack as a named snapshot
--   {{ .LoadFn }}(name) -> bool   restores a named snapshot
--   {{ .PrintStackFn }}()         writes the rendering to standard output


----- MAIN -----

{{ .PushFn }}("hello")
{{ .PushFn }}("world")
{{ .PrintStackFn }}()

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
