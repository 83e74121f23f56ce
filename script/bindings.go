// Package script provides a bridge between the workbench stack and user Lua programs.
package script

import (
	"io"

	"github.com/dynstack-cli/dynstack/constant"
	"github.com/dynstack-cli/dynstack/log"
	"github.com/dynstack-cli/dynstack/recall"
	"github.com/dynstack-cli/dynstack/snapshot"
	"github.com/dynstack-cli/dynstack/stack"
	lua "github.com/yuin/gopher-lua"
)

// bind registers the workbench operations as global Lua functions.
// Payloads cross the boundary as Lua strings; absent values map to nil.
func bind(state *lua.LState, workbench *stack.Stack[string], out io.Writer) {
	register := func(name string, fn lua.LGFunction) {
		state.SetGlobal(name, state.NewFunction(fn))
	}

	register(constant.PushFn, func(L *lua.LState) int {
		payload := L.CheckString(1)
		if err := workbench.Push(payload); err != nil {
			L.RaiseError("push: %v", err)
		}
		if err := recall.Remember(payload, 1); err != nil {
			log.Warnf("failed to remember payload: %v", err)
		}
		return 0
	})

	register(constant.PopFn, func(L *lua.LState) int {
		if data, ok := workbench.Pop().Get(); ok {
			L.Push(lua.LString(data))
		} else {
			L.Push(lua.LNil)
		}
		return 1
	})

	register(constant.PeekFn, func(L *lua.LState) int {
		if data, ok := workbench.Peek().Get(); ok {
			L.Push(lua.LString(data))
		} else {
			L.Push(lua.LNil)
		}
		return 1
	})

	register(constant.SizeFn, func(L *lua.LState) int {
		L.Push(lua.LNumber(workbench.Size()))
		return 1
	})

	register(constant.EmptyFn, func(L *lua.LState) int {
		L.Push(lua.LBool(workbench.IsEmpty()))
		return 1
	})

	register(constant.RenderFn, func(L *lua.LState) int {
		L.Push(lua.LString(workbench.Render().MustGet()))
		return 1
	})

	register(constant.ClearFn, func(L *lua.LState) int {
		workbench.Clear()
		return 0
	})

	register(constant.SaveFn, func(L *lua.LState) int {
		name := L.CheckString(1)
		if err := snapshot.Save(name, workbench); err != nil {
			L.RaiseError("save %s: %v", name, err)
		}
		return 0
	})

	register(constant.LoadFn, func(L *lua.LState) int {
		name := L.CheckString(1)
		snap, ok := snapshot.Load(name).Get()
		if !ok {
			L.Push(lua.LFalse)
			return 1
		}

		workbench.Clear()
		for i := len(snap.Items) - 1; i >= 0; i-- {
			if err := workbench.Push(snap.Items[i]); err != nil {
				L.RaiseError("load %s: %v", name, err)
			}
		}

		L.Push(lua.LTrue)
		return 1
	})

	register(constant.PrintStackFn, func(L *lua.LState) int {
		if err := workbench.Fprint(out); err != nil {
			L.RaiseError("print_stack: %v", err)
		}
		return 0
	})
}
