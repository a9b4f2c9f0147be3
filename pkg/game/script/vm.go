package script

import (
	lua "github.com/yuin/gopher-lua"
)

// newVM creates a sandboxed VM with st's variables as globals.
func newVM(st *State) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	openSafeLibs(L)
	sandbox(L)

	for name, v := range st.Vars {
		L.SetGlobal(name, toLua(v))
	}
	L.SetGlobal("item", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(st.Count(L.CheckString(1))))
		return 1
	}))
	L.SetGlobal("visited", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(st.HasVisited(L.CheckString(1))))
		return 1
	}))
	L.SetGlobal("room", lua.LString(st.Room))
	return L
}

// openSafeLibs opens only the side-effect free standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "print", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Keep evaluation deterministic.
	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
	}
}

func toLua(v any) lua.LValue {
	switch x := v.(type) {
	case string:
		return lua.LString(x)
	case bool:
		return lua.LBool(x)
	case float64:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case int:
		return lua.LNumber(x)
	default:
		return lua.LNil
	}
}

func fromLua(v lua.LValue) any {
	switch x := v.(type) {
	case lua.LString:
		return string(x)
	case lua.LNumber:
		return float64(x)
	case lua.LBool:
		return bool(x)
	default:
		return nil
	}
}
