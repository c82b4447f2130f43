package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// moduleName is the name scripts require.
const moduleName = "ripcurl"

// removedGlobals are base functions that load code from disk or strings.
var removedGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
}

// safeModules may be required by name.
var safeModules = map[string]bool{
	"string":   true,
	"table":    true,
	"math":     true,
	moduleName: true,
}

// openSafeLibraries opens the base, table, string and math libraries, and
// package for require. io, os and debug are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenPackage(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox removes code-loading globals and replaces require with a
// whitelist. package.path and package.cpath are cleared so nothing is
// loaded from disk.
func installSandbox(L *lua.LState) {
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	if pkg, ok := L.GetGlobal("package").(*lua.LTable); ok {
		L.SetField(pkg, "path", lua.LString(""))
		L.SetField(pkg, "cpath", lua.LString(""))
	}

	require := L.GetGlobal("require")
	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safeModules[name] {
			L.RaiseError("module %q is not available", name)
			return 0
		}
		L.Push(require)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}
