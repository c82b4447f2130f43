package lua

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ripcurl/internal/input/inputbar"
)

// Host is the window a command handler acts on.
type Host interface {
	// Open loads uri in the window.
	Open(uri string)
	// WinOpen opens uri in a new window.
	WinOpen(uri string)
	// Notify shows msg in the window's input bar.
	Notify(level inputbar.Level, msg string)
	// URI returns the window's current URI.
	URI() string
}

// Command is a command registered by ripcurl.command.
type Command struct {
	Name        string
	Abbrev      string
	Description string

	state   *State
	handler *lua.LFunction
}

// Invoke calls the handler with args against h. It reports whether the
// handler returned true.
func (c *Command) Invoke(h Host, args []string) (bool, error) {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrStateClosed
	}

	s.host = h
	defer func() { s.host = nil }()

	L := s.L
	tbl := L.CreateTable(len(args), 0)
	for _, a := range args {
		tbl.Append(lua.LString(a))
	}

	var ret lua.LValue = lua.LNil
	err := s.withTimeout(func() error {
		if err := L.CallByParam(lua.P{Fn: c.handler, NRet: 1, Protect: true}, tbl); err != nil {
			return err
		}
		ret = L.Get(-1)
		L.Pop(1)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("command %s: %w", c.Name, err)
	}
	return lua.LVAsBool(ret), nil
}

// installModule registers the ripcurl table as a global and for require.
func (s *State) installModule() {
	L := s.L
	funcs := map[string]lua.LGFunction{
		"command": s.luaCommand,
		"open":    s.luaOpen,
		"winopen": s.luaWinOpen,
		"notify":  s.luaNotify,
		"uri":     s.luaURI,
	}
	mod := L.SetFuncs(L.NewTable(), funcs)
	L.SetGlobal(moduleName, mod)
	L.PreloadModule(moduleName, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		s.logger.Info(strings.Join(parts, "\t"), "source", "lua")
		return 0
	}))
}

// luaCommand implements ripcurl.command{name=, abbrev=, description=, handler=}.
func (s *State) luaCommand(L *lua.LState) int {
	spec := L.CheckTable(1)

	name, ok := L.GetField(spec, "name").(lua.LString)
	if !ok || strings.TrimSpace(string(name)) == "" {
		L.ArgError(1, "name must be a non-empty string")
		return 0
	}
	fn, ok := L.GetField(spec, "handler").(*lua.LFunction)
	if !ok {
		L.ArgError(1, "handler must be a function")
		return 0
	}

	cmd := &Command{
		Name:    string(name),
		state:   s,
		handler: fn,
	}
	if v, ok := L.GetField(spec, "abbrev").(lua.LString); ok {
		cmd.Abbrev = string(v)
	}
	if v, ok := L.GetField(spec, "description").(lua.LString); ok {
		cmd.Description = string(v)
	}

	for _, c := range s.commands {
		if c.Name == cmd.Name {
			L.RaiseError("command %q already registered", cmd.Name)
			return 0
		}
	}
	s.commands = append(s.commands, cmd)
	return 0
}

// checkHost returns the active host or raises ErrNoHost.
func (s *State) checkHost(L *lua.LState) Host {
	if s.host == nil {
		L.RaiseError("%s", ErrNoHost)
	}
	return s.host
}

func (s *State) luaOpen(L *lua.LState) int {
	uri := L.CheckString(1)
	s.checkHost(L).Open(uri)
	return 0
}

func (s *State) luaWinOpen(L *lua.LState) int {
	uri := L.OptString(1, "")
	s.checkHost(L).WinOpen(uri)
	return 0
}

func (s *State) luaNotify(L *lua.LState) int {
	msg := L.CheckString(1)
	level := inputbar.ParseLevel(L.OptString(2, "default"))
	s.checkHost(L).Notify(level, msg)
	return 0
}

func (s *State) luaURI(L *lua.LState) int {
	L.Push(lua.LString(s.checkHost(L).URI()))
	return 1
}
