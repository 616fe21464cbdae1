// Package script runs the user's Lua init script.
//
// The script sees a restricted standard library (base, table, string, math)
// and a "shin" module:
//
//	shin.map(mode, keys, action)  -- bind a key in a mode's keymap
//	shin.seq(keys, action)        -- add a normal-mode sequence, e.g. "^Wx"
//	shin.log(msg)                 -- write to the editor log
//	shin.actions()                -- list of action names
//
// Scripts run to completion on the calling goroutine under a timeout.
package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/shin/internal/input/keymap"
	"github.com/dshills/shin/internal/input/mode"
	"github.com/dshills/shin/internal/input/vim"
	"github.com/dshills/shin/internal/logging"
)

// DefaultTimeout bounds a single script execution.
const DefaultTimeout = 2 * time.Second

// ErrClosed indicates the runtime was closed.
var ErrClosed = errors.New("script runtime closed")

// Targets are the editor tables a script may modify.
type Targets struct {
	Keymaps *keymap.Set
	Grammar *vim.Grammar
	Logger  *logging.Logger
}

// Runtime is a sandboxed Lua state. It is not safe for concurrent use.
type Runtime struct {
	L       *lua.LState
	targets Targets
	timeout time.Duration
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTimeout sets the execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) { r.timeout = d }
}

// New creates a runtime bound to t.
func New(t Targets, opts ...Option) *Runtime {
	if t.Logger == nil {
		t.Logger = logging.Null()
	}
	r := &Runtime{targets: t, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(r.luaLog))
	L.SetGlobal("shin", r.module(L))

	r.L = L
	return r
}

func (r *Runtime) module(L *lua.LState) *lua.LTable {
	return L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"map":     r.luaMap,
		"seq":     r.luaSeq,
		"log":     r.luaLog,
		"actions": r.luaActions,
	})
}

// DoFile runs the script at path.
func (r *Runtime) DoFile(ctx context.Context, path string) error {
	return r.run(ctx, func() error { return r.L.DoFile(path) })
}

// DoString runs code.
func (r *Runtime) DoString(ctx context.Context, code string) error {
	return r.run(ctx, func() error { return r.L.DoString(code) })
}

func (r *Runtime) run(ctx context.Context, fn func() error) (err error) {
	if r.L == nil {
		return ErrClosed
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("lua panic: %v", p)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	if r.L != nil {
		r.L.Close()
		r.L = nil
	}
}

func (r *Runtime) luaMap(L *lua.LState) int {
	name := L.CheckString(1)
	spec := L.CheckString(2)
	action := L.CheckString(3)

	if r.targets.Keymaps == nil {
		L.RaiseError("shin.map: no keymaps")
		return 0
	}
	m, ok := mode.Parse(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown mode %q", name))
		return 0
	}
	a, err := keymap.ParseAction(action)
	if err != nil {
		L.ArgError(3, err.Error())
		return 0
	}
	if err := r.targets.Keymaps.For(m).BindSpec(spec, a); err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	r.targets.Logger.Debug("script bound %s %s -> %s", m, spec, a)
	return 0
}

func (r *Runtime) luaSeq(L *lua.LState) int {
	keys := L.CheckString(1)
	action := L.CheckString(2)

	if r.targets.Grammar == nil {
		L.RaiseError("shin.seq: no grammar")
		return 0
	}
	a, err := keymap.ParseAction(action)
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}
	if err := r.targets.Grammar.Add(keys, a); err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	r.targets.Logger.Debug("script added sequence %s -> %s", keys, a)
	return 0
}

func (r *Runtime) luaLog(L *lua.LState) int {
	n := L.GetTop()
	msg := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			msg += " "
		}
		msg += L.ToStringMeta(L.Get(i)).String()
	}
	r.targets.Logger.WithComponent("script").Info("%s", msg)
	return 0
}

func (r *Runtime) luaActions(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range keymap.ActionNames() {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}
