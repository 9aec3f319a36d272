package scripting

import (
	"fmt"

	"chrono-ghost/internal/core"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Target is the sim a script drives.
type Target interface {
	core.Sim
	core.Painter
	core.Clearer
}

// Materials translates between script-facing names and sim material ids.
type Materials struct {
	Resolve func(name string) (uint8, bool)
	Name    func(id uint8) string
}

// maxStepsPerCall bounds step(n) so a script cannot stall the host.
const maxStepsPerCall = 10000

// Engine wraps a single gopher-lua VM bound to one target.
// Single-goroutine access only (the host's update loop).
type Engine struct {
	vm        *lua.LState
	log       *zap.Logger
	target    Target
	materials Materials
}

// NewEngine creates a VM with the sand API installed as globals.
func NewEngine(target Target, materials Materials, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	e := &Engine{vm: vm, log: log, target: target, materials: materials}

	api := map[string]lua.LGFunction{
		"paint":  e.luaPaint,
		"line":   e.luaLine,
		"clear":  e.luaClear,
		"step":   e.luaStep,
		"get":    e.luaGet,
		"count":  e.luaCount,
		"width":  e.luaWidth,
		"height": e.luaHeight,
		"frame":  e.luaFrame,
	}
	for name, fn := range api {
		vm.SetGlobal(name, vm.NewFunction(fn))
	}
	return e
}

// Close releases the VM.
func (e *Engine) Close() { e.vm.Close() }

// DoFile runs a script file.
func (e *Engine) DoFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

// DoString runs a chunk of Lua source.
func (e *Engine) DoString(src string) error {
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("run lua chunk: %w", err)
	}
	return nil
}

// HasTickHook reports whether the loaded scripts define on_tick.
func (e *Engine) HasTickHook() bool {
	return e.vm.GetGlobal("on_tick").Type() == lua.LTFunction
}

// OnTick calls the script's on_tick(frame) hook, if any. Errors are logged
// and returned so the host can unhook a broken script.
func (e *Engine) OnTick(frame uint64) error {
	fn := e.vm.GetGlobal("on_tick")
	if fn.Type() != lua.LTFunction {
		return nil
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(frame)); err != nil {
		e.log.Error("lua on_tick error", zap.Error(err))
		return fmt.Errorf("on_tick: %w", err)
	}
	return nil
}

func (e *Engine) material(L *lua.LState, arg int) uint8 {
	name := L.CheckString(arg)
	id, ok := e.materials.Resolve(name)
	if !ok {
		L.ArgError(arg, fmt.Sprintf("unknown material %q", name))
	}
	return id
}

// paint(x, y, radius, material)
func (e *Engine) luaPaint(L *lua.LState) int {
	x, y, r := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
	id := e.material(L, 4)
	e.target.Paint(x, y, r, id)
	return 0
}

// line(x0, y0, x1, y1, radius, material)
func (e *Engine) luaLine(L *lua.LState) int {
	x0, y0 := L.CheckInt(1), L.CheckInt(2)
	x1, y1 := L.CheckInt(3), L.CheckInt(4)
	r := L.CheckInt(5)
	id := e.material(L, 6)
	core.PaintLine(e.target, x0, y0, x1, y1, r, id)
	return 0
}

func (e *Engine) luaClear(L *lua.LState) int {
	e.target.Clear()
	return 0
}

// step([n]) advances n ticks, default one.
func (e *Engine) luaStep(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 || n > maxStepsPerCall {
		L.ArgError(1, fmt.Sprintf("step count must be within [0, %d]", maxStepsPerCall))
	}
	for k := 0; k < n; k++ {
		e.target.Step()
	}
	return 0
}

type cellReader interface {
	CellAt(x, y int) uint8
}

// get(x, y) returns the material name at a cell. Outside the grid it reads
// material id 1, stone.
func (e *Engine) luaGet(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	var id uint8
	if r, ok := e.target.(cellReader); ok {
		id = r.CellAt(x, y)
	} else {
		id = 1
		size := e.target.Size()
		if x >= 0 && y >= 0 && x < size.W && y < size.H {
			id = e.target.Cells()[y*size.W+x]
		}
	}
	L.Push(lua.LString(e.materials.Name(id)))
	return 1
}

// count(material) returns how many cells hold it.
func (e *Engine) luaCount(L *lua.LState) int {
	id := e.material(L, 1)
	n := 0
	for _, c := range e.target.Cells() {
		if c == id {
			n++
		}
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (e *Engine) luaWidth(L *lua.LState) int {
	L.Push(lua.LNumber(e.target.Size().W))
	return 1
}

func (e *Engine) luaHeight(L *lua.LState) int {
	L.Push(lua.LNumber(e.target.Size().H))
	return 1
}

func (e *Engine) luaFrame(L *lua.LState) int {
	var frame uint64
	if f, ok := e.target.(interface{ Frame() uint64 }); ok {
		frame = f.Frame()
	}
	L.Push(lua.LNumber(frame))
	return 1
}
