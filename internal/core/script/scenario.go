// Package script loads Lua scenario files for the demo simulation. A
// scenario declares spawn waves as plain data; the Go side maps the fixed
// field names onto typed components, so scripts never touch the ECS core
// and no component type is ever registered by name at runtime.
//
// A scenario file sets a global `waves` table:
//
//	waves = {
//	    { count = 500, speed = 60, health = 10, decay = 1, size = 4 },
//	    { count = 50,  speed = 20, health = 90, decay = 0.5, size = 12 },
//	}
package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Wave is one batch of entities to spawn.
type Wave struct {
	Count  int
	Speed  float64
	Health float64
	Decay  float64
	Size   float64
}

// ErrNoWaves is returned when the script defines no `waves` table.
var ErrNoWaves = errors.New("scenario defines no waves table")

// LoadScenario runs the Lua file at path and extracts its waves.
func LoadScenario(path string) ([]Wave, error) {
	state := lua.NewState()
	defer state.Close()
	if err := state.DoFile(path); err != nil {
		return nil, fmt.Errorf("run scenario %s: %w", path, err)
	}
	return wavesFrom(state)
}

// LoadScenarioSource runs an in-memory scenario. Used by tests.
func LoadScenarioSource(src string) ([]Wave, error) {
	state := lua.NewState()
	defer state.Close()
	if err := state.DoString(src); err != nil {
		return nil, fmt.Errorf("run scenario: %w", err)
	}
	return wavesFrom(state)
}

func wavesFrom(state *lua.LState) ([]Wave, error) {
	top, ok := state.GetGlobal("waves").(*lua.LTable)
	if !ok {
		return nil, ErrNoWaves
	}
	var waves []Wave
	var convErr error
	top.ForEach(func(key, value lua.LValue) {
		if convErr != nil {
			return
		}
		entry, ok := value.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("waves[%s] is %s, want table", key.String(), value.Type())
			return
		}
		w := Wave{
			Count:  int(lua.LVAsNumber(entry.RawGetString("count"))),
			Speed:  float64(lua.LVAsNumber(entry.RawGetString("speed"))),
			Health: float64(lua.LVAsNumber(entry.RawGetString("health"))),
			Decay:  float64(lua.LVAsNumber(entry.RawGetString("decay"))),
			Size:   float64(lua.LVAsNumber(entry.RawGetString("size"))),
		}
		if w.Count < 0 {
			convErr = fmt.Errorf("waves[%s]: count %d must not be negative", key.String(), w.Count)
			return
		}
		waves = append(waves, w)
	})
	if convErr != nil {
		return nil, convErr
	}
	return waves, nil
}
