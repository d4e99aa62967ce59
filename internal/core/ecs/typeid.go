package ecs

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Component type IDs are a process-wide convention: the signature bit
// layout must agree across every Registry in the process, so the counter
// is global and an ID, once assigned, is stable for the process lifetime.
var (
	typeMu     sync.RWMutex
	typeIDs    = make(map[reflect.Type]ComponentID, MaxComponents)
	nextTypeID ComponentID
)

// TypeID returns the ComponentID for T, assigning the next free ID on
// first use. Exhausting the ID space is a programmer error and fatal.
func TypeID[T any]() ComponentID {
	t := reflect.TypeFor[T]()

	typeMu.RLock()
	id, ok := typeIDs[t]
	typeMu.RUnlock()
	if ok {
		return id
	}

	typeMu.Lock()
	defer typeMu.Unlock()
	if id, ok := typeIDs[t]; ok {
		return id
	}
	if nextTypeID >= MaxComponents {
		logger().Fatal("component ID space exhausted",
			zap.String("type", t.String()),
			zap.Uint32("max", MaxComponents))
	}
	id = nextTypeID
	nextTypeID++
	typeIDs[t] = id
	return id
}
