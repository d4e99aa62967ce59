package ecs

import (
	"reflect"

	"go.uber.org/zap"

	"sparsekit/internal/core/ecs/storage"
)

// erasedPool is the capability set the manager needs from a pool without
// knowing its component type.
type erasedPool interface {
	Remove(EntityID)
	Clear()
	Version() uint64
	Len() int
}

// componentManager owns one pool per registered component type, indexed
// by ComponentID. Unregistered slots are nil.
type componentManager struct {
	pools []erasedPool
}

// destroyEntity removes e from every registered pool. This is how an
// entity's components are reclaimed when its destruction is applied.
func (m *componentManager) destroyEntity(e EntityID) {
	for _, p := range m.pools {
		if p != nil {
			p.Remove(e)
		}
	}
}

// Register installs a pool for T in r, assigning T's process-wide
// ComponentID on first use. Registering the same type again is a no-op.
// It returns the type's ComponentID.
func Register[T any](r *Registry) ComponentID {
	id := TypeID[T]()
	m := &r.manager
	for int(id) >= len(m.pools) {
		m.pools = append(m.pools, nil)
	}
	if m.pools[id] == nil {
		m.pools[id] = storage.NewPool[T]()
	}
	return id
}

// poolOf returns the registered pool for T. Dispatching against an
// unregistered component type is a programmer error and fatal: returning
// a dangling pool would only defer the crash to a worse place.
func poolOf[T any](r *Registry) *storage.Pool[T] {
	id := TypeID[T]()
	if int(id) >= len(r.manager.pools) || r.manager.pools[id] == nil {
		logger().Fatal("component type not registered",
			zap.String("type", reflect.TypeFor[T]().String()),
			zap.Uint32("component", uint32(id)))
	}
	return r.manager.pools[id].(*storage.Pool[T])
}
