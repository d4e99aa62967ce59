// Package ecs implements the core of a data-oriented Entity Component
// System: a registry that allocates and recycles entity IDs, per-type
// sparse-set component pools, per-entity signature bitmasks, and cached
// views over fixed component tuples.
//
// The core is single-threaded by design. A Registry must not be entered
// concurrently; the only process-wide shared state is the component type
// ID counter, which is safe under concurrent first-use registration.
package ecs

import "sparsekit/internal/core/ecs/storage"

// Storage primitives re-exported so callers only deal with this package.
type (
	// EntityID identifies an entity. IDs are dense and bounded by
	// MaxEntities.
	EntityID = storage.EntityID

	// Index is an offset into a pool's dense arrays.
	Index = storage.Index
)

const (
	// None is the "no entity" sentinel.
	None = storage.None

	// InvalidIndex marks an empty sparse or registry slot.
	InvalidIndex = storage.InvalidIndex

	// MaxEntities bounds the entity ID space. Changing it is an ABI break.
	MaxEntities = storage.MaxEntities
)

// ComponentID is the dense identifier of a component type, assigned on
// first use by a process-wide counter.
type ComponentID uint32

// MaxComponents bounds the component-ID space. It must not exceed 64 so
// that every ID maps onto one Signature bit.
const MaxComponents = 64

// Signature is a bitmask over component IDs: bit i is set iff the entity
// owns the component type whose ComponentID is i.
type Signature uint64

// Has reports whether the bit for id is set.
func (s Signature) Has(id ComponentID) bool {
	return s&(1<<id) != 0
}

// With returns the signature with the bit for id set.
func (s Signature) With(id ComponentID) Signature {
	return s | 1<<id
}

// Without returns the signature with the bit for id cleared.
func (s Signature) Without(id ComponentID) Signature {
	return s &^ (1 << id)
}

// ContainsAll reports whether every bit of other is set in s.
func (s Signature) ContainsAll(other Signature) bool {
	return s&other == other
}
