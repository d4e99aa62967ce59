package storage

import "go.uber.org/zap"

// page holds one fixed-size block of sparse slots. Pages are allocated on
// the first write that touches them and are never shrunk.
type page [PageSize]Index

// Pool stores every component of one type in parallel dense arrays. The
// paged sparse index maps an entity ID to its dense offset, so presence
// tests, insertion and removal are O(1) while iteration walks contiguous
// memory.
//
// Removal uses swap-and-pop: the last dense element is moved into the
// vacated slot, so iteration never has to skip holes. The dense order is
// therefore insertion order modulo those swaps, and callers must not rely
// on any particular permutation.
type Pool[T any] struct {
	components []T
	entities   []EntityID
	sparse     [MaxPages]*page
	version    uint64
}

// NewPool returns an empty pool for one component type.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// slot returns the dense index stored for e, or InvalidIndex when the
// entity is absent or its page was never touched.
func (p *Pool[T]) slot(e EntityID) Index {
	pg := p.sparse[e/PageSize]
	if pg == nil {
		return InvalidIndex
	}
	return pg[e&(PageSize-1)]
}

// setSlot writes the dense index for e, allocating the page on demand.
func (p *Pool[T]) setSlot(e EntityID, idx Index) {
	pn := e / PageSize
	pg := p.sparse[pn]
	if pg == nil {
		pg = new(page)
		for i := range pg {
			pg[i] = InvalidIndex
		}
		p.sparse[pn] = pg
	}
	pg[e&(PageSize-1)] = idx
}

// Add attaches c to e. When e already owns a component of this type the
// value is overwritten in place: its dense position is preserved and the
// pool version does not change. A new insertion appends to the dense
// arrays and bumps the version.
func (p *Pool[T]) Add(e EntityID, c T) {
	if idx := p.slot(e); idx != InvalidIndex {
		p.components[idx] = c
		return
	}
	if uint64(len(p.components)) >= maxDenseLen {
		logger().Fatal("component pool dense storage full",
			zap.Int("len", len(p.components)))
	}
	p.setSlot(e, Index(len(p.components)))
	p.components = append(p.components, c)
	p.entities = append(p.entities, e)
	p.version++
}

// Remove detaches e's component via swap-and-pop. Removing an entity the
// pool does not contain is a no-op.
func (p *Pool[T]) Remove(e EntityID) {
	idx := p.slot(e)
	if idx == InvalidIndex {
		return
	}
	last := Index(len(p.components) - 1)
	if idx != last {
		moved := p.entities[last]
		p.components[idx] = p.components[last]
		p.entities[idx] = moved
		p.setSlot(moved, idx)
	}
	var zero T
	p.components[last] = zero // release anything the vacated slot points at
	p.components = p.components[:last]
	p.entities = p.entities[:last]
	p.setSlot(e, InvalidIndex)
	p.version++
}

// Get returns a pointer into the dense storage for e's component. The
// pointer stays valid until the next operation that bumps the version.
func (p *Pool[T]) Get(e EntityID) (*T, bool) {
	idx := p.slot(e)
	if idx == InvalidIndex {
		return nil, false
	}
	return &p.components[idx], true
}

// Contains reports whether the pool holds a component for e.
func (p *Pool[T]) Contains(e EntityID) bool {
	return p.slot(e) != InvalidIndex
}

// Clear empties the dense arrays and resets every occupied sparse slot.
// The version is bumped once, not per element.
func (p *Pool[T]) Clear() {
	for _, e := range p.entities {
		p.setSlot(e, InvalidIndex)
	}
	var zero T
	for i := range p.components {
		p.components[i] = zero
	}
	p.components = p.components[:0]
	p.entities = p.entities[:0]
	p.version++
}

// Reserve grows the dense arrays' capacity to hold at least n components
// without reallocating. Cached pointers into the dense storage survive
// later insertions up to that capacity only if no reallocation happens;
// the version protocol does not depend on it either way.
func (p *Pool[T]) Reserve(n int) {
	if n <= cap(p.components) {
		return
	}
	components := make([]T, len(p.components), n)
	copy(components, p.components)
	p.components = components
	entities := make([]EntityID, len(p.entities), n)
	copy(entities, p.entities)
	p.entities = entities
}

// Components returns the dense component array. The slice aliases the
// pool's storage; it is valid until the next structural change.
func (p *Pool[T]) Components() []T {
	return p.components
}

// Entities returns the dense entity array, parallel to Components.
func (p *Pool[T]) Entities() []EntityID {
	return p.entities
}

// Version returns the structural-change counter. It increases on every
// new insertion, removal and clear, and never on an in-place overwrite.
func (p *Pool[T]) Version() uint64 {
	return p.version
}

// Len returns the number of stored components.
func (p *Pool[T]) Len() int {
	return len(p.components)
}
