package ecs

import "go.uber.org/zap"

// Registry allocates and recycles entity IDs, tracks each live entity's
// component signature, applies destruction in bulk, and caches views.
//
// Destruction is two-phase: Destroy only queues, Update applies. Systems
// may therefore call Destroy from inside a view callback without
// disturbing the iteration; the world only changes shape at Update.
type Registry struct {
	alive      []EntityID
	indices    []Index     // per ID: position in alive, or InvalidIndex
	signatures []Signature // per ID: owned-component bitmask; 0 when dead
	recycled   entityQueue // destroyed IDs awaiting reuse, FIFO
	next       EntityID    // first never-issued ID
	destroy    []EntityID  // pending destruction, applied by Update
	manager    componentManager
	views      map[viewKey]any
}

// NewRegistry returns an empty registry. The full index and signature
// tables are allocated up front; component pools and sparse pages are
// allocated as types and entities show up.
func NewRegistry() *Registry {
	r := &Registry{
		indices:    make([]Index, MaxEntities),
		signatures: make([]Signature, MaxEntities),
		views:      make(map[viewKey]any),
	}
	for i := range r.indices {
		r.indices[i] = InvalidIndex
	}
	return r
}

// live reports whether e is a live entity, without the out-of-range
// warning that the exported Valid emits.
func (r *Registry) live(e EntityID) bool {
	return e < MaxEntities && r.indices[e] != InvalidIndex
}

// Valid reports whether e names a live entity. An ID outside the entity
// space is reported with a warning; it usually means a caller is holding
// a handle from an exhausted Create.
func (r *Registry) Valid(e EntityID) bool {
	if e >= MaxEntities {
		logger().Warn("entity ID out of range",
			zap.Uint32("entity", uint32(e)),
			zap.Uint32("max", uint32(MaxEntities)))
		return false
	}
	return r.indices[e] != InvalidIndex
}

// Create allocates an entity and returns its handle. Recycled IDs are
// re-issued first, in the order they were freed; fresh IDs follow. When
// the ID space is exhausted Create logs a warning and returns a handle
// whose ID is None — callers must check.
func (r *Registry) Create() Entity {
	e, ok := r.recycled.pop()
	if !ok {
		if r.next >= MaxEntities {
			logger().Warn("entity ID space exhausted",
				zap.Uint32("max", uint32(MaxEntities)))
			return Entity{id: None, registry: r}
		}
		e = r.next
		r.next++
	}
	r.indices[e] = Index(len(r.alive))
	r.alive = append(r.alive, e)
	return Entity{id: e, registry: r}
}

// CreateBatch allocates n entities at once. The returned slice may be
// shorter than n when the ID space runs out mid-batch; Create's warning
// fires once for the remainder.
func (r *Registry) CreateBatch(n int) []Entity {
	out := make([]Entity, 0, n)
	for i := 0; i < n; i++ {
		e := r.Create()
		if e.ID() == None {
			break
		}
		out = append(out, e)
	}
	return out
}

// Destroy schedules e for destruction at the next Update. Submitting an
// invalid entity is a no-op; submitting the same entity twice is harmless
// because the applier checks liveness before acting.
func (r *Registry) Destroy(e EntityID) {
	if r.live(e) {
		r.destroy = append(r.destroy, e)
	}
}

// Update applies every pending destruction: the entity is swapped out of
// the alive list, its signature zeroed, its components removed from every
// pool, and its ID queued for reuse. This is the only point at which
// entity slots are recycled, so views and systems observe a stable world
// between calls.
func (r *Registry) Update() {
	for _, e := range r.destroy {
		idx := r.indices[e]
		if idx == InvalidIndex {
			continue // duplicate submission, already applied
		}
		last := len(r.alive) - 1
		moved := r.alive[last]
		r.alive[idx] = moved
		r.indices[moved] = idx
		r.alive = r.alive[:last]
		r.indices[e] = InvalidIndex
		r.signatures[e] = 0
		r.manager.destroyEntity(e)
		r.recycled.push(e)
	}
	r.destroy = r.destroy[:0]
}

// Reset destroys every live entity and applies it immediately. Pools end
// up empty and all IDs become reusable; the view cache is kept.
func (r *Registry) Reset() {
	r.destroy = append(r.destroy, r.alive...)
	r.Update()
}

// Alive returns the dense list of live entity IDs. The slice aliases the
// registry's storage and is valid until the next Update; it exists so
// callers can partition read-only work themselves.
func (r *Registry) Alive() []EntityID {
	return r.alive
}

// Signatures returns the full per-ID signature table, indexed by
// EntityID. Like Alive, the slice aliases the registry's storage.
func (r *Registry) Signatures() []Signature {
	return r.signatures
}

// SignatureOf returns e's component bitmask. Dead or out-of-range
// entities answer 0.
func (r *Registry) SignatureOf(e EntityID) Signature {
	if e >= MaxEntities {
		return 0
	}
	return r.signatures[e]
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.alive)
}

// Add attaches c to e, overwriting any existing value of the same type in
// place. Adding to an invalid entity is a no-op.
func Add[T any](r *Registry, e EntityID, c T) {
	if !r.live(e) {
		return
	}
	poolOf[T](r).Add(e, c)
	r.signatures[e] = r.signatures[e].With(TypeID[T]())
}

// Remove detaches T from e. Removing from an invalid entity, or removing
// a component the entity does not own, is a no-op.
func Remove[T any](r *Registry, e EntityID) {
	if !r.live(e) {
		return
	}
	poolOf[T](r).Remove(e)
	r.signatures[e] = r.signatures[e].Without(TypeID[T]())
}

// Get returns a pointer to e's component of type T, or nothing when e is
// invalid or does not own one. The pointer stays valid until the pool's
// next structural change.
func Get[T any](r *Registry, e EntityID) (*T, bool) {
	if !r.live(e) {
		return nil, false
	}
	return poolOf[T](r).Get(e)
}

// Has reports whether e owns a component of type T.
func Has[T any](r *Registry, e EntityID) bool {
	return r.live(e) && poolOf[T](r).Contains(e)
}

// Clear removes every component of type T from the world. The owners'
// signature bits are cleared first so signatures stay in sync with pool
// membership.
func Clear[T any](r *Registry) {
	p := poolOf[T](r)
	bit := TypeID[T]()
	for _, e := range p.Entities() {
		r.signatures[e] = r.signatures[e].Without(bit)
	}
	p.Clear()
}

// Components returns T's dense component array. Together with EntitiesOf
// and Alive it exposes the raw columns for callers that parallelise their
// own read-only passes; any synchronisation is theirs.
func Components[T any](r *Registry) []T {
	return poolOf[T](r).Components()
}

// EntitiesOf returns T's dense entity array, parallel to Components.
func EntitiesOf[T any](r *Registry) []EntityID {
	return poolOf[T](r).Entities()
}

// VersionOf returns T's pool version counter.
func VersionOf[T any](r *Registry) uint64 {
	return poolOf[T](r).Version()
}

// entityQueue is a FIFO of entity IDs backed by a growable ring buffer.
type entityQueue struct {
	buf  []EntityID
	head int
	n    int
}

func (q *entityQueue) push(e EntityID) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = e
	q.n++
}

func (q *entityQueue) pop() (EntityID, bool) {
	if q.n == 0 {
		return None, false
	}
	e := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return e, true
}

func (q *entityQueue) len() int {
	return q.n
}

func (q *entityQueue) grow() {
	size := len(q.buf) * 2
	if size == 0 {
		size = 256
	}
	buf := make([]EntityID, size)
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
