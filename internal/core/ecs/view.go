package ecs

import (
	"math"

	"sparsekit/internal/core/ecs/storage"
)

// Views iterate the entities that own a fixed tuple of component types.
// Matching rows — entity ID plus a pointer per component — are cached;
// per-pool version counters make staleness detection O(1), and the cache
// is rebuilt only when a participating pool changed shape. An in-place
// overwrite does not bump a version, so it never forces a rebuild.
//
// Rebuilds drive from the pool with the fewest entities (the narrowest
// column) and filter candidates against the tuple's signature mask.
//
// The cached pointers are bound to the pools' dense storage as of the
// rebuild. Mutating a participating pool from inside Each is unsafe; the
// mutation bumps a version and the next call rebuilds. Queueing Destroy
// from inside Each is fine — destruction only applies at Update.
//
// One view type exists per tuple arity; Go has no variadic type
// parameters, so the family is spelled out like the corpus does.

// viewKey identifies a cached view by signature and the exact ordered
// tuple that produced it.
type viewKey struct {
	signature Signature
	ids       [4]ComponentID
	arity     uint8
}

const staleVersion = math.MaxUint64

// View1 iterates the entities that own A.
type View1[A any] struct {
	registry  *Registry
	poolA     *storage.Pool[A]
	signature Signature
	versions  [1]uint64
	cache     []row1[A]
	rebuilds  uint64
}

type row1[A any] struct {
	entity EntityID
	a      *A
}

// ViewOf1 returns the registry's cached view over (A), creating it on
// first request. The view is owned by the registry and lives until the
// registry is dropped.
func ViewOf1[A any](r *Registry) *View1[A] {
	ida := TypeID[A]()
	key := viewKey{
		signature: Signature(0).With(ida),
		ids:       [4]ComponentID{ida},
		arity:     1,
	}
	if v, ok := r.views[key]; ok {
		return v.(*View1[A])
	}
	v := &View1[A]{
		registry:  r,
		poolA:     poolOf[A](r),
		signature: key.signature,
		versions:  [1]uint64{staleVersion},
	}
	r.views[key] = v
	return v
}

func (v *View1[A]) refresh() {
	va := v.poolA.Version()
	if v.versions[0] == va {
		return
	}
	v.rebuilds++
	driver := v.poolA.Entities()
	v.cache = v.cache[:0]
	if cap(v.cache) < len(driver) {
		v.cache = make([]row1[A], 0, len(driver))
	}
	for _, e := range driver {
		if !v.registry.signatures[e].ContainsAll(v.signature) {
			continue
		}
		a, _ := v.poolA.Get(e)
		v.cache = append(v.cache, row1[A]{entity: e, a: a})
	}
	v.versions[0] = va
}

// Each calls fn for every matching entity, rebuilding the cache first if
// any participating pool changed shape.
func (v *View1[A]) Each(fn func(EntityID, *A)) {
	v.refresh()
	for i := range v.cache {
		fn(v.cache[i].entity, v.cache[i].a)
	}
}

// Entities returns the matching entity IDs as a fresh slice.
func (v *View1[A]) Entities() []EntityID {
	v.refresh()
	out := make([]EntityID, len(v.cache))
	for i := range v.cache {
		out[i] = v.cache[i].entity
	}
	return out
}

// Len returns the number of matching entities.
func (v *View1[A]) Len() int {
	v.refresh()
	return len(v.cache)
}

// View2 iterates the entities that own both A and B.
type View2[A, B any] struct {
	registry  *Registry
	poolA     *storage.Pool[A]
	poolB     *storage.Pool[B]
	signature Signature
	versions  [2]uint64
	cache     []row2[A, B]
	rebuilds  uint64
}

type row2[A, B any] struct {
	entity EntityID
	a      *A
	b      *B
}

// ViewOf2 returns the registry's cached view over (A, B), creating it on
// first request.
func ViewOf2[A, B any](r *Registry) *View2[A, B] {
	ida, idb := TypeID[A](), TypeID[B]()
	key := viewKey{
		signature: Signature(0).With(ida).With(idb),
		ids:       [4]ComponentID{ida, idb},
		arity:     2,
	}
	if v, ok := r.views[key]; ok {
		return v.(*View2[A, B])
	}
	v := &View2[A, B]{
		registry:  r,
		poolA:     poolOf[A](r),
		poolB:     poolOf[B](r),
		signature: key.signature,
		versions:  [2]uint64{staleVersion, staleVersion},
	}
	r.views[key] = v
	return v
}

func (v *View2[A, B]) refresh() {
	va, vb := v.poolA.Version(), v.poolB.Version()
	if v.versions[0] == va && v.versions[1] == vb {
		return
	}
	v.rebuilds++
	driver := v.poolA.Entities()
	if v.poolB.Len() < v.poolA.Len() {
		driver = v.poolB.Entities()
	}
	v.cache = v.cache[:0]
	if cap(v.cache) < len(driver) {
		v.cache = make([]row2[A, B], 0, len(driver))
	}
	for _, e := range driver {
		if !v.registry.signatures[e].ContainsAll(v.signature) {
			continue
		}
		a, _ := v.poolA.Get(e)
		b, _ := v.poolB.Get(e)
		v.cache = append(v.cache, row2[A, B]{entity: e, a: a, b: b})
	}
	v.versions[0], v.versions[1] = va, vb
}

// Each calls fn for every matching entity, rebuilding the cache first if
// any participating pool changed shape.
func (v *View2[A, B]) Each(fn func(EntityID, *A, *B)) {
	v.refresh()
	for i := range v.cache {
		fn(v.cache[i].entity, v.cache[i].a, v.cache[i].b)
	}
}

// Entities returns the matching entity IDs as a fresh slice.
func (v *View2[A, B]) Entities() []EntityID {
	v.refresh()
	out := make([]EntityID, len(v.cache))
	for i := range v.cache {
		out[i] = v.cache[i].entity
	}
	return out
}

// Len returns the number of matching entities.
func (v *View2[A, B]) Len() int {
	v.refresh()
	return len(v.cache)
}

// View3 iterates the entities that own A, B and C.
type View3[A, B, C any] struct {
	registry  *Registry
	poolA     *storage.Pool[A]
	poolB     *storage.Pool[B]
	poolC     *storage.Pool[C]
	signature Signature
	versions  [3]uint64
	cache     []row3[A, B, C]
	rebuilds  uint64
}

type row3[A, B, C any] struct {
	entity EntityID
	a      *A
	b      *B
	c      *C
}

// ViewOf3 returns the registry's cached view over (A, B, C), creating it
// on first request.
func ViewOf3[A, B, C any](r *Registry) *View3[A, B, C] {
	ida, idb, idc := TypeID[A](), TypeID[B](), TypeID[C]()
	key := viewKey{
		signature: Signature(0).With(ida).With(idb).With(idc),
		ids:       [4]ComponentID{ida, idb, idc},
		arity:     3,
	}
	if v, ok := r.views[key]; ok {
		return v.(*View3[A, B, C])
	}
	v := &View3[A, B, C]{
		registry:  r,
		poolA:     poolOf[A](r),
		poolB:     poolOf[B](r),
		poolC:     poolOf[C](r),
		signature: key.signature,
		versions:  [3]uint64{staleVersion, staleVersion, staleVersion},
	}
	r.views[key] = v
	return v
}

func (v *View3[A, B, C]) refresh() {
	va, vb, vc := v.poolA.Version(), v.poolB.Version(), v.poolC.Version()
	if v.versions[0] == va && v.versions[1] == vb && v.versions[2] == vc {
		return
	}
	v.rebuilds++
	driver := v.poolA.Entities()
	if v.poolB.Len() < len(driver) {
		driver = v.poolB.Entities()
	}
	if v.poolC.Len() < len(driver) {
		driver = v.poolC.Entities()
	}
	v.cache = v.cache[:0]
	if cap(v.cache) < len(driver) {
		v.cache = make([]row3[A, B, C], 0, len(driver))
	}
	for _, e := range driver {
		if !v.registry.signatures[e].ContainsAll(v.signature) {
			continue
		}
		a, _ := v.poolA.Get(e)
		b, _ := v.poolB.Get(e)
		c, _ := v.poolC.Get(e)
		v.cache = append(v.cache, row3[A, B, C]{entity: e, a: a, b: b, c: c})
	}
	v.versions[0], v.versions[1], v.versions[2] = va, vb, vc
}

// Each calls fn for every matching entity, rebuilding the cache first if
// any participating pool changed shape.
func (v *View3[A, B, C]) Each(fn func(EntityID, *A, *B, *C)) {
	v.refresh()
	for i := range v.cache {
		fn(v.cache[i].entity, v.cache[i].a, v.cache[i].b, v.cache[i].c)
	}
}

// Entities returns the matching entity IDs as a fresh slice.
func (v *View3[A, B, C]) Entities() []EntityID {
	v.refresh()
	out := make([]EntityID, len(v.cache))
	for i := range v.cache {
		out[i] = v.cache[i].entity
	}
	return out
}

// Len returns the number of matching entities.
func (v *View3[A, B, C]) Len() int {
	v.refresh()
	return len(v.cache)
}

// View4 iterates the entities that own A, B, C and D.
type View4[A, B, C, D any] struct {
	registry  *Registry
	poolA     *storage.Pool[A]
	poolB     *storage.Pool[B]
	poolC     *storage.Pool[C]
	poolD     *storage.Pool[D]
	signature Signature
	versions  [4]uint64
	cache     []row4[A, B, C, D]
	rebuilds  uint64
}

type row4[A, B, C, D any] struct {
	entity EntityID
	a      *A
	b      *B
	c      *C
	d      *D
}

// ViewOf4 returns the registry's cached view over (A, B, C, D), creating
// it on first request.
func ViewOf4[A, B, C, D any](r *Registry) *View4[A, B, C, D] {
	ida, idb, idc, idd := TypeID[A](), TypeID[B](), TypeID[C](), TypeID[D]()
	key := viewKey{
		signature: Signature(0).With(ida).With(idb).With(idc).With(idd),
		ids:       [4]ComponentID{ida, idb, idc, idd},
		arity:     4,
	}
	if v, ok := r.views[key]; ok {
		return v.(*View4[A, B, C, D])
	}
	v := &View4[A, B, C, D]{
		registry:  r,
		poolA:     poolOf[A](r),
		poolB:     poolOf[B](r),
		poolC:     poolOf[C](r),
		poolD:     poolOf[D](r),
		signature: key.signature,
		versions:  [4]uint64{staleVersion, staleVersion, staleVersion, staleVersion},
	}
	r.views[key] = v
	return v
}

func (v *View4[A, B, C, D]) refresh() {
	va, vb := v.poolA.Version(), v.poolB.Version()
	vc, vd := v.poolC.Version(), v.poolD.Version()
	if v.versions[0] == va && v.versions[1] == vb &&
		v.versions[2] == vc && v.versions[3] == vd {
		return
	}
	v.rebuilds++
	driver := v.poolA.Entities()
	if v.poolB.Len() < len(driver) {
		driver = v.poolB.Entities()
	}
	if v.poolC.Len() < len(driver) {
		driver = v.poolC.Entities()
	}
	if v.poolD.Len() < len(driver) {
		driver = v.poolD.Entities()
	}
	v.cache = v.cache[:0]
	if cap(v.cache) < len(driver) {
		v.cache = make([]row4[A, B, C, D], 0, len(driver))
	}
	for _, e := range driver {
		if !v.registry.signatures[e].ContainsAll(v.signature) {
			continue
		}
		a, _ := v.poolA.Get(e)
		b, _ := v.poolB.Get(e)
		c, _ := v.poolC.Get(e)
		d, _ := v.poolD.Get(e)
		v.cache = append(v.cache, row4[A, B, C, D]{entity: e, a: a, b: b, c: c, d: d})
	}
	v.versions[0], v.versions[1], v.versions[2], v.versions[3] = va, vb, vc, vd
}

// Each calls fn for every matching entity, rebuilding the cache first if
// any participating pool changed shape.
func (v *View4[A, B, C, D]) Each(fn func(EntityID, *A, *B, *C, *D)) {
	v.refresh()
	for i := range v.cache {
		fn(v.cache[i].entity, v.cache[i].a, v.cache[i].b, v.cache[i].c, v.cache[i].d)
	}
}

// Entities returns the matching entity IDs as a fresh slice.
func (v *View4[A, B, C, D]) Entities() []EntityID {
	v.refresh()
	out := make([]EntityID, len(v.cache))
	for i := range v.cache {
		out[i] = v.cache[i].entity
	}
	return out
}

// Len returns the number of matching entities.
func (v *View4[A, B, C, D]) Len() int {
	v.refresh()
	return len(v.cache)
}
