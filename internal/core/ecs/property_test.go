package ecs

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// Model-based property tests: a map-backed model of the world runs in
// lockstep with the registry, and the structural invariants are checked
// after every action. Entity IDs are drawn from a small space so that
// create/destroy/recycle collisions actually happen.
func Test_Registry_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := newTestRegistry()

		live := map[EntityID]bool{}
		var pendingOrder []EntityID   // submission order, duplicates allowed
		pos := map[EntityID]float64{} // model of the testPosition pool
		hp := map[EntityID]int{}      // model of the testHealth pool
		var recycleOrder []EntityID   // expected FIFO of freed IDs
		var nextFresh EntityID
		posVersion := VersionOf[testPosition](r)

		anyLive := func(rt *rapid.T) (EntityID, bool) {
			if len(live) == 0 {
				return None, false
			}
			ids := make([]EntityID, 0, len(live))
			for e := range live {
				ids = append(ids, e)
			}
			slices.Sort(ids) // keep draws deterministic across replays
			return rapid.SampledFrom(ids).Draw(rt, "entity"), true
		}

		rt.Repeat(map[string]func(*rapid.T){
			"create": func(rt *rapid.T) {
				e := r.Create().ID()
				if len(recycleOrder) > 0 {
					if e != recycleOrder[0] {
						rt.Fatalf("create returned %d, want recycled %d first", e, recycleOrder[0])
					}
					recycleOrder = recycleOrder[1:]
				} else {
					if e != nextFresh {
						rt.Fatalf("create returned %d, want fresh %d", e, nextFresh)
					}
					nextFresh++
				}
				live[e] = true
			},
			"destroy": func(rt *rapid.T) {
				e, ok := anyLive(rt)
				if !ok {
					return
				}
				r.Destroy(e)
				pendingOrder = append(pendingOrder, e)
			},
			"destroyTwice": func(rt *rapid.T) {
				e, ok := anyLive(rt)
				if !ok {
					return
				}
				r.Destroy(e)
				r.Destroy(e)
				pendingOrder = append(pendingOrder, e, e)
			},
			"destroyInvalid": func(rt *rapid.T) {
				r.Destroy(EntityID(rapid.Uint32Range(uint32(nextFresh), uint32(nextFresh)+100).Draw(rt, "dead")))
			},
			"update": func(rt *rapid.T) {
				r.Update()
				// The registry recycles in submission order, applying each
				// entity at most once.
				for _, e := range pendingOrder {
					if !live[e] {
						continue
					}
					delete(live, e)
					if _, owned := pos[e]; owned {
						delete(pos, e)
						posVersion++
					}
					delete(hp, e)
					recycleOrder = append(recycleOrder, e)
				}
				pendingOrder = nil
			},
			"addPos": func(rt *rapid.T) {
				e, ok := anyLive(rt)
				if !ok {
					return
				}
				x := rapid.Float64Range(-1000, 1000).Draw(rt, "x")
				Add(r, e, testPosition{X: x})
				if _, owned := pos[e]; !owned {
					posVersion++ // new insertion; overwrite keeps the version
				}
				pos[e] = x
			},
			"removePos": func(rt *rapid.T) {
				e, ok := anyLive(rt)
				if !ok {
					return
				}
				Remove[testPosition](r, e)
				if _, owned := pos[e]; owned {
					delete(pos, e)
					posVersion++
				}
			},
			"removePosTwice": func(rt *rapid.T) {
				e, ok := anyLive(rt)
				if !ok {
					return
				}
				if _, owned := pos[e]; owned {
					posVersion++
				}
				Remove[testPosition](r, e)
				Remove[testPosition](r, e)
				delete(pos, e)
			},
			"addHealth": func(rt *rapid.T) {
				e, ok := anyLive(rt)
				if !ok {
					return
				}
				v := rapid.IntRange(0, 100).Draw(rt, "hp")
				Add(r, e, testHealth{Current: v, Max: 100})
				hp[e] = v
			},
			"clearPos": func(rt *rapid.T) {
				Clear[testPosition](r)
				if len(pos) > 0 {
					pos = map[EntityID]float64{}
				}
				posVersion++ // clear always bumps, even when empty
			},
			"": func(rt *rapid.T) {
				// Alive list and index table are mutually inverse.
				if r.Len() != len(live) {
					rt.Fatalf("live count %d, model %d", r.Len(), len(live))
				}
				for i, e := range r.Alive() {
					if r.indices[e] != Index(i) {
						rt.Fatalf("indices[%d] = %d, want %d", e, r.indices[e], i)
					}
					if !live[e] {
						rt.Fatalf("entity %d alive but not in model", e)
					}
				}
				// Signature bit i is set iff pool i contains the entity,
				// iff Get answers a value — and the value round-trips.
				posBit := TypeID[testPosition]()
				for e := range live {
					want, owned := pos[e]
					got, ok := Get[testPosition](r, e)
					if ok != owned {
						rt.Fatalf("entity %d: pool ownership %v, model %v", e, ok, owned)
					}
					if r.signatures[e].Has(posBit) != owned {
						rt.Fatalf("entity %d: signature bit disagrees with pool", e)
					}
					if owned && got.X != want {
						rt.Fatalf("entity %d: position %v, want %v", e, got.X, want)
					}
				}
				// Dead entities carry a zero signature.
				for _, e := range recycleOrder {
					if !live[e] && r.SignatureOf(e) != 0 {
						rt.Fatalf("freed entity %d has signature %b", e, r.SignatureOf(e))
					}
				}
				// The pool version moves exactly with membership changes.
				if got := VersionOf[testPosition](r); got != posVersion {
					rt.Fatalf("position pool version %d, model %d", got, posVersion)
				}
			},
		})
	})
}

// The version counter never decreases under any interleaving.
func Test_Pool_VersionMonotonicProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := newTestRegistry()
		var handles []EntityID
		last := VersionOf[testVelocity](r)

		rt.Repeat(map[string]func(*rapid.T){
			"spawn": func(rt *rapid.T) {
				e := r.Create().ID()
				handles = append(handles, e)
				Add(r, e, testVelocity{DX: 1})
			},
			"despawn": func(rt *rapid.T) {
				if len(handles) == 0 {
					return
				}
				i := rapid.IntRange(0, len(handles)-1).Draw(rt, "i")
				r.Destroy(handles[i])
				r.Update()
				handles = append(handles[:i], handles[i+1:]...)
			},
			"clear": func(rt *rapid.T) {
				Clear[testVelocity](r)
			},
			"": func(rt *rapid.T) {
				v := VersionOf[testVelocity](r)
				if v < last {
					rt.Fatalf("version went backwards: %d -> %d", last, v)
				}
				last = v
			},
		})
	})
}

// Every row a view yields satisfies the view's signature, and every
// matching live entity yields exactly one row.
func Test_View_SoundAndCompleteProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := newTestRegistry()
		n := rapid.IntRange(0, 200).Draw(rt, "n")
		for i := 0; i < n; i++ {
			e := r.Create().ID()
			if rapid.Bool().Draw(rt, "hasPos") {
				Add(r, e, testPosition{X: float64(i)})
			}
			if rapid.Bool().Draw(rt, "hasVel") {
				Add(r, e, testVelocity{DX: float64(i)})
			}
		}

		sig := Signature(0).With(TypeID[testPosition]()).With(TypeID[testVelocity]())
		seen := map[EntityID]int{}
		ViewOf2[testPosition, testVelocity](r).Each(func(e EntityID, p *testPosition, v *testVelocity) {
			seen[e]++
			if !r.SignatureOf(e).ContainsAll(sig) {
				rt.Fatalf("entity %d yielded without full signature", e)
			}
			got, ok := Get[testPosition](r, e)
			if !ok || got != p {
				rt.Fatalf("entity %d: cached pointer does not match pool", e)
			}
		})
		for _, e := range r.Alive() {
			want := 0
			if r.SignatureOf(e).ContainsAll(sig) {
				want = 1
			}
			if seen[e] != want {
				rt.Fatalf("entity %d visited %d times, want %d", e, seen[e], want)
			}
		}
	})
}
