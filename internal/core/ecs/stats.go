package ecs

// Stats is a point-in-time snapshot of a registry, for debug overlays and
// headless runs.
type Stats struct {
	Entities        int // live entities
	PendingDestroys int // queued, not yet applied
	Recycled        int // freed IDs awaiting reuse
	ComponentTypes  int // registered pools
	Components      int // component instances across all pools
	Views           int // cached views
}

// Stats collects the snapshot. O(number of pools).
func (r *Registry) Stats() Stats {
	s := Stats{
		Entities:        len(r.alive),
		PendingDestroys: len(r.destroy),
		Recycled:        r.recycled.len(),
		Views:           len(r.views),
	}
	for _, p := range r.manager.pools {
		if p != nil {
			s.ComponentTypes++
			s.Components += p.Len()
		}
	}
	return s
}
