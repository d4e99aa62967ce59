package systems

import (
	"sparsekit/internal/core/ecs"
	"sparsekit/internal/core/ecs/components"
)

// HealthDecay drains every Health component by its decay rate and queues
// dead entities for destruction. Destruction is deferred by the registry,
// so queueing from inside the iteration is safe; the entities disappear
// at the next Registry.Update.
type HealthDecay struct {
	// Reaped counts the entities queued for destruction so far.
	Reaped int
}

// NewHealthDecay returns a decay system.
func NewHealthDecay() *HealthDecay {
	return &HealthDecay{}
}

// Update drains health and reaps the dead.
func (d *HealthDecay) Update(reg *ecs.Registry, dt float64) {
	ecs.ViewOf1[components.Health](reg).Each(
		func(e ecs.EntityID, h *components.Health) {
			if h.DecayRate > 0 {
				h.Damage(h.DecayRate * dt)
			}
			if h.Dead() {
				reg.Destroy(e)
				d.Reaped++
			}
		})
}
