// Package systems contains the caller-side systems that drive the ECS
// core in the demo simulation: movement integration, health decay and an
// ebiten renderer. The core does not schedule anything — the simulation
// loop calls each system's Update in the order it wants, then applies
// pending destruction with Registry.Update.
package systems

import "sparsekit/internal/core/ecs"

// System is one step of the per-frame logic pass.
type System interface {
	Update(reg *ecs.Registry, dt float64)
}
