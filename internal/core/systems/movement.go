package systems

import (
	"sparsekit/internal/core/ecs"
	"sparsekit/internal/core/ecs/components"
)

// Movement integrates physics into transforms: velocity picks up
// acceleration, is clamped to the component's speed limit, and advances
// the position. An optional boundary keeps entities inside the world.
type Movement struct {
	bounds *Rect
}

// Rect is an axis-aligned boundary for movement constraints.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewMovement returns an unbounded movement system.
func NewMovement() *Movement {
	return &Movement{}
}

// SetBounds constrains positions to the given rectangle.
func (m *Movement) SetBounds(minX, minY, maxX, maxY float64) {
	m.bounds = &Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Update advances every entity that owns both a Transform and a Physics
// component. It mutates components in place through the view's pointers;
// membership does not change, so the view cache stays valid.
func (m *Movement) Update(reg *ecs.Registry, dt float64) {
	ecs.ViewOf2[components.Transform, components.Physics](reg).Each(
		func(_ ecs.EntityID, tr *components.Transform, ph *components.Physics) {
			ph.Velocity = ph.Velocity.Add(ph.Acceleration.Scale(dt))
			ph.LimitSpeed()
			tr.Translate(ph.Velocity.Scale(dt))
			if m.bounds != nil {
				tr.ClampTo(m.bounds.MinX, m.bounds.MinY, m.bounds.MaxX, m.bounds.MaxY)
			}
		})
}
