package components

// Transform places an entity in the world.
type Transform struct {
	Position Vec2
	Rotation float64
	Scale    Vec2
}

// NewTransform returns a transform at (x, y) with unit scale.
func NewTransform(x, y float64) Transform {
	return Transform{
		Position: Vec2{X: x, Y: y},
		Scale:    Vec2{X: 1, Y: 1},
	}
}

// Translate moves the position by d.
func (t *Transform) Translate(d Vec2) {
	t.Position = t.Position.Add(d)
}

// ClampTo constrains the position to the rectangle spanning (minX, minY)
// to (maxX, maxY).
func (t *Transform) ClampTo(minX, minY, maxX, maxY float64) {
	if t.Position.X < minX {
		t.Position.X = minX
	} else if t.Position.X > maxX {
		t.Position.X = maxX
	}
	if t.Position.Y < minY {
		t.Position.Y = minY
	} else if t.Position.Y > maxY {
		t.Position.Y = maxY
	}
}
