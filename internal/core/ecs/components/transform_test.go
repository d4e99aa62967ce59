package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Transform_CreateWithUnitScale(t *testing.T) {
	// Arrange & Act
	tr := NewTransform(3, 4)

	// Assert
	assert.Equal(t, Vec2{X: 3, Y: 4}, tr.Position)
	assert.Equal(t, Vec2{X: 1, Y: 1}, tr.Scale)
	assert.Equal(t, float64(0), tr.Rotation)
}

func Test_Transform_Translate(t *testing.T) {
	// Arrange
	tr := NewTransform(1, 1)

	// Act
	tr.Translate(Vec2{X: 2, Y: -3})

	// Assert
	assert.Equal(t, Vec2{X: 3, Y: -2}, tr.Position)
}

func Test_Transform_ClampToBounds(t *testing.T) {
	// Arrange
	tr := NewTransform(150, -20)

	// Act
	tr.ClampTo(0, 0, 100, 100)

	// Assert
	assert.Equal(t, Vec2{X: 100, Y: 0}, tr.Position)
}

func Test_Physics_LimitSpeed(t *testing.T) {
	// Arrange
	p := Physics{Velocity: Vec2{X: 30, Y: 40}, MaxSpeed: 10}

	// Act
	p.LimitSpeed()

	// Assert
	assert.InDelta(t, 10, p.Velocity.Length(), 1e-9)
	assert.InDelta(t, 6, p.Velocity.X, 1e-9)
	assert.InDelta(t, 8, p.Velocity.Y, 1e-9)
}

func Test_Physics_NoLimitWhenUnset(t *testing.T) {
	// Arrange
	p := Physics{Velocity: Vec2{X: 30, Y: 40}}

	// Act
	p.LimitSpeed()

	// Assert
	assert.Equal(t, Vec2{X: 30, Y: 40}, p.Velocity)
}

func Test_Vec2_Operations(t *testing.T) {
	// Arrange
	v := Vec2{X: 3, Y: 4}

	// Act & Assert
	assert.Equal(t, float64(5), v.Length())
	assert.Equal(t, Vec2{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, Vec2{X: 4, Y: 6}, v.Add(Vec2{X: 1, Y: 2}))
}
