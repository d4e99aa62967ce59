package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Health_CreateWithDefaults(t *testing.T) {
	// Arrange & Act
	h := NewHealth(100, 1.5)

	// Assert
	assert.Equal(t, float64(100), h.Current)
	assert.Equal(t, float64(100), h.Max)
	assert.Equal(t, 1.5, h.DecayRate)
	assert.False(t, h.Dead())
}

func Test_Health_Damage(t *testing.T) {
	// Arrange
	h := NewHealth(100, 0)

	// Act
	dealt := h.Damage(30)

	// Assert
	assert.Equal(t, float64(30), dealt)
	assert.Equal(t, float64(70), h.Current)
}

func Test_Health_DamageClampsAtZero(t *testing.T) {
	// Arrange
	h := NewHealth(20, 0)

	// Act
	dealt := h.Damage(50)

	// Assert
	assert.Equal(t, float64(20), dealt)
	assert.Equal(t, float64(0), h.Current)
	assert.True(t, h.Dead())
}

func Test_Health_NegativeDamageIsIgnored(t *testing.T) {
	// Arrange
	h := NewHealth(50, 0)

	// Act
	dealt := h.Damage(-10)

	// Assert
	assert.Equal(t, float64(0), dealt)
	assert.Equal(t, float64(50), h.Current)
}

func Test_Health_HealClampsAtMax(t *testing.T) {
	// Arrange
	h := NewHealth(100, 0)
	h.Damage(40)

	// Act
	healed := h.Heal(70)

	// Assert
	assert.Equal(t, float64(40), healed)
	assert.Equal(t, float64(100), h.Current)
}
