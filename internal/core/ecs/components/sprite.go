package components

import "image/color"

// Sprite is a flat-coloured quad for the demo renderer. Z orders the draw
// pass back-to-front.
type Sprite struct {
	Width, Height float64
	Color         color.RGBA
	Z             int
}

// NewSprite returns a square sprite of the given size and colour.
func NewSprite(size float64, c color.RGBA) Sprite {
	return Sprite{Width: size, Height: size, Color: c}
}
