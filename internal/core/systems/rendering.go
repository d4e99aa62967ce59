package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sparsekit/internal/core/ecs"
	"sparsekit/internal/core/ecs/components"
)

// Renderer draws every entity that owns a Transform and a Sprite as a
// flat-coloured quad, back-to-front by the sprite's Z value.
type Renderer struct {
	scratch []renderRow // reused between frames to keep draws allocation-light
}

type renderRow struct {
	tr *components.Transform
	sp *components.Sprite
}

// NewRenderer returns a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders the current world onto screen. It reads through the view's
// cached pointers and performs no writes, so it can run between any two
// logic passes.
func (r *Renderer) Draw(reg *ecs.Registry, screen *ebiten.Image) {
	r.scratch = r.scratch[:0]
	ecs.ViewOf2[components.Transform, components.Sprite](reg).Each(
		func(_ ecs.EntityID, tr *components.Transform, sp *components.Sprite) {
			r.scratch = append(r.scratch, renderRow{tr: tr, sp: sp})
		})
	sort.SliceStable(r.scratch, func(i, j int) bool {
		return r.scratch[i].sp.Z < r.scratch[j].sp.Z
	})
	for _, row := range r.scratch {
		w := float32(row.sp.Width * row.tr.Scale.X)
		h := float32(row.sp.Height * row.tr.Scale.Y)
		x := float32(row.tr.Position.X) - w/2
		y := float32(row.tr.Position.Y) - h/2
		vector.DrawFilledRect(screen, x, y, w, h, row.sp.Color, false)
	}
}
