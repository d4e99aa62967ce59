// Package core wires the ECS registry and the demo systems into a
// runnable simulation: a swarm of drifting entities whose health decays
// until they are reaped.
package core

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"sparsekit/internal/core/config"
	"sparsekit/internal/core/ecs"
	"sparsekit/internal/core/ecs/components"
	"sparsekit/internal/core/script"
	"sparsekit/internal/core/systems"
)

// tick is the fixed timestep; ebiten drives Update at 60 Hz.
const tick = 1.0 / 60.0

// Sim owns the world and the frame loop. It implements ebiten.Game; the
// headless path reuses the same Update without a window.
type Sim struct {
	cfg      config.Config
	reg      *ecs.Registry
	movement *systems.Movement
	decay    *systems.HealthDecay
	logic    []systems.System // update order of the per-frame pass
	renderer *systems.Renderer
	rng      *rand.Rand
	waves    []script.Wave
	frames   int
}

// NewSim builds the world: component registration, boundary setup, and
// the initial spawn. When waves is empty the config's default spawn is
// used.
func NewSim(cfg config.Config, waves []script.Wave) *Sim {
	s := &Sim{
		cfg:      cfg,
		reg:      ecs.NewRegistry(),
		movement: systems.NewMovement(),
		decay:    systems.NewHealthDecay(),
		renderer: systems.NewRenderer(),
		rng:      rand.New(rand.NewSource(1)),
		waves:    waves,
	}
	s.logic = []systems.System{s.movement, s.decay}
	ecs.Register[components.Transform](s.reg)
	ecs.Register[components.Physics](s.reg)
	ecs.Register[components.Health](s.reg)
	ecs.Register[components.Sprite](s.reg)
	s.movement.SetBounds(0, 0, float64(cfg.Window.Width), float64(cfg.Window.Height))

	if len(s.waves) == 0 {
		sp := cfg.Spawn
		s.waves = []script.Wave{{
			Count:  sp.Count,
			Speed:  sp.MaxSpeed,
			Health: sp.Health,
			Decay:  sp.DecayRate,
			Size:   sp.Size,
		}}
	}
	for _, w := range s.waves {
		s.spawnWave(w)
	}
	return s
}

func (s *Sim) spawnWave(w script.Wave) {
	width := float64(s.cfg.Window.Width)
	height := float64(s.cfg.Window.Height)
	for _, e := range s.reg.CreateBatch(w.Count) {
		ecs.AddTo(e, components.NewTransform(s.rng.Float64()*width, s.rng.Float64()*height))
		ecs.AddTo(e, components.Physics{
			Velocity: components.Vec2{
				X: (s.rng.Float64()*2 - 1) * w.Speed,
				Y: (s.rng.Float64()*2 - 1) * w.Speed,
			},
			MaxSpeed: w.Speed,
		})
		ecs.AddTo(e, components.NewHealth(w.Health, w.Decay))
		ecs.AddTo(e, components.NewSprite(w.Size, color.RGBA{
			R: uint8(60 + s.rng.Intn(180)),
			G: uint8(60 + s.rng.Intn(180)),
			B: uint8(60 + s.rng.Intn(180)),
			A: 255,
		}))
	}
}

// Step runs one fixed-timestep frame: the logic systems, then the
// registry's deferred-destruction pass.
func (s *Sim) Step() {
	for _, sys := range s.logic {
		sys.Update(s.reg, tick)
	}
	s.reg.Update()
	s.frames++
}

// Update implements ebiten.Game. The run ends when the swarm is gone.
func (s *Sim) Update() error {
	s.Step()
	if s.reg.Len() == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Sim) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 24, A: 255})
	s.renderer.Draw(s.reg, screen)
	st := s.reg.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"entities: %d  components: %d  reaped: %d  frame: %d",
		st.Entities, st.Components, s.decay.Reaped, s.frames))
}

// Layout implements ebiten.Game.
func (s *Sim) Layout(_, _ int) (int, int) {
	return s.cfg.Window.Width, s.cfg.Window.Height
}

// Run opens the window and drives the simulation until the swarm dies or
// the window closes.
func (s *Sim) Run() error {
	ebiten.SetWindowSize(s.cfg.Window.Width, s.cfg.Window.Height)
	ebiten.SetWindowTitle(s.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(s)
}

// RunHeadless steps the simulation without a window, reporting stats
// roughly once a second. It stops at the frame budget or when the swarm
// is gone.
func (s *Sim) RunHeadless(report func(format string, args ...any)) {
	for s.frames < s.cfg.Frames && s.reg.Len() > 0 {
		s.Step()
		if s.frames%60 == 0 && report != nil {
			st := s.reg.Stats()
			report("frame %d: entities=%d components=%d reaped=%d",
				s.frames, st.Entities, st.Components, s.decay.Reaped)
		}
	}
	if report != nil {
		st := s.reg.Stats()
		report("done after %d frames: entities=%d reaped=%d",
			s.frames, st.Entities, s.decay.Reaped)
	}
}

// Registry exposes the world for inspection in tests.
func (s *Sim) Registry() *ecs.Registry {
	return s.reg
}
