package fx

import (
	"image/color"
	"math"
)

// Particle is a transient dot used by the mouse trail and click bursts.
type Particle struct {
	ID    uint64
	Pos   Vec2
	Vel   Vec2
	Size  float64
	Life  float64
	Color color.RGBA
}

func (p *Particle) step(gravity, lifeDecay, sizeDecay float64) {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += gravity
	p.Life -= lifeDecay
	p.Size *= sizeDecay
}

func (p *Particle) alive() bool { return p.Life > 0 }

func (p *Particle) command(layer Layer) Command {
	return Command{
		Layer:  layer,
		Shape:  ShapeCircle,
		Pos:    p.Pos,
		Radius: p.Size,
		Fill:   p.Color,
		Alpha:  p.Life,
	}
}

// newTrailParticle builds the particle left behind by pointer movement. The
// size cycles through five steps with the running trail index.
func (e *Engine) newTrailParticle(x, y float64) Particle {
	t := e.ctx.Tuning
	r := e.ctx.Rand
	p := Particle{
		ID:    e.nextID(),
		Pos:   Vec2{x, y},
		Vel:   Vec2{(r.Float64() - 0.5) * t.TrailJitter, (r.Float64() - 0.5) * t.TrailJitter},
		Size:  2 + float64(e.trailIndex%5)*0.5,
		Life:  1,
		Color: HSL(200, 1, 0.5+r.Float64()*0.2),
	}
	e.trailIndex++
	return p
}

// burst spreads Tuning.BurstCount particles evenly around a full turn.
func (e *Engine) burst(x, y float64) {
	t := e.ctx.Tuning
	r := e.ctx.Rand
	n := t.BurstCount
	for i := 0; i < n; i++ {
		angle := math.Pi * 2 * float64(i) / float64(n)
		speed := r.Float64()*t.BurstSpeedRange + t.BurstSpeedMin
		sin, cos := math.Sincos(angle)
		e.explosions.Push(Particle{
			ID:    e.nextID(),
			Pos:   Vec2{x, y},
			Vel:   Vec2{cos * speed, sin * speed},
			Size:  r.Float64()*8 + 2,
			Life:  1,
			Color: HSL(r.Float64()*60+30, 1, 0.5),
		})
	}
	if e.ctx.Cues != nil {
		e.ctx.Cues.Burst(1)
	}
}

func (e *Engine) updateTrail() {
	t := e.ctx.Tuning
	e.trail.Each(func(p *Particle) {
		p.step(0, t.LifeDecay, t.SizeDecay)
		if p.alive() {
			e.frame.Add(p.command(Foreground))
		}
	})
	e.trail.Retain((*Particle).alive)
}

func (e *Engine) updateExplosions() {
	t := e.ctx.Tuning
	e.explosions.Each(func(p *Particle) {
		p.step(t.Gravity, t.LifeDecay, t.SizeDecay)
		if p.alive() {
			e.frame.Add(p.command(Foreground))
		}
	})
	e.explosions.Retain((*Particle).alive)
}
