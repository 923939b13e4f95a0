package effects

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"golang.org/x/image/colornames"
)

// ParticleStyle describes how a named effect bursts.
type ParticleStyle struct {
	Count    int
	Lifetime float64
	Radius   float64
	Speed    float64
	// Spread is the half-angle of the burst cone in radians.
	Spread float64
	Drag   float64
	Color  color.RGBA
}

// DefaultStyles are the effects referenced by weapons.yaml.
var DefaultStyles = map[string]ParticleStyle{
	"arc":    {Count: 10, Lifetime: 0.35, Radius: 5, Speed: 260, Spread: 0.6, Drag: 4, Color: colornames.Gold},
	"burst":  {Count: 12, Lifetime: 0.4, Radius: 4, Speed: 220, Spread: 0.9, Drag: 3, Color: colornames.Orangered},
	"slash":  {Count: 6, Lifetime: 0.25, Radius: 4, Speed: 200, Spread: 0.4, Drag: 6, Color: colornames.Whitesmoke},
	"sparks": {Count: 14, Lifetime: 0.3, Radius: 2, Speed: 340, Spread: 1.2, Drag: 3, Color: colornames.Orange},
	"dust":   {Count: 8, Lifetime: 0.5, Radius: 6, Speed: 60, Spread: math.Pi, Drag: 2, Color: colornames.Tan},
}

type particle struct {
	pos      cp.Vector
	vel      cp.Vector
	age      float64
	lifetime float64
	radius   float64
	drag     float64
	color    color.RGBA
}

// Particles owns every live detached particle. Spawned particles keep their
// world position and never follow the actor that spawned them.
type Particles struct {
	styles   map[string]ParticleStyle
	live     []particle
	reported map[string]bool
}

// NewParticles creates a system using styles, or DefaultStyles when nil.
func NewParticles(styles map[string]ParticleStyle) *Particles {
	if styles == nil {
		styles = DefaultStyles
	}
	return &Particles{styles: styles, reported: make(map[string]bool)}
}

// SpawnParticle bursts the named effect at the transform, aimed along its
// forward axis.
func (p *Particles) SpawnParticle(name string, at common.Transform) {
	if p == nil {
		return
	}
	style, ok := p.styles[name]
	if !ok {
		if !p.reported[name] {
			p.reported[name] = true
			log.Printf("effects: unknown particle %q", name)
		}
		return
	}
	count := max(style.Count, 1)
	base := at.Rotation
	for i := range count {
		// fan evenly across the cone
		t := 0.5
		if count > 1 {
			t = float64(i) / float64(count-1)
		}
		angle := base + common.Lerp(-style.Spread, style.Spread, t)
		speed := style.Speed * (0.6 + 0.4*float64((i*7)%count)/float64(count))
		p.live = append(p.live, particle{
			pos:      at.Position,
			vel:      cp.ForAngle(angle).Mult(speed),
			lifetime: style.Lifetime,
			radius:   style.Radius,
			drag:     style.Drag,
			color:    style.Color,
		})
	}
}

// Update advances and expires particles.
func (p *Particles) Update(dt float64) {
	if p == nil || dt <= 0 {
		return
	}
	live := p.live[:0]
	for _, pt := range p.live {
		pt.age += dt
		if pt.age >= pt.lifetime {
			continue
		}
		pt.vel = pt.vel.Mult(math.Max(0, 1-pt.drag*dt))
		pt.pos = pt.pos.Add(pt.vel.Mult(dt))
		live = append(live, pt)
	}
	p.live = live
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	if p == nil {
		return 0
	}
	return len(p.live)
}

// Draw renders particles shrinking and fading over their lifetime.
func (p *Particles) Draw(screen *ebiten.Image, camX, camY float64) {
	if p == nil || screen == nil {
		return
	}
	for _, pt := range p.live {
		life := 1 - common.Clamp01(pt.age/pt.lifetime)
		c := pt.color
		c.A = uint8(float64(c.A) * life)
		x := float32(pt.pos.X - camX)
		y := float32(pt.pos.Y - camY)
		vector.FillCircle(screen, x, y, float32(pt.radius*(0.4+0.6*life)), c, true)
	}
}
