package main

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/prefabs"
)

const (
	dummySwingInterval = 2.5
	dummyReach         = 70.0
	dummyDamage        = 10.0
	dummyRespawn       = 3.0
	dummyFlash         = 0.12
)

// Dummy is a training target. It takes hits, swings back at the player
// when in reach and respawns a few seconds after dying.
type Dummy struct {
	ID     int
	Name   string
	Health *component.Health

	pos     cp.Vector
	size    cp.Vector
	swing   float64
	respawn float64
	flash   float64
}

func NewDummy(id int, spec prefabs.DummySpec) *Dummy {
	d := &Dummy{
		ID:     id,
		Name:   spec.Name,
		Health: component.NewHealth(spec.Health),
		pos:    cp.Vector{X: spec.Position.X, Y: spec.Position.Y},
		size:   cp.Vector{X: spec.Size.X, Y: spec.Size.Y},
		swing:  dummySwingInterval,
	}
	d.Health.OnDamage = func(*component.Health, component.CombatEvent) { d.flash = dummyFlash }
	return d
}

func (d *Dummy) Position() cp.Vector { return d.pos }

func (d *Dummy) IsAlive() bool { return d.Health.IsAlive() }

func (d *Dummy) Bounds() cp.BB {
	hw, hh := d.size.X/2, d.size.Y/2
	return cp.BB{L: d.pos.X - hw, T: d.pos.Y + hh, R: d.pos.X + hw, B: d.pos.Y - hh}
}

func (d *Dummy) Hurtbox() component.Hurtbox {
	return component.Hurtbox{OwnerID: d.ID, Bounds: d.Bounds(), Faction: component.FactionEnemy, Health: d.Health}
}

// Update runs the respawn timer and the swing timer. hit is called when a
// swing connects with target.
func (d *Dummy) Update(dt float64, target cp.Vector, hit func(amount float64)) {
	if d.flash > 0 {
		d.flash -= dt
	}
	if !d.IsAlive() {
		d.respawn += dt
		if d.respawn >= dummyRespawn {
			d.respawn = 0
			d.swing = dummySwingInterval
			d.Health.Reset()
		}
		return
	}
	d.swing -= dt
	if d.swing > 0 {
		return
	}
	d.swing = dummySwingInterval
	if target.Distance(d.pos) <= dummyReach && hit != nil {
		hit(dummyDamage)
	}
}
