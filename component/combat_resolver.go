package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
)

// MeleeSensor is a weapon hit area that only deals damage while its collider
// is enabled. Each target is hit at most once per enable window.
type MeleeSensor struct {
	OwnerID int
	Faction Faction
	// Offset is the sensor center in owner-local space; Size is width/height.
	Offset  cp.Vector
	Size    cp.Vector
	Owner   func() common.Transform
	Emitter *CombatEventEmitter

	damage        float64
	gainsUltimate bool
	gain          float64
	ultimate      EnergyGainer

	enabled bool
	hit     map[int]bool
}

// InitializeSensor sets the damage dealt by the next windows and the ultimate
// charge granted per hit.
func (s *MeleeSensor) InitializeSensor(damage float64, gainsUltimate bool, gain float64, ultimate EnergyGainer) {
	if s == nil {
		return
	}
	s.damage = damage
	s.gainsUltimate = gainsUltimate
	s.gain = gain
	s.ultimate = ultimate
}

// SetColliderEnabled opens or closes the hit window. Opening a closed window
// forgets previous hits.
func (s *MeleeSensor) SetColliderEnabled(enabled bool) {
	if s == nil {
		return
	}
	if enabled && !s.enabled {
		s.hit = make(map[int]bool)
	}
	s.enabled = enabled
}

func (s *MeleeSensor) Enabled() bool {
	return s != nil && s.enabled
}

func (s *MeleeSensor) Damage() float64 {
	if s == nil {
		return 0
	}
	return s.damage
}

// Bounds returns the world-space sensor area.
func (s *MeleeSensor) Bounds() cp.BB {
	if s == nil {
		return cp.BB{}
	}
	var owner common.Transform
	if s.Owner != nil {
		owner = s.Owner()
	}
	c := owner.TransformPoint(s.Offset)
	hw, hh := s.Size.X/2, s.Size.Y/2
	return cp.BB{L: c.X - hw, B: c.Y - hh, R: c.X + hw, T: c.Y + hh}
}

// Resolve applies damage to every overlapping target not yet hit in this
// window and returns the number of hits.
func (s *MeleeSensor) Resolve(targets []Hurtbox) int {
	if s == nil || !s.enabled || s.damage <= 0 {
		return 0
	}
	bounds := s.Bounds()
	hits := 0
	for _, t := range targets {
		if t.Health == nil || t.OwnerID == s.OwnerID || s.hit[t.OwnerID] {
			continue
		}
		if !factionCanHit(s.Faction, t.Faction) || !t.Health.IsAlive() {
			continue
		}
		if !bbOverlaps(bounds, t.Bounds) {
			continue
		}

		evt := CombatEvent{
			Type:       EventHit,
			AttackerID: s.OwnerID,
			TargetID:   t.OwnerID,
			Damage:     s.damage,
			Position:   bbCenter(t.Bounds),
		}
		s.Emitter.Emit(evt)

		if !t.Health.ApplyDamage(s.damage, evt) {
			continue
		}
		s.hit[t.OwnerID] = true
		hits++
		if s.gainsUltimate && s.ultimate != nil {
			s.ultimate.Increase(s.gain)
		}

		evt.Type = EventDamageApplied
		s.Emitter.Emit(evt)
		if !t.Health.IsAlive() {
			evt.Type = EventDeath
			s.Emitter.Emit(evt)
		}
	}
	return hits
}
