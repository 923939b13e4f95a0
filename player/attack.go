package player

import (
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/weapon"
)

// attackState is one light or heavy swing. Stamina is paid on enter and the
// hit window follows the clip's hit detection events.
type attackState struct {
	baseState
	kind   weapon.AttackKind
	param  string
	sensor component.HitSensor
	subs   subscriptions
}

func newLightAttackState(ctx *stateContext) *attackState {
	return &attackState{
		baseState: baseState{name: StateLightAttack, ctx: ctx},
		kind:      weapon.AttackLight,
		param:     component.ParamLightAttack,
	}
}

func newHeavyAttackState(ctx *stateContext) *attackState {
	return &attackState{
		baseState: baseState{name: StateHeavyAttack, ctx: ctx},
		kind:      weapon.AttackHeavy,
		param:     component.ParamHeavyAttack,
	}
}

func (s *attackState) OnEnter() {
	ctx := s.ctx
	refs := ctx.refs
	refs.ClearEnded(SegmentAttack)

	w := ctx.selectedWeapon()
	if w == nil {
		return
	}
	attack := w.Attack(s.kind)
	ctx.c.Stamina.Decrease(attack.Attributes.Stamina)
	ctx.play(s.param)

	if sensor := ctx.c.Weapons.HitSensor(); sensor != nil {
		s.sensor = sensor
		gain := attack.Attributes.Ultimate
		sensor.InitializeSensor(ctx.c.Weapons.AttackDamage(s.kind), gain > 0, gain, ctx.c.Ultimate)
		s.subs.add(&refs.EnableHitDetection, func() { sensor.SetColliderEnabled(true) })
		s.subs.add(&refs.DisableHitDetection, func() { sensor.SetColliderEnabled(false) })
	}

	if effect := attack.Effect; effect.Particle != "" {
		s.subs.add(&refs.SpawnParticles, func() {
			ctx.spawnParticle(effect.Particle, effect.SpawnPosition, effect.SpawnRotation)
		})
	}
}

func (s *attackState) OnExit() {
	if s.sensor != nil {
		s.sensor.SetColliderEnabled(false)
		s.sensor = nil
	}
	s.ctx.c.Weapons.IncreaseAttackIndex()
	s.ctx.refs.ClearEnded(SegmentAttack)
	s.subs.releaseAll()
}
