package player

import (
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/weapon"
)

// attackUltimateState plays the equipped weapon's finisher. The actor is
// warped toward the locked target by root motion, so the mover stays
// kinematic for the whole activation.
//
// Every finisher clip must fire execution_end or the state never exits.
type attackUltimateState struct {
	baseState
	finisher weapon.Finisher
	sensor   component.HitSensor
	subs     subscriptions
}

func newAttackUltimateState(ctx *stateContext) *attackUltimateState {
	return &attackUltimateState{baseState: baseState{name: StateAttackUltimate, ctx: ctx}}
}

func (s *attackUltimateState) OnEnter() {
	ctx := s.ctx
	ctx.refs.ClearEnded(SegmentExecution)

	f := ctx.c.Weapons.CurrentFinisher()
	if f == nil {
		ctx.warnOnce("finisher", "no finisher for the selected weapon")
		ctx.refs.MarkEnded(SegmentExecution)
		return
	}
	s.finisher = *f

	s.playAnimation()
	s.consumeAttributes()

	ctx.c.Mover.SetKinematic(true)
	origin := ctx.c.Mover.Transform()
	if target, ok := ctx.c.Targets.WarpTarget(origin); ok {
		ctx.c.Warp.SetWarpAnimationAndTarget(target, &s.finisher, origin.Position)
	} else {
		ctx.warnOnce("warp-target", "finisher started without a warp target")
	}

	s.setupWeaponCollision()

	// fired by the clip, not by collisions
	s.subs.add(&ctx.refs.SpawnParticles, s.spawnParticles)
	s.subs.add(&ctx.refs.SpawnParticles, s.playSound)
}

func (s *attackUltimateState) playAnimation() {
	s.ctx.c.Weapons.ReplaceFinisherFromOverrideController(s.finisher.Clip)
	s.ctx.play(component.ParamAttackFinisher)
}

// consumeAttributes pays the finisher on commit, before the clip plays out.
func (s *attackUltimateState) consumeAttributes() {
	s.ctx.c.Stamina.Decrease(s.finisher.Attributes.Stamina)
	s.ctx.c.Ultimate.Decrease(s.finisher.Attributes.Ultimate)
}

func (s *attackUltimateState) setupWeaponCollision() {
	sensor := s.ctx.c.Weapons.HitSensor()
	if sensor == nil {
		return
	}
	s.sensor = sensor
	damage := s.ctx.c.Weapons.AttackDamage(weapon.AttackFinisher)
	sensor.InitializeSensor(damage, true, s.finisher.Attributes.Ultimate, s.ctx.c.Ultimate)

	s.subs.add(&s.ctx.refs.EnableHitDetection, s.enableHitDetection)
	s.subs.add(&s.ctx.refs.DisableHitDetection, s.disableHitDetection)
}

func (s *attackUltimateState) spawnParticles() {
	e := s.finisher.Effect
	s.ctx.spawnParticle(e.Particle, e.SpawnPosition, e.SpawnRotation)
}

func (s *attackUltimateState) playSound() {
	s.ctx.playSound(s.finisher.Effect.Sound)
}

func (s *attackUltimateState) enableHitDetection() {
	if s.sensor != nil {
		s.sensor.SetColliderEnabled(true)
	}
}

func (s *attackUltimateState) disableHitDetection() {
	if s.sensor != nil {
		s.sensor.SetColliderEnabled(false)
	}
}

// OnExit unwinds everything OnEnter set up, however far the clip got.
func (s *attackUltimateState) OnExit() {
	ctx := s.ctx
	s.disableHitDetection()
	s.sensor = nil

	ctx.c.Mover.SetKinematic(false)
	ctx.c.Warp.NullAllConditions()
	ctx.refs.InAnimationWarpFrames = false

	ctx.c.Weapons.IncreaseAttackIndex()

	ctx.refs.ClearEnded(SegmentExecution)
	s.subs.releaseAll()
}
