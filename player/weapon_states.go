package player

import "github.com/milk9111/executioner/component"

type weaponMenuState struct{ baseState }

func newWeaponMenuState(ctx *stateContext) *weaponMenuState {
	return &weaponMenuState{baseState{name: StateWeaponMenu, ctx: ctx}}
}

func (s *weaponMenuState) OnEnter() {
	s.ctx.c.Mover.Stop()
	s.ctx.c.Menu.SetOpen(true)
	s.ctx.play(component.ParamWeaponMenu)
}

func (s *weaponMenuState) OnExit() {
	s.ctx.c.Menu.SetOpen(false)
}

// weaponUnEquipState holsters the current weapon and queues the one picked
// in the menu.
type weaponUnEquipState struct {
	baseState
	subs subscriptions
}

func newWeaponUnEquipState(ctx *stateContext) *weaponUnEquipState {
	return &weaponUnEquipState{baseState: baseState{name: StateWeaponUnEquip, ctx: ctx}}
}

func (s *weaponUnEquipState) OnEnter() {
	refs := s.ctx.refs
	refs.ClearEnded(SegmentUnEquip)
	s.ctx.c.Weapons.QueueWeapon(s.ctx.c.Menu.SelectedIndex())
	s.ctx.play(component.ParamUnEquip)

	s.subs.add(&refs.GrabHolster, func() { s.ctx.handOnHolster = true })
	s.subs.add(&refs.ReleaseWeapon, func() {
		s.ctx.weaponInHand = false
		s.ctx.handOnHolster = false
	})
}

func (s *weaponUnEquipState) OnExit() {
	s.ctx.refs.ClearEnded(SegmentUnEquip)
	s.subs.releaseAll()
}

// idleEquipTransitionState waits out a fixed duration between holstering
// and drawing. It is timed by elapsed ticks, not animation events.
type idleEquipTransitionState struct {
	baseState
	param    string
	blend    float64
	duration float64
	elapsed  float64
}

func newIdleEquipTransitionState(ctx *stateContext, blend float64, param string) *idleEquipTransitionState {
	return &idleEquipTransitionState{
		baseState: baseState{name: StateIdleEquipTransition, ctx: ctx},
		param:     param,
		blend:     blend,
	}
}

func (s *idleEquipTransitionState) OnEnter() {
	s.elapsed = 0
	s.duration = s.ctx.c.Animator.AnimationDuration(s.param)
	s.ctx.c.Animator.ChangeAnimationState(s.param, s.blend, 0)
}

func (s *idleEquipTransitionState) Tick(dt float64) {
	s.elapsed += dt
}

// IsTransitionTimeOver reports whether the configured duration has elapsed.
func (s *idleEquipTransitionState) IsTransitionTimeOver() bool {
	return s.elapsed >= s.duration
}

// weaponEquipState draws the queued weapon.
type weaponEquipState struct {
	baseState
	subs subscriptions
}

func newWeaponEquipState(ctx *stateContext) *weaponEquipState {
	return &weaponEquipState{baseState: baseState{name: StateWeaponEquip, ctx: ctx}}
}

func (s *weaponEquipState) OnEnter() {
	refs := s.ctx.refs
	refs.ClearEnded(SegmentEquip)
	s.ctx.c.Weapons.EquipQueued()
	s.ctx.play(component.ParamEquip)

	s.subs.add(&refs.GrabWeapon, func() { s.ctx.weaponInHand = true })
	s.subs.add(&refs.ReleaseHolster, func() { s.ctx.handOnHolster = false })
}

func (s *weaponEquipState) OnExit() {
	s.ctx.refs.ClearEnded(SegmentEquip)
	s.subs.releaseAll()
}
