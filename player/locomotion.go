package player

import "github.com/milk9111/executioner/component"

type groundLocomotionState struct{ baseState }

func newGroundLocomotionState(ctx *stateContext) *groundLocomotionState {
	return &groundLocomotionState{baseState{name: StateGroundLocomotion, ctx: ctx}}
}

func (s *groundLocomotionState) OnEnter() {
	s.ctx.play(component.ParamLocomotion)
}

func (s *groundLocomotionState) FixedTick(float64) {
	s.ctx.c.Mover.Move(s.ctx.refs.MoveAxis)
}

type fallingState struct{ baseState }

func newFallingState(ctx *stateContext) *fallingState {
	return &fallingState{baseState{name: StateFalling, ctx: ctx}}
}

func (s *fallingState) OnEnter() {
	s.ctx.play(component.ParamFalling)
}

// air control
func (s *fallingState) FixedTick(float64) {
	s.ctx.c.Mover.Move(s.ctx.refs.MoveAxis)
}

type slidingState struct{ baseState }

func newSlidingState(ctx *stateContext) *slidingState {
	return &slidingState{baseState{name: StateSliding, ctx: ctx}}
}

func (s *slidingState) OnEnter() {
	s.ctx.play(component.ParamSliding)
}

type landingState struct{ baseState }

func newLandingState(ctx *stateContext) *landingState {
	return &landingState{baseState{name: StateLanding, ctx: ctx}}
}

func (s *landingState) OnEnter() {
	s.ctx.refs.ClearEnded(SegmentLand)
	s.ctx.c.Mover.Stop()
	s.ctx.play(component.ParamLanding)
}

func (s *landingState) OnExit() {
	s.ctx.refs.ClearEnded(SegmentLand)
}

type dodgingState struct{ baseState }

func newDodgingState(ctx *stateContext) *dodgingState {
	return &dodgingState{baseState{name: StateDodging, ctx: ctx}}
}

func (s *dodgingState) OnEnter() {
	s.ctx.refs.ClearEnded(SegmentDodge)
	s.ctx.c.Stamina.Decrease(s.ctx.cfg.DodgeStaminaCost)
	s.ctx.play(component.ParamDodge)
}

func (s *dodgingState) OnExit() {
	s.ctx.refs.ClearEnded(SegmentDodge)
}
