package player

import "github.com/milk9111/executioner/component"

type getHitState struct{ baseState }

func newGetHitState(ctx *stateContext) *getHitState {
	return &getHitState{baseState{name: StateGetHit, ctx: ctx}}
}

// OnEnter consumes the pending damage so only a new hit can re-enter.
func (s *getHitState) OnEnter() {
	s.ctx.c.Health.AcknowledgeDamage()
	s.ctx.refs.ClearEnded(SegmentGetHit)
	s.ctx.c.Mover.Stop()
	s.ctx.play(component.ParamGetHit)
}

func (s *getHitState) OnExit() {
	s.ctx.refs.ClearEnded(SegmentGetHit)
}

// dieState is terminal. teardown ends the machine from inside OnEnter.
type dieState struct {
	baseState
	teardown func()
}

func newDieState(ctx *stateContext, teardown func()) *dieState {
	return &dieState{baseState: baseState{name: StateDie, ctx: ctx}, teardown: teardown}
}

func (s *dieState) OnEnter() {
	s.ctx.c.Mover.Stop()
	s.ctx.play(component.ParamDie)
	if s.teardown != nil {
		s.teardown()
	}
}
