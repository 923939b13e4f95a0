package component

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func newTestAnimator() *Animator {
	a := NewAnimator(2)
	dodge := NewClip("roll", 10, 10, false)
	dodge.RootMotion = cp.Vector{X: 100}
	dodge.Events.Add(9, AnimationEvent{Type: AnimationEventDodgeEnd})
	a.AddClip(dodge)

	idle := NewClip("idle", 4, 10, true)
	idle.Events.Add(0, AnimationEvent{Type: AnimationEventSpawnParticle, Payload: "dust"})
	a.AddClip(idle)

	a.Bind(ParamDodge, "roll", 0.2)
	a.Bind(ParamLocomotion, "idle", 0)
	return a
}

func TestAnimatorTransition(t *testing.T) {
	a := newTestAnimator()
	a.ChangeAnimationState(ParamDodge, 0.2, 0)
	if !a.IsInTransition(0) {
		t.Fatalf("expected crossfade right after change")
	}
	if a.IsInTransition(1) {
		t.Fatalf("layer 1 should be idle")
	}
	a.Update(0.1)
	if !a.IsInTransition(0) {
		t.Fatalf("expected crossfade halfway")
	}
	a.Update(0.11)
	if a.IsInTransition(0) {
		t.Fatalf("expected crossfade done")
	}
	if a.CurrentClip(0) != "roll" || a.CurrentParam(0) != ParamDodge {
		t.Fatalf("current: clip=%q param=%q", a.CurrentClip(0), a.CurrentParam(0))
	}
}

func TestAnimatorDurations(t *testing.T) {
	a := newTestAnimator()
	tests := []struct {
		param string
		want  float64
	}{
		{param: ParamDodge, want: 0.2},
		{param: ParamEquipTransition, want: 0.5},
		{param: ParamLocomotion, want: DefaultTransitionDurations[ParamLocomotion]},
		{param: "unbound", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			if got := a.AnimationDuration(tt.param); got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestAnimatorFrameEvents(t *testing.T) {
	a := newTestAnimator()
	var got []AnimationEvent
	a.Emitter.Handlers = append(a.Emitter.Handlers, func(layer, frame int, evt AnimationEvent) {
		got = append(got, evt)
	})

	a.ChangeAnimationState(ParamDodge, 0, 0)
	for i := 0; i < 8; i++ {
		a.Update(0.1)
	}
	if len(got) != 0 {
		t.Fatalf("early events: %v", got)
	}
	a.Update(0.1)
	a.Update(0.5)
	if len(got) != 1 || got[0].Type != AnimationEventDodgeEnd || got[0].Clip != "roll" {
		t.Fatalf("events: %v", got)
	}
}

func TestAnimatorLoopingEventsRepeat(t *testing.T) {
	a := newTestAnimator()
	count := 0
	a.Emitter.Handlers = append(a.Emitter.Handlers, func(layer, frame int, evt AnimationEvent) {
		if evt.Type == AnimationEventSpawnParticle {
			count++
		}
	})
	a.ChangeAnimationState(ParamLocomotion, 0, 0)
	// frame 0 fires on the first update, then every 0.4s
	a.Update(0.05)
	a.Update(0.4)
	a.Update(0.4)
	if count != 3 {
		t.Fatalf("loop events: got %d want 3", count)
	}
}

func TestAnimatorRootMotion(t *testing.T) {
	a := newTestAnimator()
	var total cp.Vector
	a.OnRootMotion = func(d cp.Vector) { total = total.Add(d) }
	a.ChangeAnimationState(ParamDodge, 0, 0)
	for i := 0; i < 20; i++ {
		a.Update(0.1)
	}
	if math.Abs(total.X-100) > 1e-9 {
		t.Fatalf("root motion total: got %v want 100", total.X)
	}

	// layer 1 never drives root motion
	total = cp.Vector{}
	a.ChangeAnimationState(ParamDodge, 0, 1)
	a.Update(0.5)
	if total.X != 0 {
		t.Fatalf("layer 1 root motion: got %v", total.X)
	}
}

func TestAnimatorOverrideClip(t *testing.T) {
	a := newTestAnimator()
	a.AddClip(NewClip("heavy_roll", 12, 10, false))
	a.OverrideClip(ParamDodge, "heavy_roll")
	a.ChangeAnimationState(ParamDodge, 0, 0)
	if a.CurrentClip(0) != "heavy_roll" {
		t.Fatalf("override: got %q", a.CurrentClip(0))
	}
	a.OverrideClip(ParamDodge, "")
	a.ChangeAnimationState(ParamDodge, 0, 0)
	if a.CurrentClip(0) != "roll" {
		t.Fatalf("restore: got %q", a.CurrentClip(0))
	}
}

func TestAnimatorHandlerRestartStopsOldEvents(t *testing.T) {
	a := NewAnimator(1)
	c := NewClip("combo", 4, 10, false)
	c.Events.Add(1, AnimationEvent{Type: AnimationEventAttackEnd})
	c.Events.Add(2, AnimationEvent{Type: AnimationEventSpawnParticle})
	a.AddClip(c)
	a.Bind(ParamLightAttack, "combo", 0)

	var seen []AnimationEventType
	a.Emitter.Handlers = append(a.Emitter.Handlers, func(layer, frame int, evt AnimationEvent) {
		seen = append(seen, evt.Type)
		if evt.Type == AnimationEventAttackEnd {
			a.ChangeAnimationState(ParamLightAttack, 0, 0)
		}
	})
	a.ChangeAnimationState(ParamLightAttack, 0, 0)
	a.Update(0.35)
	if len(seen) != 1 || seen[0] != AnimationEventAttackEnd {
		t.Fatalf("seen: %v", seen)
	}
}
