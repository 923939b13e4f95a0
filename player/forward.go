package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/component"
)

// ClipSource reports the clip currently dominating a layer.
type ClipSource interface {
	CurrentClip(layer int) string
}

// RootMotionReceiver applies animation root motion.
type RootMotionReceiver interface {
	AnimatorMove(delta cp.Vector)
}

// EventForward routes animator frame events and root motion onto the
// blackboard and the mover.
type EventForward struct {
	refs  *References
	clips ClipSource
	mover RootMotionReceiver
}

func NewEventForward(refs *References, clips ClipSource, mover RootMotionReceiver) *EventForward {
	return &EventForward{refs: refs, clips: clips, mover: mover}
}

// OnAnimatorMove forwards a root-motion delta to the mover.
func (f *EventForward) OnAnimatorMove(delta cp.Vector) {
	if f == nil || f.mover == nil {
		return
	}
	f.mover.AnimatorMove(delta)
}

// isCurrent filters end events from clips that are fading out.
func (f *EventForward) isCurrent(layer int, evt component.AnimationEvent) bool {
	if f.clips == nil || evt.Clip == "" {
		return true
	}
	return f.clips.CurrentClip(layer) == evt.Clip
}

// HandleAnimationEvent has the component.AnimationEventHandler signature.
func (f *EventForward) HandleAnimationEvent(layer, frame int, evt component.AnimationEvent) {
	if f == nil || f.refs == nil {
		return
	}
	r := f.refs
	switch evt.Type {
	case component.AnimationEventDodgeEnd:
		if f.isCurrent(layer, evt) {
			r.MarkEnded(SegmentDodge)
		}
	case component.AnimationEventLandEnd:
		r.MarkEnded(SegmentLand)
	case component.AnimationEventUnEquipEnd:
		r.MarkEnded(SegmentUnEquip)
	case component.AnimationEventEquipEnd:
		r.MarkEnded(SegmentEquip)
	case component.AnimationEventExecutionEnd:
		r.MarkEnded(SegmentExecution)
	case component.AnimationEventAttackEnd:
		r.MarkEnded(SegmentAttack)
	case component.AnimationEventGetHitEnd:
		if f.isCurrent(layer, evt) {
			r.MarkEnded(SegmentGetHit)
		}

	case component.AnimationEventSpawnParticle:
		r.SpawnParticles.Invoke()
	case component.AnimationEventEnableHitDetection:
		r.EnableHitDetection.Invoke()
	case component.AnimationEventDisableHitDetection:
		r.DisableHitDetection.Invoke()
	case component.AnimationEventGrabHolster:
		r.GrabHolster.Invoke()
	case component.AnimationEventReleaseHolster:
		r.ReleaseHolster.Invoke()
	case component.AnimationEventGrabWeapon:
		r.GrabWeapon.Invoke()
	case component.AnimationEventReleaseWeapon:
		r.ReleaseWeapon.Invoke()

	case component.AnimationEventWarpStart:
		r.InAnimationWarpFrames = true
	case component.AnimationEventWarpEnd:
		r.InAnimationWarpFrames = false
	}
}
