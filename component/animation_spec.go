package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/prefabs"
)

var knownAnimationEvents = map[AnimationEventType]bool{
	AnimationEventDodgeEnd:            true,
	AnimationEventLandEnd:             true,
	AnimationEventUnEquipEnd:          true,
	AnimationEventEquipEnd:            true,
	AnimationEventExecutionEnd:        true,
	AnimationEventAttackEnd:           true,
	AnimationEventGetHitEnd:           true,
	AnimationEventSpawnParticle:       true,
	AnimationEventEnableHitDetection:  true,
	AnimationEventDisableHitDetection: true,
	AnimationEventGrabHolster:         true,
	AnimationEventReleaseHolster:      true,
	AnimationEventGrabWeapon:          true,
	AnimationEventReleaseWeapon:       true,
	AnimationEventWarpStart:           true,
	AnimationEventWarpEnd:             true,
}

// NewAnimatorFromSpec builds an animator with every clip and parameter
// binding in spec.
func NewAnimatorFromSpec(spec *prefabs.AnimationsSpec) (*Animator, error) {
	if spec == nil {
		return nil, fmt.Errorf("animation: nil spec")
	}
	a := NewAnimator(spec.Layers)
	for _, cs := range spec.Clips {
		if cs.Name == "" {
			return nil, fmt.Errorf("animation: clip without a name")
		}
		clip := NewClip(cs.Name, cs.Frames, cs.FPS, cs.Loop)
		clip.RootMotion = cp.Vector{X: cs.RootMotion.X, Y: cs.RootMotion.Y}
		for _, es := range cs.Events {
			typ := AnimationEventType(es.Type)
			if !knownAnimationEvents[typ] {
				return nil, fmt.Errorf("animation: clip %q: unknown event %q", cs.Name, es.Type)
			}
			if es.Frame < 0 || es.Frame >= clip.FrameCount {
				return nil, fmt.Errorf("animation: clip %q: event %q at frame %d outside [0,%d)", cs.Name, es.Type, es.Frame, clip.FrameCount)
			}
			clip.Events.Add(es.Frame, AnimationEvent{Type: typ, Payload: es.Payload})
		}
		a.AddClip(clip)
	}
	for _, ps := range spec.Params {
		if _, ok := a.clips[ps.Clip]; !ok {
			return nil, fmt.Errorf("animation: param %q bound to unknown clip %q", ps.Name, ps.Clip)
		}
		a.Bind(ps.Name, ps.Clip, ps.Duration)
	}
	return a, nil
}

// HasClip reports whether a clip named name is registered.
func (a *Animator) HasClip(name string) bool {
	if a == nil {
		return false
	}
	_, ok := a.clips[name]
	return ok
}
