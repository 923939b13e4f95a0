package component

// AnimationEventType identifies a type of frame event.
type AnimationEventType string

const (
	AnimationEventDodgeEnd     AnimationEventType = "dodge_end"
	AnimationEventLandEnd      AnimationEventType = "land_end"
	AnimationEventUnEquipEnd   AnimationEventType = "unequip_end"
	AnimationEventEquipEnd     AnimationEventType = "equip_end"
	AnimationEventExecutionEnd AnimationEventType = "execution_end"
	AnimationEventAttackEnd    AnimationEventType = "attack_end"
	AnimationEventGetHitEnd    AnimationEventType = "get_hit_end"

	AnimationEventSpawnParticle       AnimationEventType = "spawn_particle"
	AnimationEventEnableHitDetection  AnimationEventType = "enable_hit_detection"
	AnimationEventDisableHitDetection AnimationEventType = "disable_hit_detection"
	AnimationEventGrabHolster         AnimationEventType = "grab_holster"
	AnimationEventReleaseHolster      AnimationEventType = "release_holster"
	AnimationEventGrabWeapon          AnimationEventType = "grab_weapon"
	AnimationEventReleaseWeapon       AnimationEventType = "release_weapon"

	AnimationEventWarpStart AnimationEventType = "warp_start"
	AnimationEventWarpEnd   AnimationEventType = "warp_end"
)

// AnimationEvent is emitted by animation frame callbacks.
type AnimationEvent struct {
	Type    AnimationEventType
	Clip    string
	Payload string
}

// AnimationEventHandler handles animation frame events.
type AnimationEventHandler func(layer, frame int, evt AnimationEvent)

// AnimationEventEmitter dispatches animation frame events to handlers.
type AnimationEventEmitter struct {
	Handlers []AnimationEventHandler
}

// Emit sends a frame event to all handlers.
func (e *AnimationEventEmitter) Emit(layer, frame int, evt AnimationEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(layer, frame, evt)
		}
	}
}

// AnimationEventMap stores per-frame events.
type AnimationEventMap struct {
	Frames map[int][]AnimationEvent
}

// NewAnimationEventMap creates a new event map.
func NewAnimationEventMap() *AnimationEventMap {
	return &AnimationEventMap{Frames: make(map[int][]AnimationEvent)}
}

// Add adds an event for a frame.
func (m *AnimationEventMap) Add(frame int, evt AnimationEvent) {
	if m == nil || frame < 0 {
		return
	}
	if m.Frames == nil {
		m.Frames = make(map[int][]AnimationEvent)
	}
	m.Frames[frame] = append(m.Frames[frame], evt)
}

// At returns the events for a frame.
func (m *AnimationEventMap) At(frame int) []AnimationEvent {
	if m == nil {
		return nil
	}
	return m.Frames[frame]
}
