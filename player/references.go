package player

// Segment names an animation segment whose end is signalled by a clip event.
type Segment int

const (
	SegmentDodge Segment = iota
	SegmentLand
	SegmentUnEquip
	SegmentEquip
	SegmentExecution
	SegmentAttack
	SegmentGetHit
	segmentCount
)

var segmentNames = [...]string{
	SegmentDodge:     "dodge",
	SegmentLand:      "land",
	SegmentUnEquip:   "unequip",
	SegmentEquip:     "equip",
	SegmentExecution: "execution",
	SegmentAttack:    "attack",
	SegmentGetHit:    "get_hit",
}

func (s Segment) String() string {
	if s < 0 || s >= segmentCount {
		return "unknown"
	}
	return segmentNames[s]
}

// References is the blackboard shared by the brain, its states and the
// animation event path. It outlives the state machine.
type References struct {
	ended [segmentCount]bool

	// Input, refreshed once per frame by the game loop.
	DodgePressed        bool
	MenuPressed         bool
	UltimatePressed     bool
	AttackPressed       bool
	SecondAttackPressed bool
	MoveAxis            float64

	// InAnimationWarpFrames is true between the warp start and end events.
	InAnimationWarpFrames bool

	SpawnParticles      Hook
	EnableHitDetection  Hook
	DisableHitDetection Hook
	GrabHolster         Hook
	ReleaseHolster      Hook
	GrabWeapon          Hook
	ReleaseWeapon       Hook
}

// NewReferences returns an empty blackboard.
func NewReferences() *References {
	return &References{}
}

// MarkEnded records that seg finished playing.
func (r *References) MarkEnded(seg Segment) {
	if r == nil || seg < 0 || seg >= segmentCount {
		return
	}
	r.ended[seg] = true
}

// Ended reports whether seg finished since the flag was last cleared.
func (r *References) Ended(seg Segment) bool {
	if r == nil || seg < 0 || seg >= segmentCount {
		return false
	}
	return r.ended[seg]
}

// ClearEnded consumes the flag for seg.
func (r *References) ClearEnded(seg Segment) {
	if r == nil || seg < 0 || seg >= segmentCount {
		return
	}
	r.ended[seg] = false
}

// NoAttackPressed reports that neither attack button is held.
func (r *References) NoAttackPressed() bool {
	return !r.AttackPressed && !r.SecondAttackPressed
}

// ClearInput resets every input flag.
func (r *References) ClearInput() {
	r.DodgePressed = false
	r.MenuPressed = false
	r.UltimatePressed = false
	r.AttackPressed = false
	r.SecondAttackPressed = false
	r.MoveAxis = 0
}
