package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
)

const (
	// contact normals flatter than this never count as ground
	groundNormalMin  = 0.2
	groundGraceSteps = 2
)

// MoverConfig describes the player body.
type MoverConfig struct {
	Position   cp.Vector
	Width      float64
	Height     float64
	Mass       float64
	Friction   float64
	MoveSpeed  float64
	SlopeLimit float64 // degrees
}

// Mover is the physics side of the player: grounding queries, horizontal
// movement, kinematic mode and root motion.
type Mover struct {
	space *Space
	body  *cp.Body
	shape *cp.Shape

	moveSpeed  float64
	slopeLimit float64
	facing     float64

	grounded     bool
	groundNormal cp.Vector
	grace        int
	stepNormal   cp.Vector
	stepContact  bool

	kinematic  bool
	rootMotion cp.Vector
	hasMotion  bool

	warp       *WarpController
	inWindow   bool
	WarpWindow func() bool
}

// NewMover adds a player body to space.
func NewMover(space *Space, cfg MoverConfig) *Mover {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	if cfg.Width <= 0 {
		cfg.Width = 24
	}
	if cfg.Height <= 0 {
		cfg.Height = 48
	}
	if cfg.SlopeLimit <= 0 {
		cfg.SlopeLimit = 45
	}

	body := cp.NewBody(cfg.Mass, math.Inf(1))
	body.SetPosition(cfg.Position)
	shape := cp.NewBox(body, cfg.Width, cfg.Height, 2)
	shape.SetFriction(cfg.Friction)
	shape.SetCollisionType(collisionTypeBody)

	space.space.AddBody(body)
	space.space.AddShape(shape)

	m := &Mover{
		space:      space,
		body:       body,
		shape:      shape,
		moveSpeed:  cfg.MoveSpeed,
		slopeLimit: cfg.SlopeLimit * math.Pi / 180,
		facing:     1,
	}
	m.warp = NewWarpController(m.Position)
	space.movers[shape] = m
	return m
}

// Warp returns the mover's root-motion warp controller.
func (m *Mover) Warp() *WarpController { return m.warp }

func (m *Mover) Body() *cp.Body { return m.body }

func (m *Mover) Position() cp.Vector { return m.body.Position() }

// Transform returns the body position and facing as a rotation.
func (m *Mover) Transform() common.Transform {
	rot := 0.0
	if m.facing < 0 {
		rot = math.Pi
	}
	return common.Transform{Position: m.body.Position(), Rotation: rot}
}

// Facing is +1 when facing right and -1 when facing left.
func (m *Mover) Facing() float64 { return m.facing }

func (m *Mover) IsGrounded() bool { return m.grounded }

// IsGroundTooSteep reports whether the current ground exceeds the slope
// limit. It is false while airborne.
func (m *Mover) IsGroundTooSteep() bool {
	if !m.grounded {
		return false
	}
	return groundAngle(m.groundNormal) > m.slopeLimit
}

func (m *Mover) IsKinematic() bool { return m.kinematic }

// SetKinematic switches between physics-driven and root-motion-driven
// movement. Kinematic bodies ignore gravity and ground contacts.
func (m *Mover) SetKinematic(kinematic bool) {
	if m.kinematic == kinematic {
		return
	}
	m.kinematic = kinematic
	m.body.SetVelocity(0, 0)
	if kinematic {
		m.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
		m.grounded = false
		m.grace = 0
		return
	}
	m.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
}

// Move sets horizontal velocity from an axis in [-1, 1] and turns to face
// the direction of travel.
func (m *Mover) Move(axis float64) {
	if m.kinematic {
		return
	}
	axis = common.Clamp(axis, -1, 1)
	if axis > 0 {
		m.facing = 1
	} else if axis < 0 {
		m.facing = -1
	}
	v := m.body.Velocity()
	m.body.SetVelocity(axis*m.moveSpeed, v.Y)
}

// Stop zeroes horizontal velocity.
func (m *Mover) Stop() {
	v := m.body.Velocity()
	m.body.SetVelocity(0, v.Y)
}

// Face turns the mover toward world point p.
func (m *Mover) Face(p cp.Vector) {
	dx := p.X - m.body.Position().X
	if dx > 0 {
		m.facing = 1
	} else if dx < 0 {
		m.facing = -1
	}
}

// AnimatorMove queues a root-motion delta in actor-local space. It is
// applied on the next physics step.
func (m *Mover) AnimatorMove(delta cp.Vector) {
	m.rootMotion = m.rootMotion.Add(delta)
	m.hasMotion = true
}

func (m *Mover) beginStep(dt float64) {
	m.stepContact = false
	m.stepNormal = cp.Vector{}

	window := m.WarpWindow != nil && m.WarpWindow()
	delta := cp.Vector{X: m.rootMotion.X * m.facing, Y: m.rootMotion.Y}
	hasMotion := m.hasMotion
	m.rootMotion = cp.Vector{}
	m.hasMotion = false

	if m.kinematic {
		pos := m.body.Position()
		switch {
		case m.warp.Active() && window:
			pos = m.warp.Advance(delta.Length())
			m.Face(m.warp.Target().Position)
		case m.warp.Active() && m.inWindow && !window:
			pos = m.warp.Finish()
			m.Face(m.warp.Target().Position)
		default:
			pos = pos.Add(delta)
		}
		m.body.SetPosition(pos)
		m.body.SetVelocity(0, 0)
		m.inWindow = window
		return
	}
	m.inWindow = window

	if hasMotion && delta.X != 0 {
		v := m.body.Velocity()
		m.body.SetVelocity(delta.X/dt, v.Y)
	}
}

func (m *Mover) recordContact(n cp.Vector) {
	if n.Y < groundNormalMin {
		return
	}
	// keep the flattest contact of the step
	if !m.stepContact || n.Y > m.stepNormal.Y {
		m.stepNormal = n
	}
	m.stepContact = true
}

func (m *Mover) endStep() {
	if m.kinematic {
		return
	}
	if m.stepContact {
		m.grounded = true
		m.groundNormal = m.stepNormal
		m.grace = groundGraceSteps
		return
	}
	if m.grace > 0 {
		m.grace--
		return
	}
	m.grounded = false
	m.groundNormal = cp.Vector{}
}

// groundAngle returns the angle between a contact normal and straight down
// (y grows downward).
func groundAngle(n cp.Vector) float64 {
	l := n.Length()
	if l == 0 {
		return 0
	}
	return math.Acos(common.Clamp(n.Y/l, -1, 1))
}
