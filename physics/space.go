package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypeGround
)

// Space wraps a chipmunk space holding static ground and player movers.
type Space struct {
	space         *cp.Space
	movers        map[*cp.Shape]*Mover
	handlersReady bool
}

func NewSpace() *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	s := &Space{
		space:  space,
		movers: make(map[*cp.Shape]*Mover),
	}
	s.ensureHandlers()
	return s
}

// Raw exposes the underlying chipmunk space.
func (s *Space) Raw() *cp.Space { return s.space }

// AddGround adds a static ground segment from a to b.
func (s *Space) AddGround(a, b cp.Vector, radius float64) *cp.Shape {
	shape := cp.NewSegment(s.space.StaticBody, a, b, radius)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeGround)
	s.space.AddShape(shape)
	return shape
}

// Step advances the simulation by dt seconds.
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, m := range s.movers {
		m.beginStep(dt)
	}
	s.space.Step(dt)
	for _, m := range s.movers {
		m.endStep()
	}
}

func (s *Space) ensureHandlers() {
	if s.handlersReady {
		return
	}

	handler := s.space.NewCollisionHandler(collisionTypeBody, collisionTypeGround)
	handler.UserData = s
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sp, ok := userData.(*Space)
		if !ok || sp == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		mover, isA := sp.movers[shapeA]
		if !isA {
			var okB bool
			mover, okB = sp.movers[shapeB]
			if !okB {
				return true
			}
		}
		if mover.kinematic {
			// root motion owns the body while kinematic
			return false
		}

		n := arb.Normal()
		if !isA {
			n = n.Neg()
		}
		mover.recordContact(n)
		return true
	}

	s.handlersReady = true
}
