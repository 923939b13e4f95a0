package targeting

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
)

// Target is a location kept at Distance from a parent point, on the side of
// the parent facing the actor, oriented toward the parent.
type Target struct {
	Distance  float64
	transform common.Transform
}

func NewTarget(distance float64) *Target {
	return &Target{Distance: distance}
}

// RotateAroundParent places the target on the line from parent to self.
// When self sits on the parent the target is placed behind self's facing.
func (t *Target) RotateAroundParent(self common.Transform, parent cp.Vector) {
	dir := self.Position.Sub(parent)
	if dir.LengthSq() == 0 {
		dir = self.Forward().Neg()
	}
	t.transform.Position = parent.Add(dir.Normalize().Mult(t.Distance))
}

// LookAtParent turns the target to face parent.
func (t *Target) LookAtParent(parent cp.Vector) {
	t.transform = t.transform.LookAt(parent)
}

func (t *Target) Transform() common.Transform { return t.transform }
