package targeting

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
)

// Candidate is something the player can lock onto.
type Candidate interface {
	Position() cp.Vector
	IsAlive() bool
}

// AbilityTargetProvider picks the nearest living candidate in lock range and
// provides the warp target next to it.
type AbilityTargetProvider struct {
	LockRange float64

	candidates []Candidate
	target     *Target
	locked     Candidate
}

func NewAbilityTargetProvider(lockRange, distance float64) *AbilityTargetProvider {
	return &AbilityTargetProvider{
		LockRange: lockRange,
		target:    NewTarget(distance),
	}
}

// SetCandidates replaces the lockable set.
func (p *AbilityTargetProvider) SetCandidates(candidates []Candidate) {
	p.candidates = append(p.candidates[:0], candidates...)
	p.locked = nil
}

func (p *AbilityTargetProvider) Add(c Candidate) {
	if c == nil {
		return
	}
	p.candidates = append(p.candidates, c)
}

// Nearest returns the closest living candidate within LockRange of origin,
// or nil.
func (p *AbilityTargetProvider) Nearest(origin cp.Vector) Candidate {
	if p == nil {
		return nil
	}
	var (
		best     Candidate
		bestDist = p.LockRange * p.LockRange
	)
	for _, c := range p.candidates {
		if c == nil || !c.IsAlive() {
			continue
		}
		d := c.Position().DistanceSq(origin)
		if d <= bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// WarpTarget locks the nearest candidate and returns the location next to
// it. ok is false when nothing is in range.
func (p *AbilityTargetProvider) WarpTarget(origin common.Transform) (common.Transform, bool) {
	c := p.Nearest(origin.Position)
	if c == nil {
		p.locked = nil
		return common.Transform{}, false
	}
	p.locked = c
	parent := c.Position()
	p.target.RotateAroundParent(origin, parent)
	p.target.LookAtParent(parent)
	return p.target.Transform(), true
}

// PeekWarpTarget returns what WarpTarget would return without locking or
// moving the provider's target.
func (p *AbilityTargetProvider) PeekWarpTarget(origin common.Transform) (common.Transform, bool) {
	c := p.Nearest(origin.Position)
	if c == nil {
		return common.Transform{}, false
	}
	t := Target{Distance: p.target.Distance}
	parent := c.Position()
	t.RotateAroundParent(origin, parent)
	t.LookAtParent(parent)
	return t.Transform(), true
}

// Locked returns the candidate chosen by the last successful WarpTarget.
func (p *AbilityTargetProvider) Locked() Candidate { return p.locked }
