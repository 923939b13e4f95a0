package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/weapon"
)

// WarpController bends the finisher's root motion so the actor ends the
// warp window at the target transform.
type WarpController struct {
	position func() cp.Vector

	active    bool
	target    common.Transform
	origin    cp.Vector
	distance  float64
	travelled float64
}

// NewWarpController creates a controller reading the actor position from
// position.
func NewWarpController(position func() cp.Vector) *WarpController {
	return &WarpController{position: position}
}

// IsWarpPossible reports whether target is within the finisher's root-motion
// distance scaled by multiplier.
func (w *WarpController) IsWarpPossible(target common.Transform, finisher *weapon.Finisher, multiplier float64) bool {
	if w == nil || w.position == nil || finisher == nil || finisher.RootMotionDistance <= 0 || multiplier <= 0 {
		return false
	}
	return w.position().Distance(target.Position) <= finisher.RootMotionDistance*multiplier
}

// SetWarpAnimationAndTarget arms the warp from origin toward target.
func (w *WarpController) SetWarpAnimationAndTarget(target common.Transform, finisher *weapon.Finisher, origin cp.Vector) {
	if w == nil || finisher == nil {
		return
	}
	w.active = true
	w.target = target
	w.origin = origin
	w.distance = finisher.RootMotionDistance
	w.travelled = 0
}

// NullAllConditions disarms the warp.
func (w *WarpController) NullAllConditions() {
	if w == nil {
		return
	}
	*w = WarpController{position: w.position}
}

func (w *WarpController) Active() bool { return w != nil && w.active }

func (w *WarpController) Target() common.Transform { return w.target }

// Progress is the fraction of the warp already covered.
func (w *WarpController) Progress() float64 {
	if w == nil || w.distance <= 0 {
		return 0
	}
	return common.Clamp01(w.travelled / w.distance)
}

// Advance consumes length units of root motion and returns the warped
// position.
func (w *WarpController) Advance(length float64) cp.Vector {
	if !w.Active() {
		return w.current()
	}
	w.travelled += length
	t := w.Progress()
	return cp.Vector{
		X: common.Lerp(w.origin.X, w.target.Position.X, t),
		Y: common.Lerp(w.origin.Y, w.target.Position.Y, t),
	}
}

// Finish places the actor on the target once the warp window closes.
func (w *WarpController) Finish() cp.Vector {
	if !w.Active() {
		return w.current()
	}
	w.travelled = w.distance
	return w.target.Position
}

func (w *WarpController) current() cp.Vector {
	if w == nil || w.position == nil {
		return cp.Vector{}
	}
	return w.position()
}
