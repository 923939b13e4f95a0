package player

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/weapon"
)

// stateContext is shared by every state and transition predicate.
type stateContext struct {
	refs *References
	c    Collaborators
	cfg  Config

	weaponInHand  bool
	handOnHolster bool

	reported map[string]bool
}

func newStateContext(refs *References, c Collaborators, cfg Config) *stateContext {
	return &stateContext{
		refs:         refs,
		c:            c,
		cfg:          cfg,
		weaponInHand: true,
		reported:     make(map[string]bool),
	}
}

// warnOnce logs a missing-collaborator style failure the first time key is
// seen.
func (ctx *stateContext) warnOnce(key, format string, args ...any) {
	if ctx.reported[key] {
		return
	}
	ctx.reported[key] = true
	log.Printf("player: "+format, args...)
}

// play crossfades layer 0 into param using the param's configured duration.
func (ctx *stateContext) play(param string) {
	a := ctx.c.Animator
	a.ChangeAnimationState(param, a.AnimationDuration(param), 0)
}

func (ctx *stateContext) inTransition() bool {
	return ctx.c.Animator.IsInTransition(0)
}

func (ctx *stateContext) selectedWeapon() *weapon.Weapon {
	w := ctx.c.Weapons.SelectedWeapon()
	if w == nil {
		ctx.warnOnce("weapon", "no weapon selected")
	}
	return w
}

// canAfford reports whether stamina covers kind's cost on the currently
// selected weapon. The cost is read fresh on every call.
func (ctx *stateContext) canAfford(kind weapon.AttackKind) bool {
	w := ctx.selectedWeapon()
	if w == nil {
		return false
	}
	return ctx.c.Stamina.HasEnough(w.Attack(kind).Attributes.Stamina)
}

func (ctx *stateContext) canAffordUltimate() bool {
	w := ctx.selectedWeapon()
	if w == nil {
		return false
	}
	return ctx.c.Ultimate.HasEnough(w.Finisher.Attributes.Ultimate)
}

// isWarpPossible only peeks at the target; the lock is taken on enter.
func (ctx *stateContext) isWarpPossible() bool {
	finisher := ctx.c.Weapons.CurrentFinisher()
	if finisher == nil {
		return false
	}
	target, ok := ctx.c.Targets.PeekWarpTarget(ctx.c.Mover.Transform())
	if !ok {
		return false
	}
	return ctx.c.Warp.IsWarpPossible(target, finisher, ctx.cfg.WarpRootMotionMultiplier)
}

func (ctx *stateContext) groundedFlat() bool {
	return ctx.c.Mover.IsGrounded() && !ctx.c.Mover.IsGroundTooSteep()
}

func (ctx *stateContext) groundedSteep() bool {
	return ctx.c.Mover.IsGrounded() && ctx.c.Mover.IsGroundTooSteep()
}

func (ctx *stateContext) selectedNewWeapon() bool {
	return ctx.c.Weapons.HasSelectedNewWeapon(ctx.c.Menu.SelectedIndex())
}

// spawnParticle places a detached effect at local, relative to the VFX
// spawn point in front of the actor.
func (ctx *stateContext) spawnParticle(name string, local cp.Vector, rotation float64) {
	if ctx.c.Particles == nil || name == "" {
		return
	}
	origin := ctx.c.Mover.Transform()
	anchor := common.Transform{Position: origin.TransformPoint(ctx.cfg.VFXOffset), Rotation: origin.Rotation}
	at := common.Transform{Position: anchor.TransformPoint(local), Rotation: origin.Rotation + rotation}
	ctx.c.Particles.SpawnParticle(name, at)
}

func (ctx *stateContext) playSound(name string) {
	if ctx.c.Sounds == nil || name == "" {
		return
	}
	ctx.c.Sounds.PlayOneShot(name)
}
