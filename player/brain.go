package player

import (
	"errors"
	"fmt"

	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/fsm"
	"github.com/milk9111/executioner/weapon"
)

var ErrMissingCollaborator = errors.New("player: missing collaborator")

// Brain builds the player state machine once and forwards frame and physics
// ticks into it.
type Brain struct {
	refs    *References
	ctx     *stateContext
	machine *fsm.Machine

	cancelDebug func()
}

// NewBrain validates the collaborators, wires every state and transition and
// enters the initial WeaponEquip state.
func NewBrain(refs *References, c Collaborators, cfg Config) (*Brain, error) {
	if refs == nil {
		return nil, fmt.Errorf("%w: references", ErrMissingCollaborator)
	}
	if err := checkCollaborators(c); err != nil {
		return nil, err
	}

	b := &Brain{
		refs:    refs,
		ctx:     newStateContext(refs, c, cfg),
		machine: fsm.NewMachine(),
	}
	if err := b.setupStateMachine(); err != nil {
		return nil, err
	}
	return b, nil
}

func checkCollaborators(c Collaborators) error {
	required := []struct {
		name string
		ok   bool
	}{
		{"animator", c.Animator != nil},
		{"mover", c.Mover != nil},
		{"warp controller", c.Warp != nil},
		{"target provider", c.Targets != nil},
		{"weapon manager", c.Weapons != nil},
		{"weapon menu", c.Menu != nil},
		{"health", c.Health != nil},
		{"stamina", c.Stamina != nil},
		{"ultimate", c.Ultimate != nil},
	}
	for _, r := range required {
		if !r.ok {
			return fmt.Errorf("%w: %s", ErrMissingCollaborator, r.name)
		}
	}
	return nil
}

func (b *Brain) setupStateMachine() error {
	ctx := b.ctx
	refs := b.refs
	mover := ctx.c.Mover
	m := b.machine

	// base locomotion
	groundedLocomotion := newGroundLocomotionState(ctx)
	falling := newFallingState(ctx)
	sliding := newSlidingState(ctx)
	landing := newLandingState(ctx)
	dodging := newDodgingState(ctx)

	// ui
	weaponMenu := newWeaponMenuState(ctx)

	// weapon
	weaponUnEquip := newWeaponUnEquipState(ctx)
	idleEquipTransition := newIdleEquipTransitionState(ctx, ctx.cfg.EquipTransitionBlend, component.ParamEquipTransition)
	weaponEquip := newWeaponEquipState(ctx)

	// attack
	attackUltimate := newAttackUltimateState(ctx)
	lightAttack := newLightAttackState(ctx)
	heavyAttack := newHeavyAttackState(ctx)

	// health
	getHit := newGetHitState(ctx)
	die := newDieState(ctx, b.discardStateMachine)

	at := m.AddTransition
	anyOf := m.AddAnyTransition

	at(groundedLocomotion, falling, func() bool { return !mover.IsGrounded() })
	at(groundedLocomotion, sliding, ctx.groundedSteep)
	at(groundedLocomotion, dodging, func() bool {
		return refs.DodgePressed && ctx.c.Stamina.HasEnough(ctx.cfg.DodgeStaminaCost)
	})
	at(groundedLocomotion, weaponMenu, func() bool { return refs.MenuPressed })
	at(groundedLocomotion, attackUltimate, func() bool {
		return refs.UltimatePressed && ctx.canAffordUltimate() && !ctx.inTransition() && ctx.isWarpPossible()
	})
	at(groundedLocomotion, lightAttack, func() bool {
		return refs.AttackPressed && ctx.canAfford(weapon.AttackLight) && !ctx.inTransition()
	})
	at(groundedLocomotion, heavyAttack, func() bool {
		return refs.SecondAttackPressed && ctx.canAfford(weapon.AttackHeavy) && !ctx.inTransition()
	})

	at(dodging, groundedLocomotion, func() bool { return refs.Ended(SegmentDodge) && ctx.groundedFlat() })
	at(dodging, falling, func() bool {
		return refs.Ended(SegmentDodge) && (!mover.IsGrounded() || mover.IsGroundTooSteep())
	})

	at(falling, landing, ctx.groundedFlat)
	at(falling, sliding, ctx.groundedSteep)

	at(sliding, landing, ctx.groundedFlat)
	at(sliding, falling, func() bool { return !mover.IsGrounded() })

	at(landing, groundedLocomotion, func() bool { return refs.Ended(SegmentLand) })

	at(weaponMenu, groundedLocomotion, func() bool { return !refs.MenuPressed && !ctx.selectedNewWeapon() })
	at(weaponMenu, weaponUnEquip, func() bool { return !refs.MenuPressed && ctx.selectedNewWeapon() })

	at(weaponUnEquip, idleEquipTransition, func() bool { return refs.Ended(SegmentUnEquip) })

	at(idleEquipTransition, weaponEquip, idleEquipTransition.IsTransitionTimeOver)

	at(weaponEquip, groundedLocomotion, func() bool { return refs.Ended(SegmentEquip) })

	at(attackUltimate, groundedLocomotion, func() bool { return refs.Ended(SegmentExecution) })

	at(lightAttack, groundedLocomotion, func() bool { return refs.Ended(SegmentAttack) && refs.NoAttackPressed() })
	at(lightAttack, lightAttack, func() bool {
		return refs.Ended(SegmentAttack) && ctx.canAfford(weapon.AttackLight) && refs.AttackPressed
	})
	at(lightAttack, heavyAttack, func() bool {
		return refs.Ended(SegmentAttack) && ctx.canAfford(weapon.AttackHeavy) && refs.SecondAttackPressed
	})

	at(heavyAttack, groundedLocomotion, func() bool { return refs.Ended(SegmentAttack) && refs.NoAttackPressed() })
	at(heavyAttack, heavyAttack, func() bool {
		return refs.Ended(SegmentAttack) && refs.SecondAttackPressed && ctx.canAfford(weapon.AttackHeavy)
	})
	at(heavyAttack, lightAttack, func() bool {
		return refs.Ended(SegmentAttack) && refs.AttackPressed && ctx.canAfford(weapon.AttackLight)
	})

	// registration order is the tie-break: get hit is checked before death
	anyOf(getHit, func() bool { return ctx.c.Health.HasTakenDamage() && !ctx.c.Health.HasDied() })
	anyOf(die, ctx.c.Health.HasDied)
	at(getHit, groundedLocomotion, func() bool { return refs.Ended(SegmentGetHit) })

	if sink := ctx.c.Debug; sink != nil {
		b.cancelDebug = m.Observe(sink.SetState)
	}

	return m.SetInitialState(weaponEquip)
}

// discardStateMachine is Die's teardown: the debug sink is detached and the
// machine stops for good.
func (b *Brain) discardStateMachine() {
	if b.cancelDebug != nil {
		b.cancelDebug()
		b.cancelDebug = nil
	}
	b.machine.Terminate()
}

// Tick runs once per rendered frame.
func (b *Brain) Tick(dt float64) {
	if b == nil {
		return
	}
	b.machine.Tick(dt)
}

// FixedTick runs once per physics step.
func (b *Brain) FixedTick(dt float64) {
	if b == nil {
		return
	}
	b.machine.FixedTick(dt)
}

// Observe registers an extra state-change observer.
func (b *Brain) Observe(fn func(name string)) (cancel func()) {
	return b.machine.Observe(fn)
}

// State returns the active state's name.
func (b *Brain) State() string {
	if s := b.machine.Current(); s != nil {
		return s.Name()
	}
	return ""
}

// Terminated reports whether the character has died and the machine stopped.
func (b *Brain) Terminated() bool {
	return b.machine.Status() == fsm.StatusTerminated
}

func (b *Brain) References() *References { return b.refs }

// WeaponInHand reports whether the weapon is drawn, as driven by the equip
// and unequip clip events.
func (b *Brain) WeaponInHand() bool { return b.ctx.weaponInHand }
