package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/weapon"
)

// Animator is the animation bridge.
type Animator interface {
	IsInTransition(layer int) bool
	ChangeAnimationState(param string, blend float64, layer int)
	AnimationDuration(param string) float64
}

// Mover is the physics side of the actor.
type Mover interface {
	IsGrounded() bool
	IsGroundTooSteep() bool
	SetKinematic(kinematic bool)
	Move(axis float64)
	Stop()
	Transform() common.Transform
}

// Energy is a spendable resource such as stamina or ultimate charge.
type Energy interface {
	HasEnough(cost float64) bool
	Decrease(amount float64)
	Increase(amount float64)
}

// Health reports damage and death.
type Health interface {
	HasTakenDamage() bool
	AcknowledgeDamage()
	HasDied() bool
}

// TargetProvider supplies the warp target for the finisher. ok is false
// when there is nothing to warp to. PeekWarpTarget must not change which
// target is locked.
type TargetProvider interface {
	PeekWarpTarget(origin common.Transform) (target common.Transform, ok bool)
	WarpTarget(origin common.Transform) (target common.Transform, ok bool)
}

// WarpController bends finisher root motion toward a target.
type WarpController interface {
	IsWarpPossible(target common.Transform, finisher *weapon.Finisher, multiplier float64) bool
	SetWarpAnimationAndTarget(target common.Transform, finisher *weapon.Finisher, origin cp.Vector)
	NullAllConditions()
}

// WeaponManager is the source of weapon and combat data.
type WeaponManager interface {
	SelectedWeapon() *weapon.Weapon
	CurrentFinisher() *weapon.Finisher
	HasSelectedNewWeapon(index int) bool
	QueueWeapon(index int)
	EquipQueued() bool
	IncreaseAttackIndex()
	ReplaceFinisherFromOverrideController(clip string)
	HitSensor() component.HitSensor
	AttackDamage(kind weapon.AttackKind) float64
}

// WeaponMenu is the radial weapon selection.
type WeaponMenu interface {
	SelectedIndex() int
	SetOpen(open bool)
}

// ParticleSpawner instantiates detached one-shot effects.
type ParticleSpawner interface {
	SpawnParticle(name string, at common.Transform)
}

// SoundPlayer plays one-shot sound cues.
type SoundPlayer interface {
	PlayOneShot(name string)
}

// DebugSink receives the state name on every switch.
type DebugSink interface {
	SetState(name string)
}

// Collaborators are the subsystems the brain drives. Particles, Sounds and
// Debug are optional.
type Collaborators struct {
	Animator  Animator
	Mover     Mover
	Warp      WarpController
	Targets   TargetProvider
	Weapons   WeaponManager
	Menu      WeaponMenu
	Health    Health
	Stamina   Energy
	Ultimate  Energy
	Particles ParticleSpawner
	Sounds    SoundPlayer
	Debug     DebugSink
}

// Config holds brain tuning.
type Config struct {
	DodgeStaminaCost         float64
	WarpRootMotionMultiplier float64
	// VFXOffset is the particle spawn point in actor-local space.
	VFXOffset cp.Vector
	// EquipTransitionBlend is the crossfade into the idle equip pose.
	EquipTransitionBlend float64
}

// DefaultConfig returns the tuning used when player.yaml omits values.
func DefaultConfig() Config {
	return Config{
		DodgeStaminaCost:         20,
		WarpRootMotionMultiplier: 1.5,
		EquipTransitionBlend:     0.5,
	}
}
