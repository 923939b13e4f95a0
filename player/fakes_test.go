package player

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/common"
	"github.com/milk9111/executioner/component"
	"github.com/milk9111/executioner/weapon"
)

type fakeAnimator struct {
	inTransition bool
	durations    map[string]float64
	played       []string
}

func (f *fakeAnimator) IsInTransition(layer int) bool { return f.inTransition }
func (f *fakeAnimator) ChangeAnimationState(param string, blend float64, layer int) {
	f.played = append(f.played, param)
}
func (f *fakeAnimator) AnimationDuration(param string) float64 { return f.durations[param] }

type fakeMover struct {
	grounded  bool
	steep     bool
	kinematic bool
	moves     []float64
	stops     int
	transform common.Transform
}

func (f *fakeMover) IsGrounded() bool            { return f.grounded }
func (f *fakeMover) IsGroundTooSteep() bool      { return f.steep }
func (f *fakeMover) SetKinematic(k bool)         { f.kinematic = k }
func (f *fakeMover) Move(axis float64)           { f.moves = append(f.moves, axis) }
func (f *fakeMover) Stop()                       { f.stops++ }
func (f *fakeMover) Transform() common.Transform { return f.transform }

type fakeWarp struct {
	possible bool
	armed    bool
	nulls    int
	target   common.Transform
	origin   cp.Vector
}

func (f *fakeWarp) IsWarpPossible(target common.Transform, finisher *weapon.Finisher, multiplier float64) bool {
	return f.possible && finisher != nil
}
func (f *fakeWarp) SetWarpAnimationAndTarget(target common.Transform, finisher *weapon.Finisher, origin cp.Vector) {
	f.armed = true
	f.target = target
	f.origin = origin
}
func (f *fakeWarp) NullAllConditions() {
	f.armed = false
	f.nulls++
}

// fakeTargets loses its target between the check and the lock when lost
// is set.
type fakeTargets struct {
	target common.Transform
	ok     bool
	lost   bool
	peeks  int
	locks  int
}

func (f *fakeTargets) PeekWarpTarget(origin common.Transform) (common.Transform, bool) {
	f.peeks++
	return f.target, f.ok
}

func (f *fakeTargets) WarpTarget(origin common.Transform) (common.Transform, bool) {
	f.locks++
	if f.lost {
		return common.Transform{}, false
	}
	return f.target, f.ok
}

type fakeSensor struct {
	enabled       bool
	damage        float64
	gainsUltimate bool
	gain          float64
	inits         int
}

func (f *fakeSensor) InitializeSensor(damage float64, gainsUltimate bool, gain float64, ultimate component.EnergyGainer) {
	f.damage = damage
	f.gainsUltimate = gainsUltimate
	f.gain = gain
	f.inits++
}
func (f *fakeSensor) SetColliderEnabled(enabled bool) { f.enabled = enabled }

type fakeWeapons struct {
	weapons     []weapon.Weapon
	selected    int
	queued      int
	equips      int
	attackIndex int
	finisher    string
	sensor      *fakeSensor
	noFinisher  bool
}

func (f *fakeWeapons) SelectedWeapon() *weapon.Weapon {
	if f.selected < 0 || f.selected >= len(f.weapons) {
		return nil
	}
	return &f.weapons[f.selected]
}
func (f *fakeWeapons) CurrentFinisher() *weapon.Finisher {
	if f.noFinisher {
		return nil
	}
	if w := f.SelectedWeapon(); w != nil {
		return &w.Finisher
	}
	return nil
}
func (f *fakeWeapons) HasSelectedNewWeapon(index int) bool {
	return index >= 0 && index < len(f.weapons) && index != f.selected
}
func (f *fakeWeapons) QueueWeapon(index int) { f.queued = index }
func (f *fakeWeapons) EquipQueued() bool {
	f.equips++
	if f.queued < 0 {
		return false
	}
	f.selected = f.queued
	f.queued = -1
	return true
}
func (f *fakeWeapons) IncreaseAttackIndex()                           { f.attackIndex++ }
func (f *fakeWeapons) ReplaceFinisherFromOverrideController(c string) { f.finisher = c }
func (f *fakeWeapons) HitSensor() component.HitSensor {
	if f.sensor == nil {
		return nil
	}
	return f.sensor
}
func (f *fakeWeapons) AttackDamage(kind weapon.AttackKind) float64 {
	if w := f.SelectedWeapon(); w != nil {
		return w.Attack(kind).Attributes.Damage
	}
	return 0
}

type fakeMenu struct {
	index int
	open  bool
	opens int
}

func (f *fakeMenu) SelectedIndex() int { return f.index }
func (f *fakeMenu) SetOpen(open bool) {
	if open {
		f.opens++
	}
	f.open = open
}

type spawnedParticle struct {
	name string
	at   common.Transform
}

type fakeParticles struct{ spawned []spawnedParticle }

func (f *fakeParticles) SpawnParticle(name string, at common.Transform) {
	f.spawned = append(f.spawned, spawnedParticle{name: name, at: at})
}

type fakeSounds struct{ played []string }

func (f *fakeSounds) PlayOneShot(name string) { f.played = append(f.played, name) }

type fakeDebug struct{ states []string }

func (f *fakeDebug) SetState(name string) { f.states = append(f.states, name) }

func testWeapon(name string) weapon.Weapon {
	return weapon.Weapon{
		Name: name,
		Light: weapon.Attack{
			Clip:       name + "_light",
			Attributes: weapon.Attributes{Stamina: 15, Damage: 10, Ultimate: 5},
			Effect:     weapon.Effect{Particle: "slash"},
		},
		Heavy: weapon.Attack{Clip: name + "_heavy", Attributes: weapon.Attributes{Stamina: 30, Damage: 25}},
		Finisher: weapon.Finisher{
			Clip:               name + "_execution",
			Attributes:         weapon.Attributes{Stamina: 10, Ultimate: 50, Damage: 80},
			RootMotionDistance: 70,
			Effect:             weapon.Effect{Particle: "arc", SpawnPosition: cp.Vector{X: 10}, Sound: "swoosh"},
		},
		Sensor: weapon.SensorData{Enabled: true},
	}
}
