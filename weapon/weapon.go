package weapon

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/executioner/prefabs"
)

// AttackKind selects which of a weapon's attacks is being resolved.
type AttackKind string

const (
	AttackLight    AttackKind = "light"
	AttackHeavy    AttackKind = "heavy"
	AttackFinisher AttackKind = "finisher"
)

// Attributes are the resource costs and damage of one attack.
type Attributes struct {
	Stamina  float64
	Ultimate float64
	Damage   float64
}

type Attack struct {
	Clip       string
	Attributes Attributes
	Effect     Effect
}

// Effect is a detached visual and sound played by an attack.
type Effect struct {
	Particle      string
	SpawnPosition cp.Vector
	SpawnRotation float64
	Sound         string
}

// Finisher is the warp-assisted execution attack.
type Finisher struct {
	Clip               string
	Attributes         Attributes
	RootMotionDistance float64
	Effect             Effect
}

// SensorData positions the weapon hit sensor in owner-local space.
type SensorData struct {
	Enabled bool
	Offset  cp.Vector
	Size    cp.Vector
}

// Weapon is immutable once loaded; reloads replace the whole value.
type Weapon struct {
	Name         string
	Description  string
	Light        Attack
	Heavy        Attack
	Finisher     Finisher
	Sensor       SensorData
	DamageScript string
}

// Attack returns the attack data for kind.
func (w *Weapon) Attack(kind AttackKind) Attack {
	switch kind {
	case AttackHeavy:
		return w.Heavy
	case AttackFinisher:
		return Attack{Clip: w.Finisher.Clip, Attributes: w.Finisher.Attributes, Effect: w.Finisher.Effect}
	default:
		return w.Light
	}
}

func vec(v prefabs.Vec2Spec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func attributes(a prefabs.AttributeSpec) Attributes {
	return Attributes{Stamina: a.Stamina, Ultimate: a.Ultimate, Damage: a.Damage}
}

func effect(e prefabs.EffectSpec) Effect {
	return Effect{
		Particle:      e.Particle,
		SpawnPosition: vec(e.SpawnPosition),
		SpawnRotation: e.SpawnRotation,
		Sound:         e.Sound,
	}
}

func attack(a prefabs.AttackSpec) Attack {
	return Attack{Clip: a.Clip, Attributes: attributes(a.Attributes), Effect: effect(a.Effect)}
}

// FromSpec converts prefab data into a Weapon.
func FromSpec(spec prefabs.WeaponSpec) (Weapon, error) {
	if spec.Name == "" {
		return Weapon{}, fmt.Errorf("weapon: missing name")
	}
	for _, a := range []prefabs.AttributeSpec{spec.LightAttack.Attributes, spec.HeavyAttack.Attributes, spec.Finisher.Attributes} {
		for _, v := range []float64{a.Stamina, a.Ultimate, a.Damage} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Weapon{}, fmt.Errorf("weapon: %s: attribute is not finite", spec.Name)
			}
			if v < 0 {
				return Weapon{}, fmt.Errorf("weapon: %s: negative attribute", spec.Name)
			}
		}
	}
	if d := spec.Finisher.RootMotionDistance; math.IsNaN(d) || math.IsInf(d, 0) {
		return Weapon{}, fmt.Errorf("weapon: %s: root motion distance is not finite", spec.Name)
	}
	return Weapon{
		Name:        spec.Name,
		Description: spec.Description,
		Light:       attack(spec.LightAttack),
		Heavy:       attack(spec.HeavyAttack),
		Finisher: Finisher{
			Clip:               spec.Finisher.Clip,
			Attributes:         attributes(spec.Finisher.Attributes),
			RootMotionDistance: spec.Finisher.RootMotionDistance,
			Effect:             effect(spec.Finisher.Effect),
		},
		Sensor: SensorData{
			Enabled: spec.HitSensor.Enabled,
			Offset:  vec(spec.HitSensor.Offset),
			Size:    vec(spec.HitSensor.Size),
		},
		DamageScript: spec.DamageScript,
	}, nil
}

// Load reads weapons from path, or from the prefab weapons.yaml when path is
// empty.
func Load(path string) ([]Weapon, error) {
	var (
		spec prefabs.WeaponsSpec
		err  error
	)
	if path == "" {
		spec, err = prefabs.LoadSpec[prefabs.WeaponsSpec]("weapons.yaml")
	} else {
		spec, err = prefabs.LoadSpecFile[prefabs.WeaponsSpec](path)
	}
	if err != nil {
		return nil, err
	}
	if len(spec.Weapons) == 0 {
		return nil, fmt.Errorf("weapon: no weapons defined")
	}
	out := make([]Weapon, 0, len(spec.Weapons))
	for _, ws := range spec.Weapons {
		w, err := FromSpec(ws)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
