package prefabs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSpecFile reads a spec from an explicit path, bypassing the prefab
// directory lookup.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: read %s: %w", path, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}

	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PoolSpec struct {
	Max        float64 `yaml:"max"`
	Start      float64 `yaml:"start"`
	Regen      float64 `yaml:"regen"`
	RegenDelay float64 `yaml:"regen_delay"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
}

type PlayerSpec struct {
	Name                     string       `yaml:"name"`
	Spawn                    Vec2Spec     `yaml:"spawn"`
	MoveSpeed                float64      `yaml:"move_speed"`
	Mass                     float64      `yaml:"mass"`
	Collider                 ColliderSpec `yaml:"collider"`
	SlopeLimit               float64      `yaml:"slope_limit"`
	DodgeStaminaCost         float64      `yaml:"dodge_stamina_cost"`
	WarpRootMotionMultiplier float64      `yaml:"warp_root_motion_multiplier"`
	LockRange                float64      `yaml:"lock_range"`
	TargetDistance           float64      `yaml:"target_distance"`
	VFXOffset                Vec2Spec     `yaml:"vfx_offset"`
	HitIFrames               float64      `yaml:"hit_iframes"`
	EquipTransitionBlend     float64      `yaml:"equip_transition_blend"`
	Health                   float64      `yaml:"health"`
	Stamina                  PoolSpec     `yaml:"stamina"`
	Ultimate                 PoolSpec     `yaml:"ultimate"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AttributeSpec struct {
	Stamina  float64 `yaml:"stamina"`
	Ultimate float64 `yaml:"ultimate"`
	Damage   float64 `yaml:"damage"`
}

type AttackSpec struct {
	Clip       string        `yaml:"clip"`
	Attributes AttributeSpec `yaml:"attributes"`
	Effect     EffectSpec    `yaml:"effect"`
}

type EffectSpec struct {
	Particle      string   `yaml:"particle"`
	SpawnPosition Vec2Spec `yaml:"spawn_position"`
	SpawnRotation float64  `yaml:"spawn_rotation"`
	Sound         string   `yaml:"sound"`
}

type FinisherSpec struct {
	Clip               string        `yaml:"clip"`
	Attributes         AttributeSpec `yaml:"attributes"`
	RootMotionDistance float64       `yaml:"root_motion_distance"`
	Effect             EffectSpec    `yaml:"effect"`
}

type HitSensorSpec struct {
	Enabled bool     `yaml:"enabled"`
	Offset  Vec2Spec `yaml:"offset"`
	Size    Vec2Spec `yaml:"size"`
}

type WeaponSpec struct {
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description"`
	LightAttack  AttackSpec    `yaml:"light_attack"`
	HeavyAttack  AttackSpec    `yaml:"heavy_attack"`
	Finisher     FinisherSpec  `yaml:"finisher"`
	HitSensor    HitSensorSpec `yaml:"hit_sensor"`
	DamageScript string        `yaml:"damage_script"`
}

type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

func LoadWeaponsSpec() (*WeaponsSpec, error) {
	spec, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ClipEventSpec struct {
	Frame   int    `yaml:"frame"`
	Type    string `yaml:"type"`
	Payload string `yaml:"payload"`
}

type ClipSpec struct {
	Name       string          `yaml:"name"`
	Frames     int             `yaml:"frames"`
	FPS        int             `yaml:"fps"`
	Loop       bool            `yaml:"loop"`
	RootMotion Vec2Spec        `yaml:"root_motion"`
	Events     []ClipEventSpec `yaml:"events"`
}

type ParamSpec struct {
	Name     string  `yaml:"name"`
	Clip     string  `yaml:"clip"`
	Duration float64 `yaml:"duration"`
}

type AnimationsSpec struct {
	Layers int         `yaml:"layers"`
	Clips  []ClipSpec  `yaml:"clips"`
	Params []ParamSpec `yaml:"params"`
}

func LoadAnimationsSpec() (*AnimationsSpec, error) {
	spec, err := LoadSpec[AnimationsSpec]("animations.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SegmentSpec struct {
	A Vec2Spec `yaml:"a"`
	B Vec2Spec `yaml:"b"`
}

type DummySpec struct {
	Name     string   `yaml:"name"`
	Position Vec2Spec `yaml:"position"`
	Size     Vec2Spec `yaml:"size"`
	Health   float64  `yaml:"health"`
}

type ArenaSpec struct {
	Ground  []SegmentSpec `yaml:"ground"`
	Dummies []DummySpec   `yaml:"dummies"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
