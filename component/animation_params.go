package component

// Animation parameters the player controller switches between. Each maps to
// a clip through the animator's controller table and may carry its own
// configured transition duration.
const (
	ParamLocomotion      = "locomotion"
	ParamFalling         = "falling"
	ParamSliding         = "sliding"
	ParamLanding         = "landing"
	ParamDodge           = "dodge"
	ParamWeaponMenu      = "weapon_menu"
	ParamUnEquip         = "unequip"
	ParamEquipTransition = "equip_transition"
	ParamEquip           = "equip"
	ParamLightAttack     = "light_attack"
	ParamHeavyAttack     = "heavy_attack"
	ParamAttackFinisher  = "attack_finisher"
	ParamGetHit          = "get_hit"
	ParamDie             = "die"
)

// DefaultTransitionDurations are used when animations.yaml omits a duration.
var DefaultTransitionDurations = map[string]float64{
	ParamLocomotion:      0.15,
	ParamFalling:         0.1,
	ParamSliding:         0.1,
	ParamLanding:         0.05,
	ParamDodge:           0.05,
	ParamWeaponMenu:      0.2,
	ParamUnEquip:         0.1,
	ParamEquipTransition: 0.5,
	ParamEquip:           0.1,
	ParamLightAttack:     0.05,
	ParamHeavyAttack:     0.08,
	ParamAttackFinisher:  0.1,
	ParamGetHit:          0.05,
	ParamDie:             0.1,
}
