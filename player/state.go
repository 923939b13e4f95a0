package player

// State names reported to debug observers.
const (
	StateGroundLocomotion    = "GroundLocomotion"
	StateFalling             = "Falling"
	StateSliding             = "Sliding"
	StateLanding             = "Landing"
	StateDodging             = "Dodging"
	StateWeaponMenu          = "WeaponMenu"
	StateWeaponUnEquip       = "WeaponUnEquip"
	StateIdleEquipTransition = "IdleEquipTransition"
	StateWeaponEquip         = "WeaponEquip"
	StateAttackUltimate      = "AttackUltimate"
	StateLightAttack         = "LightAttack"
	StateHeavyAttack         = "HeavyAttack"
	StateGetHit              = "GetHit"
	StateDie                 = "Die"
)

// baseState gives every state a name and no-op hooks to override.
type baseState struct {
	name string
	ctx  *stateContext
}

func (s *baseState) Name() string      { return s.name }
func (s *baseState) OnEnter()          {}
func (s *baseState) Tick(float64)      {}
func (s *baseState) FixedTick(float64) {}
func (s *baseState) OnExit()           {}
