package component

// HealthComponent exposes health operations for combat resolution.
type HealthComponent interface {
	IsAlive() bool
	ApplyDamage(amount float64, evt CombatEvent) bool
}

// EnergyGainer receives resource gained on hit.
type EnergyGainer interface {
	Increase(amount float64)
}

// HitSensor is a weapon damage area toggled by animation events.
type HitSensor interface {
	InitializeSensor(damage float64, gainsUltimate bool, gain float64, ultimate EnergyGainer)
	SetColliderEnabled(enabled bool)
}
