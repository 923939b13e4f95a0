package weapon

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/executioner/component"
)

var ErrNoWeapons = errors.New("weapon: no weapons")

// ClipOverrider swaps the clip bound to an animation parameter.
type ClipOverrider interface {
	OverrideClip(param, clip string)
}

// Manager owns the weapon list, the selected and queued weapon, the combo
// attack index and the shared hit sensor.
type Manager struct {
	weapons   []Weapon
	selected  int
	queued    int
	attack    int
	sensor    *component.MeleeSensor
	clips     ClipOverrider
	modifiers map[string]*DamageModifier
}

// NewManager creates a manager with the first weapon selected and its clips
// applied.
func NewManager(weapons []Weapon, sensor *component.MeleeSensor, clips ClipOverrider) (*Manager, error) {
	if len(weapons) == 0 {
		return nil, ErrNoWeapons
	}
	m := &Manager{
		sensor:    sensor,
		clips:     clips,
		queued:    -1,
		modifiers: make(map[string]*DamageModifier),
	}
	if err := m.setWeapons(weapons); err != nil {
		return nil, err
	}
	m.applySelected()
	return m, nil
}

func (m *Manager) setWeapons(weapons []Weapon) error {
	modifiers := make(map[string]*DamageModifier)
	for _, w := range weapons {
		if w.DamageScript == "" {
			continue
		}
		if _, ok := modifiers[w.DamageScript]; ok {
			continue
		}
		mod, err := LoadDamageScript(w.DamageScript)
		if err != nil {
			return fmt.Errorf("weapon: %s: %w", w.Name, err)
		}
		modifiers[w.DamageScript] = mod
	}
	m.weapons = append([]Weapon(nil), weapons...)
	m.modifiers = modifiers
	return nil
}

// Replace swaps in reloaded weapon data. The selection is kept when its
// index is still valid; otherwise the first weapon is selected.
func (m *Manager) Replace(weapons []Weapon) error {
	if len(weapons) == 0 {
		return ErrNoWeapons
	}
	if err := m.setWeapons(weapons); err != nil {
		return err
	}
	if m.selected >= len(m.weapons) {
		m.selected = 0
		m.attack = 0
	}
	if m.queued >= len(m.weapons) {
		m.queued = -1
	}
	m.applySelected()
	return nil
}

// Weapons returns a copy of the weapon list.
func (m *Manager) Weapons() []Weapon {
	return append([]Weapon(nil), m.weapons...)
}

// Names returns the weapon names in selection order.
func (m *Manager) Names() []string {
	out := make([]string, len(m.weapons))
	for i, w := range m.weapons {
		out[i] = w.Name
	}
	return out
}

func (m *Manager) SelectedIndex() int { return m.selected }

// SelectedWeapon returns the equipped weapon.
func (m *Manager) SelectedWeapon() *Weapon {
	if m == nil || m.selected < 0 || m.selected >= len(m.weapons) {
		return nil
	}
	return &m.weapons[m.selected]
}

// CurrentFinisher returns the equipped weapon's finisher.
func (m *Manager) CurrentFinisher() *Finisher {
	w := m.SelectedWeapon()
	if w == nil {
		return nil
	}
	return &w.Finisher
}

// HasSelectedNewWeapon reports whether index names a valid weapon other than
// the equipped one.
func (m *Manager) HasSelectedNewWeapon(index int) bool {
	return m != nil && index >= 0 && index < len(m.weapons) && index != m.selected
}

// QueueWeapon stores the weapon to equip once the unequip animation ends.
func (m *Manager) QueueWeapon(index int) {
	if !m.HasSelectedNewWeapon(index) {
		return
	}
	m.queued = index
}

// EquipQueued makes the queued weapon the selected one. It reports whether
// the selection changed.
func (m *Manager) EquipQueued() bool {
	if m == nil || m.queued < 0 {
		return false
	}
	m.selected = m.queued
	m.queued = -1
	m.attack = 0
	m.applySelected()
	return true
}

func (m *Manager) IncreaseAttackIndex() { m.attack++ }

func (m *Manager) ResetAttackIndex() { m.attack = 0 }

func (m *Manager) AttackIndex() int { return m.attack }

// ReplaceFinisherFromOverrideController plays clip for the finisher
// parameter.
func (m *Manager) ReplaceFinisherFromOverrideController(clip string) {
	if m == nil || m.clips == nil || clip == "" {
		return
	}
	m.clips.OverrideClip(component.ParamAttackFinisher, clip)
}

// HitSensor returns the weapon's hit sensor, or nil when the equipped weapon
// has none.
func (m *Manager) HitSensor() component.HitSensor {
	w := m.SelectedWeapon()
	if w == nil || !w.Sensor.Enabled || m.sensor == nil {
		return nil
	}
	return m.sensor
}

// AttackDamage returns the equipped weapon's damage for kind after its
// damage script, using the current attack index as the combo count.
func (m *Manager) AttackDamage(kind AttackKind) float64 {
	w := m.SelectedWeapon()
	if w == nil {
		return 0
	}
	base := w.Attack(kind).Attributes.Damage
	mod := m.modifiers[w.DamageScript]
	if mod == nil {
		return base
	}
	dmg, err := mod.Apply(kind, base, m.attack)
	if err != nil {
		log.Printf("weapon: %s: %v", w.Name, err)
		return base
	}
	return dmg
}

func (m *Manager) applySelected() {
	w := m.SelectedWeapon()
	if w == nil {
		return
	}
	if m.clips != nil {
		m.clips.OverrideClip(component.ParamLightAttack, w.Light.Clip)
		m.clips.OverrideClip(component.ParamHeavyAttack, w.Heavy.Clip)
		m.clips.OverrideClip(component.ParamAttackFinisher, w.Finisher.Clip)
	}
	if m.sensor != nil {
		m.sensor.SetColliderEnabled(false)
		m.sensor.Offset = w.Sensor.Offset
		m.sensor.Size = w.Sensor.Size
	}
}
