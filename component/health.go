package component

// Health is the player's hit-point pool. Damage raises a pending flag that
// stays set until AcknowledgeDamage; death is sticky until Reset.
type Health struct {
	Max     float64
	Current float64
	IFrames float64
	Dead    bool

	damaged bool

	OnDamage func(h *Health, evt CombatEvent)
	OnDeath  func(h *Health, evt CombatEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage applies damage if not in i-frames. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount float64, evt CombatEvent) bool {
	if h == nil || h.Dead || h.IFrames > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.damaged = true
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// HasTakenDamage reports damage applied since the last AcknowledgeDamage.
func (h *Health) HasTakenDamage() bool {
	return h != nil && h.damaged
}

// AcknowledgeDamage clears the pending damage flag.
func (h *Health) AcknowledgeDamage() {
	if h == nil {
		return
	}
	h.damaged = false
}

// HasDied is monotonic until Reset.
func (h *Health) HasDied() bool {
	return h != nil && h.Dead
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// StartIFrames sets invulnerability time in seconds.
func (h *Health) StartIFrames(seconds float64) {
	if h == nil || seconds <= 0 {
		return
	}
	h.IFrames = seconds
}

// Tick advances the i-frame timer.
func (h *Health) Tick(dt float64) {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames -= dt
	if h.IFrames < 0 {
		h.IFrames = 0
	}
}

// Reset revives the pool at full health.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.Dead = false
	h.damaged = false
	h.IFrames = 0
}
