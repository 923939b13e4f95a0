package component

import "math"

// Energy is a spendable pool such as stamina or ultimate charge.
type Energy struct {
	Max     float64
	Current float64

	// RegenPerSecond refills the pool after RegenDelay seconds without spending.
	RegenPerSecond float64
	RegenDelay     float64

	sinceSpend float64
}

// NewEnergy creates a pool holding start, clamped to [0, max].
func NewEnergy(max, start float64) *Energy {
	if !finite(max) || max <= 0 {
		max = 1
	}
	e := &Energy{Max: max}
	e.set(start)
	return e
}

// HasEnough reports whether cost can be paid. A nil pool can pay nothing.
func (e *Energy) HasEnough(cost float64) bool {
	if e == nil {
		return false
	}
	return e.Current >= cost
}

// Decrease spends amount; the pool never goes below zero. Non-finite amounts
// are ignored.
func (e *Energy) Decrease(amount float64) {
	if e == nil || !finite(amount) || amount <= 0 {
		return
	}
	e.set(e.Current - amount)
	e.sinceSpend = 0
}

// Increase refills amount up to Max.
func (e *Energy) Increase(amount float64) {
	if e == nil || !finite(amount) || amount <= 0 {
		return
	}
	e.set(e.Current + amount)
}

// Regenerate advances passive refill by dt seconds.
func (e *Energy) Regenerate(dt float64) {
	if e == nil || !finite(dt) || dt <= 0 {
		return
	}
	e.sinceSpend += dt
	if e.RegenPerSecond <= 0 || e.sinceSpend < e.RegenDelay {
		return
	}
	e.Increase(e.RegenPerSecond * dt)
}

// Fraction returns Current/Max.
func (e *Energy) Fraction() float64 {
	if e == nil || e.Max <= 0 {
		return 0
	}
	return e.Current / e.Max
}

func (e *Energy) set(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < 0 {
		v = 0
	}
	if v > e.Max {
		v = e.Max
	}
	e.Current = v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
