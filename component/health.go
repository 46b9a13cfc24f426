package component

import "time"

// DamageClass distinguishes damage sources for the invincibility window
type DamageClass uint8

const (
	DamageContact DamageClass = iota
	DamageProjectile
	DamageExplosion
)

// HealthComponent tracks hit points and the post-hit invincibility window
// Current never exceeds Max and never goes below zero
type HealthComponent struct {
	Current         int
	Max             int
	InvulnRemaining time.Duration
	InvulnDuration  time.Duration
	InvulnClass     DamageClass

	// RegenCarry accumulates fractional regeneration between frames
	RegenCarry float64
}

// Alive reports whether the entity still has hit points
func (h HealthComponent) Alive() bool {
	return h.Current > 0
}

// Clamp forces Current into [0, Max]
func (h *HealthComponent) Clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
