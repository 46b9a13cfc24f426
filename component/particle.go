package component

import "time"

// ParticleComponent is a short-lived visual effect payload
// Particles churn through the object pool every frame; all fields are
// reset on release
type ParticleComponent struct {
	Life       time.Duration
	MaxLife    time.Duration
	Fade       float64
	FadeRate   float64
	GrowthRate float64
}
