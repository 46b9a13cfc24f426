package component

import "time"

// BuffComponent marks an entity under a temporary shaman buff
// PrevMoveSpeed/PrevDamageMult snapshot the exact pre-buff values;
// expiry writes the snapshots back verbatim
type BuffComponent struct {
	Remaining      time.Duration
	PrevMoveSpeed  float64
	PrevDamageMult float64
}
