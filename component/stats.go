package component

// StatsComponent carries base stats and multiplicative modifiers
// Modifiers default to neutral (1.0); HPRegen and Armor default to 0
type StatsComponent struct {
	MoveSpeed  float64
	BaseDamage float64
	Armor      float64

	DamageMult       float64
	FireRateMult     float64
	PickupRadiusMult float64
	XPMult           float64
	HPRegen          float64
}

// NewStats returns stats with neutral modifiers
func NewStats(moveSpeed, baseDamage, armor float64) StatsComponent {
	return StatsComponent{
		MoveSpeed:        moveSpeed,
		BaseDamage:       baseDamage,
		Armor:            armor,
		DamageMult:       1.0,
		FireRateMult:     1.0,
		PickupRadiusMult: 1.0,
		XPMult:           1.0,
	}
}
