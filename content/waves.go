package content

import (
	"time"

	"github.com/lixenwraith/horde/component"
)

// WaveBreakpoint defines one row of the difficulty table: from At
// onward, spawns accrue at Rate per second, new enemies get HPMult
// scaled hit points, and Unlocked types join the draw set
type WaveBreakpoint struct {
	At       time.Duration
	Rate     float64
	HPMult   float64
	Unlocked []component.ZombieType
}

// DefaultWaves is the ordered breakpoint table driving the spawner
// The draw set is cumulative: every row's Unlocked adds to the pool
var DefaultWaves = []WaveBreakpoint{
	{At: 0, Rate: 1.0, HPMult: 1.0,
		Unlocked: []component.ZombieType{component.ZombieWalker}},
	{At: 60 * time.Second, Rate: 1.5, HPMult: 1.2,
		Unlocked: []component.ZombieType{component.ZombieRunner}},
	{At: 3 * time.Minute, Rate: 2.0, HPMult: 1.5,
		Unlocked: []component.ZombieType{component.ZombieSpitter}},
	{At: 5 * time.Minute, Rate: 2.5, HPMult: 1.8,
		Unlocked: []component.ZombieType{component.ZombieBomber}},
	{At: 8 * time.Minute, Rate: 3.0, HPMult: 2.2,
		Unlocked: []component.ZombieType{component.ZombieBrute}},
	{At: 10 * time.Minute, Rate: 3.5, HPMult: 2.6,
		Unlocked: []component.ZombieType{component.ZombieShaman}},
	{At: 15 * time.Minute, Rate: 5.0, HPMult: 3.5},
}
