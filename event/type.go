package event

// EventType identifies a game event
type EventType uint16

const (
	EventNone EventType = iota
	EventEntityDied
	EventBossDefeated
	EventPickupCollected
	EventWaveAdvanced
	EventPlayerDied
)

// GameEvent is the unit routed from producers to handler systems
// Frame records the tick on which the event was pushed
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// Handler is implemented by systems that consume routed events
// EventTypes is read once at registration; HandleEvent runs on the
// simulation goroutine before systems update
type Handler interface {
	EventTypes() []EventType
	HandleEvent(ev GameEvent)
}
