// Package game wires the content registries, save layer, shop, effect
// resolver, and optional backend into a playable session.
package game

// State represents what the session is currently doing.
type State int

const (
	// StateIdle is the default between-runs state (menus, shop).
	StateIdle State = iota
	// StateLevel is an active campaign or endless run.
	StateLevel
	// StateBossFight is an active boss encounter.
	StateBossFight
	// StateError is entered when a critical error is broadcast; the
	// player is offered the recovery action from the error table.
	StateError
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLevel:
		return "level"
	case StateBossFight:
		return "boss_fight"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
