// Package gameerr classifies runtime errors and maps each category to a
// fixed user-facing message and recovery action. Critical errors are
// additionally broadcast so the session can route to a failure state;
// everything else is logged and play continues.
package gameerr

import "fmt"

// Category groups errors by where they came from.
type Category int

const (
	// CategoryAsset covers content loading failures.
	CategoryAsset Category = iota
	// CategoryNetwork covers backend and leaderboard failures.
	CategoryNetwork
	// CategorySave covers persistence failures.
	CategorySave
	// CategoryValidation covers rejected external input.
	CategoryValidation
	// CategoryInit covers startup failures.
	CategoryInit
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAsset:
		return "asset"
	case CategoryNetwork:
		return "network"
	case CategorySave:
		return "save"
	case CategoryValidation:
		return "validation"
	case CategoryInit:
		return "init"
	default:
		return "unknown"
	}
}

// Severity ranks how much an error disrupts play.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Action is the recovery the player is offered.
type Action int

const (
	ActionRetry Action = iota
	ActionContinue
	ActionResetSave
	ActionRestart
	ActionFallback
	ActionIgnore
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionRetry:
		return "retry"
	case ActionContinue:
		return "continue"
	case ActionResetSave:
		return "reset_save"
	case ActionRestart:
		return "restart"
	case ActionFallback:
		return "fallback"
	case ActionIgnore:
		return "ignore"
	default:
		return "unknown"
	}
}

// recovery is the fixed category -> user-facing message / action table.
var recovery = map[Category]struct {
	Message string
	Action  Action
}{
	CategoryAsset:      {"Some content failed to load.", ActionRetry},
	CategoryNetwork:    {"Online features are unavailable right now.", ActionIgnore},
	CategorySave:       {"Your progress could not be saved.", ActionResetSave},
	CategoryValidation: {"That data could not be accepted.", ActionContinue},
	CategoryInit:       {"The game failed to start.", ActionRestart},
}

// RecoveryFor returns the user-facing message and recovery action for a
// category.
func RecoveryFor(c Category) (message string, action Action) {
	r, ok := recovery[c]
	if !ok {
		return "Something went wrong.", ActionContinue
	}
	return r.Message, r.Action
}

// Error is a classified error wrapping its cause.
type Error struct {
	Category Category
	Severity Severity
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Category, e.Severity, e.Err)
}

// Unwrap exposes the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Critical escalates the error's severity and returns it for chaining.
func (e *Error) Critical() *Error {
	e.Severity = SeverityCritical
	return e
}

// Asset classifies a content loading failure.
func Asset(err error) *Error {
	return &Error{Category: CategoryAsset, Severity: SeverityError, Err: err}
}

// Network classifies a backend failure. Optional features degrade, so
// these start as warnings.
func Network(err error) *Error {
	return &Error{Category: CategoryNetwork, Severity: SeverityWarning, Err: err}
}

// Save classifies a persistence failure.
func Save(err error) *Error {
	return &Error{Category: CategorySave, Severity: SeverityError, Err: err}
}

// Validation classifies rejected external input.
func Validation(err error) *Error {
	return &Error{Category: CategoryValidation, Severity: SeverityWarning, Err: err}
}

// Init classifies a startup failure; these are critical by default.
func Init(err error) *Error {
	return &Error{Category: CategoryInit, Severity: SeverityCritical, Err: err}
}
