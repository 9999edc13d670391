package warnings

import "fmt"

// Action selects how a registry disposes of a warning once a filter matches
// it.
type Action int

const (
	// ActionUnset defers the decision to the ambient filter list. It is the
	// zero value so an unconfigured annotation inherits the ambient
	// behavior.
	ActionUnset Action = iota

	// ActionError escalates the warning into an error instead of emitting
	// it.
	ActionError

	// ActionIgnore suppresses the warning entirely.
	ActionIgnore

	// ActionAlways emits the warning on every occurrence.
	ActionAlways

	// ActionDefault emits the warning once per originating call site.
	ActionDefault

	// ActionModule emits the warning once per originating package.
	ActionModule

	// ActionOnce emits the warning once per process.
	ActionOnce
)

// ActionNames lists the textual names accepted by ParseAction.
var ActionNames = []string{"error", "ignore", "always", "default", "module", "once"}

// ParseAction converts a textual action name into an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "error":
		return ActionError, nil
	case "ignore":
		return ActionIgnore, nil
	case "always":
		return ActionAlways, nil
	case "default":
		return ActionDefault, nil
	case "module":
		return ActionModule, nil
	case "once":
		return ActionOnce, nil
	}
	return ActionUnset, fmt.Errorf("unknown warning action %q (valid actions: error, ignore, always, default, module, once)", s)
}

// String returns the textual name of the action.
func (a Action) String() string {
	switch a {
	case ActionUnset:
		return "unset"
	case ActionError:
		return "error"
	case ActionIgnore:
		return "ignore"
	case ActionAlways:
		return "always"
	case ActionDefault:
		return "default"
	case ActionModule:
		return "module"
	case ActionOnce:
		return "once"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Validate returns an error when a is not one of the defined actions.
// ActionUnset is valid: it means "no override".
func (a Action) Validate() error {
	if a < ActionUnset || a > ActionOnce {
		return fmt.Errorf("invalid warning action %d", int(a))
	}
	return nil
}
