package deprecated

import "fmt"

// Kind selects the message template an annotation uses. The set is closed:
// every wrapper constructor states its kind at wrap time instead of
// inspecting the wrapped value on each call.
type Kind int

const (
	// KindFunction marks a plain function or standalone routine.
	KindFunction Kind = iota

	// KindMethod marks a method bound to an instance.
	KindMethod

	// KindClassMethod marks a method bound to a type rather than an
	// instance, such as a factory helper.
	KindClassMethod

	// KindClass marks a type whose construction is deprecated.
	KindClass
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindClassMethod:
		return "class method"
	case KindClass:
		return "class"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Target identifies the deprecated entity: the name shown in the warning
// and the kind deciding its template.
type Target struct {
	// Name is the entity name as it should appear in the warning text.
	Name string

	// Kind selects the message template.
	Kind Kind
}
