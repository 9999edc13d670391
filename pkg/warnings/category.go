package warnings

// Category classifies a warning. Categories form a single-parent hierarchy;
// a filter constrained to a category also matches every category derived
// from it.
type Category struct {
	name   string
	parent *Category
}

// Built-in categories. Root is the ancestor of every category; the others
// derive directly from it.
var (
	// Root matches every warning when used in a filter.
	Root = &Category{name: "Warning"}

	// User is the category for warnings raised directly by application code.
	User = NewCategory("UserWarning", Root)

	// Deprecation marks features scheduled for removal. It is the default
	// category for deprecation annotators.
	Deprecation = NewCategory("DeprecationWarning", Root)

	// PendingDeprecation marks features that will become deprecated in a
	// future release.
	PendingDeprecation = NewCategory("PendingDeprecationWarning", Root)

	// Future marks behavior that will change in a future release.
	Future = NewCategory("FutureWarning", Root)
)

// NewCategory creates a category derived from parent. A nil parent derives
// the category from Root.
func NewCategory(name string, parent *Category) *Category {
	if parent == nil {
		parent = Root
	}
	return &Category{name: name, parent: parent}
}

// Name returns the category name as it appears in emitted warnings.
func (c *Category) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Parent returns the category this one derives from, or nil for Root.
func (c *Category) Parent() *Category {
	if c == nil {
		return nil
	}
	return c.parent
}

// Is reports whether c is other or derives from other.
func (c *Category) Is(other *Category) bool {
	if other == nil {
		return false
	}
	for cur := c; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}
