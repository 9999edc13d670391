package warnings

import (
	"maps"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Suppression keys for the once, module and default actions. Suppression
// state lives outside the filter list, so a scoped filter override still
// sees occurrences recorded before it was installed.
type onceKey struct {
	category string
	message  string
}

type moduleKey struct {
	category string
	message  string
	pkg      string
}

type siteKey struct {
	category string
	message  string
	file     string
	line     int
}

// Registry owns a filter list, the suppression state behind the once-style
// actions, and the handler that renders emitted warnings. All methods are
// safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	filters    []Filter
	handler    Handler
	seenOnce   map[onceKey]struct{}
	seenModule map[moduleKey]struct{}
	seenSite   map[siteKey]struct{}
}

// NewRegistry creates a registry with an empty filter list (every warning
// resolves to ActionDefault) and a console handler on stderr.
func NewRegistry() *Registry {
	return &Registry{
		handler:    NewConsoleHandler(os.Stderr, !color.NoColor),
		seenOnce:   make(map[onceKey]struct{}),
		seenModule: make(map[moduleKey]struct{}),
		seenSite:   make(map[siteKey]struct{}),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Warn raises a warning with the User category, attributed to the caller.
// It returns an *Error when the warning escalates and nil otherwise.
func (r *Registry) Warn(message string) error {
	return r.warn(Warning{Message: message, Category: User}, 3)
}

// WarnCategory raises a warning with an explicit category, attributed to
// the caller.
func (r *Registry) WarnCategory(message string, category *Category) error {
	return r.warn(Warning{Message: message, Category: category}, 3)
}

// WarnExplicit raises a fully populated warning. A zero Origin is resolved
// to the caller, a zero Time becomes the current time and a nil Category
// becomes User.
func (r *Registry) WarnExplicit(w Warning) error {
	return r.warn(w, 3)
}

// warn normalizes the warning, resolves its action against the filter list
// and either suppresses, emits or escalates it. skip locates the caller for
// origin attribution.
func (r *Registry) warn(w Warning, skip int) error {
	if w.Category == nil {
		w.Category = User
	}
	if w.Origin.IsZero() {
		w.Origin = callerSite(skip)
	}
	if w.Time.IsZero() {
		w.Time = time.Now()
	}

	r.mu.Lock()
	action := r.resolveLocked(w)
	if action == ActionError {
		r.mu.Unlock()
		return NewError(w)
	}

	emit := false
	switch action {
	case ActionIgnore:
		// suppressed
	case ActionAlways:
		emit = true
	case ActionOnce:
		key := onceKey{category: w.CategoryName(), message: w.Message}
		if _, seen := r.seenOnce[key]; !seen {
			r.seenOnce[key] = struct{}{}
			emit = true
		}
	case ActionModule:
		key := moduleKey{category: w.CategoryName(), message: w.Message, pkg: w.Origin.Package}
		if _, seen := r.seenModule[key]; !seen {
			r.seenModule[key] = struct{}{}
			emit = true
		}
	default:
		key := siteKey{category: w.CategoryName(), message: w.Message, file: w.Origin.File, line: w.Origin.Line}
		if _, seen := r.seenSite[key]; !seen {
			r.seenSite[key] = struct{}{}
			emit = true
		}
	}
	handler := r.handler
	r.mu.Unlock()

	if emit && handler != nil {
		handler.HandleWarning(w)
	}
	return nil
}

// resolveLocked returns the action of the first matching filter. A warning
// no filter matches resolves to ActionDefault.
func (r *Registry) resolveLocked(w Warning) Action {
	for _, f := range r.filters {
		if f.Matches(w) {
			if f.Action == ActionUnset {
				return ActionDefault
			}
			return f.Action
		}
	}
	return ActionDefault
}

// AddFilter appends a filter to the end of the filter list.
func (r *Registry) AddFilter(f Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, f)
}

// Filters returns a copy of the current filter list in matching order.
func (r *Registry) Filters() []Filter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Filter(nil), r.filters...)
}

// ResetFilters removes every filter.
func (r *Registry) ResetFilters() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = nil
}

// SimpleFilter prepends a filter matching category (nil for every warning),
// so it takes precedence over the existing list.
func (r *Registry) SimpleFilter(action Action, category *Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append([]Filter{{Action: action, Category: category}}, r.filters...)
}

// Override prepends a filter and returns a restore function that puts the
// previous filter list back. Defer the restore so every exit path,
// including panics, restores the prior configuration. Restores must run in
// reverse order of the overrides they belong to.
func (r *Registry) Override(f Filter) (restore func()) {
	r.mu.Lock()
	prev := append([]Filter(nil), r.filters...)
	r.filters = append([]Filter{f}, r.filters...)
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			r.filters = prev
			r.mu.Unlock()
		})
	}
}

// Catch snapshots the registry's filters, handler and suppression state and
// returns a restore function putting them all back. Defer the restore
// around any block that reconfigures warnings temporarily.
func (r *Registry) Catch() (restore func()) {
	r.mu.Lock()
	filters := append([]Filter(nil), r.filters...)
	handler := r.handler
	seenOnce := maps.Clone(r.seenOnce)
	seenModule := maps.Clone(r.seenModule)
	seenSite := maps.Clone(r.seenSite)
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			r.filters = filters
			r.handler = handler
			r.seenOnce = seenOnce
			r.seenModule = seenModule
			r.seenSite = seenSite
			r.mu.Unlock()
		})
	}
}

// Record snapshots the registry like Catch, then installs a fresh Recorder
// and clears suppression state so the block observes every warning it
// triggers. The restore function puts the previous configuration back.
func (r *Registry) Record() (*Recorder, func()) {
	restore := r.Catch()
	rec := NewRecorder()
	r.mu.Lock()
	r.handler = rec
	r.seenOnce = make(map[onceKey]struct{})
	r.seenModule = make(map[moduleKey]struct{})
	r.seenSite = make(map[siteKey]struct{})
	r.mu.Unlock()
	return rec, restore
}

// SetHandler replaces the handler that receives emitted warnings.
func (r *Registry) SetHandler(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = h
}

// Reset removes every filter and clears the suppression registries. The
// handler is kept.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = nil
	r.seenOnce = make(map[onceKey]struct{})
	r.seenModule = make(map[moduleKey]struct{})
	r.seenSite = make(map[siteKey]struct{})
}

// Convenience functions operating on the default registry.

// Warn raises a warning with the User category on the default registry.
func Warn(message string) error {
	return Default().warn(Warning{Message: message, Category: User}, 3)
}

// WarnCategory raises a warning with an explicit category on the default
// registry.
func WarnCategory(message string, category *Category) error {
	return Default().warn(Warning{Message: message, Category: category}, 3)
}

// WarnExplicit raises a fully populated warning on the default registry.
func WarnExplicit(w Warning) error {
	return Default().warn(w, 3)
}

// AddFilter appends a filter to the default registry.
func AddFilter(f Filter) {
	Default().AddFilter(f)
}

// SimpleFilter prepends a category filter to the default registry.
func SimpleFilter(action Action, category *Category) {
	Default().SimpleFilter(action, category)
}

// ResetFilters removes every filter from the default registry.
func ResetFilters() {
	Default().ResetFilters()
}

// Reset clears the default registry's filters and suppression state.
func Reset() {
	Default().Reset()
}

// Override prepends a filter to the default registry and returns its
// restore function.
func Override(f Filter) (restore func()) {
	return Default().Override(f)
}

// Catch snapshots the default registry and returns its restore function.
func Catch() (restore func()) {
	return Default().Catch()
}

// Record installs a fresh Recorder on the default registry.
func Record() (*Recorder, func()) {
	return Default().Record()
}

// SetHandler replaces the default registry's handler.
func SetHandler(h Handler) {
	Default().SetHandler(h)
}
