package deprecated

import (
	"fmt"
	"sync"

	"github.com/commit0-lite-test/deprecated/pkg/warnings"
)

// Annotator carries one deprecation mark: the target description, the
// frozen configuration and, for class targets, the once-per-type state
// cell. The wrapper constructors in this package build one per wrapped
// value; code that cannot wrap (exported variables, interfaces) can hold
// an Annotator directly and call Warn at the top of the deprecated path.
type Annotator struct {
	target Target
	cfg    Config
	gate   *warnGate
}

// warnGate is the once-per-type state cell owned by class annotations. The
// flag latches only after a successful dispatch, so an escalating
// annotation keeps escalating on every construction.
type warnGate struct {
	mu     sync.Mutex
	warned bool
}

// New builds an annotator for target. It panics when the options carry an
// invalid action: a bad action is a configuration mistake and surfaces
// where the annotation is declared, not on first call.
func New(target Target, opts ...Option) *Annotator {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Action.Validate(); err != nil {
		panic(fmt.Sprintf("deprecated: %s: %v", target.Name, err))
	}
	if cfg.Category == nil {
		cfg.Category = warnings.Deprecation
	}
	if cfg.LineLength == 0 {
		cfg.LineLength = DefaultLineLength
	}
	a := &Annotator{target: target, cfg: cfg}
	if target.Kind == KindClass {
		a.gate = &warnGate{}
	}
	return a
}

// Target returns the annotated target.
func (a *Annotator) Target() Target {
	return a.target
}

// Message returns the warning text this annotation emits.
func (a *Annotator) Message() string {
	return buildMessage(a.cfg, a.target)
}

// Warn raises the deprecation warning, attributed to Warn's caller. It
// returns a *warnings.Error when the configured action escalates and nil
// otherwise. Call it before running the deprecated logic so the warning
// precedes the work it describes.
func (a *Annotator) Warn() error {
	return a.warn(warnings.Caller(2))
}

// warn dispatches one warning with its origin already resolved. Class
// annotations pass through the gate so the warning is raised once per
// type, however many goroutines race on the first construction.
func (a *Annotator) warn(origin warnings.CallSite) error {
	if a.gate != nil {
		a.gate.mu.Lock()
		defer a.gate.mu.Unlock()
		if a.gate.warned {
			return nil
		}
		if err := a.dispatch(origin); err != nil {
			return err
		}
		a.gate.warned = true
		return nil
	}
	return a.dispatch(origin)
}

// dispatch runs one emission. A configured action is applied as a scoped
// filter override covering exactly this emission; the deferred restore
// puts the previous filter list back on every exit path.
func (a *Annotator) dispatch(origin warnings.CallSite) error {
	registry := a.cfg.Registry
	if registry == nil {
		registry = warnings.Default()
	}
	if a.cfg.Action != warnings.ActionUnset {
		defer registry.Override(warnings.Filter{Action: a.cfg.Action, Category: a.cfg.Category})()
	}
	wrapWidth := a.cfg.LineLength
	if wrapWidth < 0 {
		wrapWidth = 0
	}
	return registry.WarnExplicit(warnings.Warning{
		Message:   a.Message(),
		Category:  a.cfg.Category,
		Origin:    origin,
		WrapWidth: wrapWidth,
	})
}
