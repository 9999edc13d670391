package deprecated

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/commit0-lite-test/deprecated/pkg/warnings"
)

// Func returns a drop-in replacement for fn that raises the deprecation
// warning before every call and then delegates with arguments and results
// untouched. The signature is preserved exactly, variadic functions
// included. Func panics at wrap time when fn is not a function or the
// options are invalid; the returned function panics with the escalation
// error when the action resolves to error, leaving fn uncalled.
func Func[F any](name string, fn F, opts ...Option) F {
	return wrap(New(Target{Name: name, Kind: KindFunction}, opts...), fn)
}

// Method returns a drop-in replacement for a method value or method
// expression that raises the method-deprecation warning before every call.
func Method[F any](name string, fn F, opts ...Option) F {
	return wrap(New(Target{Name: name, Kind: KindMethod}, opts...), fn)
}

// ClassMethod returns a drop-in replacement for a function bound to a type
// rather than an instance, such as a factory helper hanging off the type.
func ClassMethod[F any](name string, fn F, opts ...Option) F {
	return wrap(New(Target{Name: name, Kind: KindClassMethod}, opts...), fn)
}

// Constructor returns a drop-in replacement for a constructor of typeName.
// The class-deprecation warning is raised once per wrapped type for the
// lifetime of the process, however many goroutines construct concurrently.
// An escalating action is not subject to the once gate and fails every
// construction.
func Constructor[F any](typeName string, ctor F, opts ...Option) F {
	return wrap(New(Target{Name: typeName, Kind: KindClass}, opts...), ctor)
}

// wrap builds the reflect wrapper delegating to fn after the annotation's
// warning is dispatched.
func wrap[F any](a *Annotator, fn F) F {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("deprecated: %s: target is %s, not a function", a.target.Name, fv.Kind()))
	}
	if fv.IsNil() {
		panic(fmt.Sprintf("deprecated: %s: target function is nil", a.target.Name))
	}
	ft := fv.Type()
	wrapped := reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		if err := a.warn(wrapperOrigin()); err != nil {
			panic(err)
		}
		if ft.IsVariadic() {
			return fv.CallSlice(args)
		}
		return fv.Call(args)
	})
	return wrapped.Interface().(F)
}

// wrapperOrigin attributes a warning raised inside a reflect-built wrapper
// to the caller of the wrapped value, stepping over the reflect stubs and
// this package's own frames sitting between them.
func wrapperOrigin() warnings.CallSite {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !isWrapperFrame(frame.Function) {
			return warnings.SiteFromFrame(frame)
		}
		if !more {
			return warnings.CallSite{}
		}
	}
}

// isWrapperFrame reports whether a frame belongs to the wrapper plumbing
// rather than to the code that called the wrapped value.
func isWrapperFrame(function string) bool {
	if strings.HasPrefix(function, "reflect.") {
		return true
	}
	return strings.Contains(function, "/pkg/deprecated.wrap")
}
