package warnings

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// CallSite identifies the source location a warning is attributed to.
type CallSite struct {
	// File is the path of the originating source file.
	File string

	// Line is the line number within File.
	Line int

	// Function is the fully qualified name of the originating function.
	Function string

	// Package is the import path of the originating package.
	Package string
}

// String formats the call site as file:line.
func (s CallSite) String() string {
	if s.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// IsZero reports whether the call site carries no location.
func (s CallSite) IsZero() bool {
	return s == CallSite{}
}

// Warning is a single warning occurrence flowing through a Registry.
type Warning struct {
	// Message is the full warning text.
	Message string

	// Category classifies the warning; filters match against it.
	Category *Category

	// Origin is the call site the warning is attributed to.
	Origin CallSite

	// Time is when the warning was raised.
	Time time.Time

	// WrapWidth is a display hint: handlers rendering to fixed-width output
	// fold Message at this many columns. Zero disables folding. The hint
	// never alters Message itself, so filters and suppression keys see the
	// unfolded text.
	WrapWidth int
}

// CategoryName returns the category name, or the root name when the
// category is unset.
func (w Warning) CategoryName() string {
	if w.Category == nil {
		return Root.Name()
	}
	return w.Category.Name()
}

// Caller resolves a call site above Caller itself: Caller(1) describes the
// function invoking Caller, Caller(2) that function's caller, and so on.
// Wrapper layers use it to attribute a warning to their own caller before
// handing it to a registry.
func Caller(skip int) CallSite {
	return callerSite(skip + 1)
}

// SiteFromFrame converts a runtime frame into a call site.
func SiteFromFrame(frame runtime.Frame) CallSite {
	return CallSite{
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
		Package:  packageOf(frame.Function),
	}
}

// callerSite resolves a call site skip frames above callerSite itself:
// skip=1 is callerSite's direct caller.
func callerSite(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallSite{}
	}
	site := CallSite{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = fn.Name()
		site.Package = packageOf(fn.Name())
	}
	return site
}

// packageOf extracts the import path from a fully qualified function name,
// e.g. "github.com/acme/app/store.(*Client).Fetch" -> "github.com/acme/app/store".
func packageOf(function string) string {
	slash := strings.LastIndex(function, "/")
	dot := strings.Index(function[slash+1:], ".")
	if dot == -1 {
		return function
	}
	return function[:slash+1+dot]
}
