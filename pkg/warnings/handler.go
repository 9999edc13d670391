package warnings

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Handler consumes the warnings a registry decided to emit.
type Handler interface {
	// HandleWarning renders or records a single warning.
	HandleWarning(w Warning)
}

// ConsoleHandler writes warnings to a writer as "file:line: Category:
// message", color-coding the category when colors are enabled.
type ConsoleHandler struct {
	mu     sync.Mutex
	writer io.Writer
	colors bool
}

// NewConsoleHandler creates a handler writing to w. Pass colors=false for
// plain output (pipes, log files).
func NewConsoleHandler(w io.Writer, colors bool) *ConsoleHandler {
	return &ConsoleHandler{writer: w, colors: colors}
}

// HandleWarning writes the warning as a single entry, folding the message
// at the warning's WrapWidth when set.
func (h *ConsoleHandler) HandleWarning(w Warning) {
	label := w.CategoryName()
	if h.colors {
		label = color.New(color.FgYellow, color.Bold).Sprint(label)
	}
	text := w.Message
	if w.WrapWidth > 0 {
		text = foldText(text, w.WrapWidth)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.writer, "%s: %s: %s\n", w.Origin, label, text)
}

// foldText folds text at limit display columns, indenting continuation
// lines. Widths are measured in terminal columns, not bytes, so wide runes
// count correctly.
func foldText(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}
	var b strings.Builder
	b.WriteString(words[0])
	lineWidth := runewidth.StringWidth(words[0])
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if lineWidth+1+w > limit {
			b.WriteString("\n    ")
			b.WriteString(word)
			lineWidth = 4 + w
			continue
		}
		b.WriteByte(' ')
		b.WriteString(word)
		lineWidth += 1 + w
	}
	return b.String()
}

// LogHandler routes warnings to a structured logger at warn level.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a handler logging through logger. A nil logger uses
// slog.Default.
func NewLogHandler(logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{logger: logger}
}

// HandleWarning logs the warning with its category and origin as attributes.
func (h *LogHandler) HandleWarning(w Warning) {
	h.logger.Warn(w.Message,
		slog.String("category", w.CategoryName()),
		slog.String("file", w.Origin.File),
		slog.Int("line", w.Origin.Line),
		slog.String("package", w.Origin.Package),
	)
}

// Recorder collects emitted warnings in memory. Tests install one through
// Registry.Record and assert on what was captured.
type Recorder struct {
	mu       sync.Mutex
	warnings []Warning
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleWarning appends the warning to the recorded list.
func (r *Recorder) HandleWarning(w Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

// Warnings returns a copy of every recorded warning in emission order.
func (r *Recorder) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Warning(nil), r.warnings...)
}

// Len returns the number of recorded warnings.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.warnings)
}

// Last returns the most recently recorded warning.
func (r *Recorder) Last() (Warning, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.warnings) == 0 {
		return Warning{}, false
	}
	return r.warnings[len(r.warnings)-1], true
}

// Reset discards every recorded warning.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = nil
}
