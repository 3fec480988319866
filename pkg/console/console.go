// Package console provides the marl interpreter's output sink and
// input source. Styling is resolved once per run from the document's
// root attributes; the evaluator itself never sees it.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Style is the process-wide presentation configuration read from the
// root element. Font settings have no terminal rendering but are kept
// so alternative sinks can honour them.
type Style struct {
	Color      string
	FontFamily string
	FontSize   string
}

// DefaultStyle mirrors the defaults applied when the root element
// carries no presentation attributes.
func DefaultStyle() Style {
	return Style{Color: "black", FontFamily: "monospace", FontSize: "16px"}
}

// StyleFromAttrs builds a Style from root-element attributes, filling
// in defaults for absent keys.
func StyleFromAttrs(attrs map[string]string) Style {
	style := DefaultStyle()
	if attrs == nil {
		return style
	}
	if v, ok := attrs["color"]; ok && v != "" {
		style.Color = v
	}
	if v, ok := attrs["font-family"]; ok && v != "" {
		style.FontFamily = v
	}
	if v, ok := attrs["font-size"]; ok && v != "" {
		style.FontSize = v
	}
	return style
}

// Sink receives finished output lines.
type Sink interface {
	Emit(line string)
}

// TerminalSink writes styled lines to a writer, mapping the configured
// color name to an ANSI attribute. Unknown colors fall back to the
// terminal default.
type TerminalSink struct {
	w       io.Writer
	printer *color.Color
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// NewTerminalSink builds a sink for the given style. Pass plain=true to
// suppress coloring regardless of the style.
func NewTerminalSink(w io.Writer, style Style, plain bool) *TerminalSink {
	sink := &TerminalSink{w: w}
	if plain {
		return sink
	}
	if attr, ok := colorNames[strings.ToLower(style.Color)]; ok {
		sink.printer = color.New(attr)
	}
	return sink
}

func (s *TerminalSink) Emit(line string) {
	if s.printer != nil {
		s.printer.Fprintln(s.w, line)
		return
	}
	fmt.Fprintln(s.w, line)
}

// BufferSink collects emitted lines, for tests and embedding.
type BufferSink struct {
	Lines []string
}

func (s *BufferSink) Emit(line string) {
	s.Lines = append(s.Lines, line)
}
