package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestStyleFromAttrsDefaults(t *testing.T) {
	style := StyleFromAttrs(nil)
	if style != DefaultStyle() {
		t.Fatalf("expected defaults, got %#v", style)
	}
	style = StyleFromAttrs(map[string]string{"color": "red", "font-size": "12px"})
	if style.Color != "red" || style.FontSize != "12px" || style.FontFamily != "monospace" {
		t.Fatalf("unexpected style %#v", style)
	}
}

func TestTerminalSinkPlain(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, Style{Color: "red"}, true)
	sink.Emit("hello")
	if buf.String() != "hello\n" {
		t.Fatalf("plain sink must not decorate, got %q", buf.String())
	}
}

func TestTerminalSinkUnknownColorFallsBack(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, Style{Color: "chartreuse"}, false)
	sink.Emit("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("line lost: %q", buf.String())
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("unknown color must not emit escape codes: %q", buf.String())
	}
}

func TestBufferSinkCollectsLines(t *testing.T) {
	sink := &BufferSink{}
	sink.Emit("a")
	sink.Emit("b")
	if len(sink.Lines) != 2 || sink.Lines[1] != "b" {
		t.Fatalf("unexpected buffer contents %#v", sink.Lines)
	}
}

func TestStaticSourceYieldsDefault(t *testing.T) {
	if got := (StaticSource{}).Request("Name?", "anon"); got != "anon" {
		t.Fatalf("unexpected answer %q", got)
	}
}

func TestScriptedSourceReplaysThenFallsBack(t *testing.T) {
	src := &ScriptedSource{Answers: []string{"one"}}
	if got := src.Request("?", "d"); got != "one" {
		t.Fatalf("unexpected first answer %q", got)
	}
	if got := src.Request("?", "d"); got != "d" {
		t.Fatalf("expected fallback after answers ran out, got %q", got)
	}
}
