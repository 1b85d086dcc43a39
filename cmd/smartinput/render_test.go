package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"smart-task-input/internal/smartinput"
	"smart-task-input/internal/smartinput/usecase"
	"smart-task-input/pkg/log"
)

func parseForTest(t *testing.T, text string) smartinput.ParseOutput {
	t.Helper()
	uc, err := usecase.New(log.NewNop(), usecase.Options{Notes: true})
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}
	out, err := uc.Parse(context.Background(), smartinput.ParseInput{
		Text:          text,
		ReferenceTime: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return out
}

func TestRenderPretty(t *testing.T) {
	text := "Fix bug tomorrow 3pm #backend @urgent p1"
	out := parseForTest(t, text)

	var buf bytes.Buffer
	if err := newRenderer(false).render(&buf, text, out); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")

	if lines[0] != text {
		t.Errorf("first line = %q, want input", lines[0])
	}
	wantMarks := "        ^^^^^^^^ ^^^ ^^^^^^^^ ^^^^^^^ ^^"
	if lines[1] != wantMarks {
		t.Errorf("marker row =\n%q\nwant\n%q", lines[1], wantMarks)
	}
	for _, want := range []string{
		"  title     Fix bug",
		"  date      2025-01-16 Thu",
		"  time      15:00",
		"  project   #backend",
		"  label     @urgent",
		"  priority  p1",
	} {
		if !strings.Contains(buf.String(), want+"\n") {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("color disabled but output has escape codes")
	}
}

func TestRenderPretty_TabsKeepMarkersAligned(t *testing.T) {
	text := "Fix\tbug\ttomorrow"
	out := parseForTest(t, text)

	var buf bytes.Buffer
	if err := newRenderer(false).render(&buf, text, out); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[1] != "   \t   \t^^^^^^^^" {
		t.Errorf("marker row = %q", lines[1])
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		in   string
		mark string
		want string
	}{
		{in: "abc", mark: "^", want: "^^^"},
		{in: "a\tb", mark: " ", want: " \t "},
		{in: "修", mark: "^", want: "^^"},
		{in: "", mark: "^", want: ""},
	}
	for _, tt := range tests {
		if got := underline(tt.in, tt.mark); got != tt.want {
			t.Errorf("underline(%q, %q) = %q, want %q", tt.in, tt.mark, got, tt.want)
		}
	}
}

func TestRenderPretty_WideRunes(t *testing.T) {
	text := "修理 tomorrow"
	out := parseForTest(t, text)

	var buf bytes.Buffer
	if err := newRenderer(false).render(&buf, text, out); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	// Two double-width runes plus a space.
	if lines[1] != "     ^^^^^^^^" {
		t.Errorf("marker row = %q", lines[1])
	}
}

func TestRenderPretty_Flags(t *testing.T) {
	text := "next monday #x @y"
	out := parseForTest(t, text)

	var buf bytes.Buffer
	_ = newRenderer(false).render(&buf, text, out)
	if !strings.Contains(buf.String(), "nothing left for a title") {
		t.Errorf("fallback title not flagged:\n%s", buf.String())
	}

	buf.Reset()
	_ = newRenderer(false).render(&buf, "Standup 9am", parseForTest(t, "Standup 9am"))
	if !strings.Contains(buf.String(), "(today, no date given)") {
		t.Errorf("defaulted date not flagged:\n%s", buf.String())
	}
}

func TestRenderPretty_Color(t *testing.T) {
	text := "Call mom tomorrow"
	var buf bytes.Buffer
	if err := newRenderer(true).render(&buf, text, parseForTest(t, text)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("color enabled but output has no escape codes: %q", buf.String())
	}
}

func TestEmitters(t *testing.T) {
	text := "Email Sam friday // invoice"
	out := parseForTest(t, text)

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		emit, err := newEmitter("json", &buf, false)
		if err != nil {
			t.Fatalf("newEmitter: %v", err)
		}
		if err := emit(text, out); err != nil {
			t.Fatalf("emit: %v", err)
		}

		var got linePayload
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Title != "Email Sam" || got.Date != "2025-01-17" || got.Notes != "invoice" || len(got.Spans) != 2 {
			t.Errorf("unexpected payload: %+v", got)
		}
	})

	t.Run("MessagePack", func(t *testing.T) {
		var buf bytes.Buffer
		emit, err := newEmitter("msgpack", &buf, false)
		if err != nil {
			t.Fatalf("newEmitter: %v", err)
		}
		if err := emit(text, out); err != nil {
			t.Fatalf("emit: %v", err)
		}

		var got map[string]any
		if err := msgpack.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got["title"] != "Email Sam" || got["input"] != text {
			t.Errorf("unexpected payload: %v", got)
		}
		if _, ok := got["time"]; ok {
			t.Errorf("absent time should be omitted: %v", got)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, err := newEmitter("yaml", &bytes.Buffer{}, false); err == nil {
			t.Errorf("expected error for unknown format")
		}
	})
}

func TestParseCommand_Stdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"parse", "--format", "json", "--timezone", "UTC", "--now", "2025-01-15T12:00:00Z"})
	rootCmd.SetIn(strings.NewReader("Buy milk today\n\nWater plants #home\n"))
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	dec := json.NewDecoder(&out)
	var lines []linePayload
	for dec.More() {
		var p linePayload
		if err := dec.Decode(&p); err != nil {
			t.Fatalf("decode: %v", err)
		}
		lines = append(lines, p)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 parsed lines, got %d: %s", len(lines), out.String())
	}
	if lines[0].Title != "Buy milk" || lines[0].Date != "2025-01-15" {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Title != "Water plants" || lines[1].Project != "home" {
		t.Errorf("line 1 = %+v", lines[1])
	}
}
