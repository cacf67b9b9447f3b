package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Out: &buf, App: "edd-calculator"})

	l.Info("hidden", nil)
	l.Warn("history write failed", map[string]any{"kind": "lmp", "error": errors.New("boom now")})

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	for _, want := range []string{"app=edd-calculator", "kind=lmp", `error="boom now"`, "level=warn", `msg="history write failed"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Out: &buf}).
		With(map[string]any{"request_id": "abc"})

	l.Debug("calculated", map[string]any{"kind": "reconcile"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line: %v (%s)", err, buf.String())
	}
	if entry["request_id"] != "abc" || entry["kind"] != "reconcile" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNop_WritesNothing(t *testing.T) {
	Nop().Error("ignored", map[string]any{"x": 1})
}
