package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: zapcore.InfoLevel})
	l.Debug("hidden")
	l.Infof("move to %v", "e4")
	if err := l.Sync(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("%d lines logged, want 1:\n%s", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["MESSAGE"] != "move to e4" || entry["LEVEL"] != "info" {
		t.Errorf("entry %v", entry)
	}
	if _, ok := entry["CALLER"]; !ok {
		t.Error("caller missing")
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Level: zapcore.DebugLevel}).Named("tui").Warn("resize")
	if !strings.Contains(buf.String(), `"NAME":"tui"`) {
		t.Errorf("name missing: %s", buf.String())
	}
}

func TestLevelFromString(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNop(t *testing.T) {
	var l Logger = NewNop()
	l.Errorf("nothing %d", 1)
	if err := l.Sync(); err != nil {
		t.Error(err)
	}
}
