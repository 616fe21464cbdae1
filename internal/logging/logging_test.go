package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{Level: level, Output: &buf, Prefix: "test"})
	l.sink.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"Warning", LevelWarn, true},
		{"error", LevelError, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; expected %v, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestLineFormat(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.Info("opened %s", "a.txt")

	want := "2024-01-02T03:04:05.000 [INFO] test: opened a.txt\n"
	if buf.String() != want {
		t.Errorf("got %q, expected %q", buf.String(), want)
	}
}

func TestLevelFilter(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("expected debug output after SetLevel")
	}
}

func TestFieldsSortedAndShared(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	child := l.WithComponent("editor").WithField("pane", 2)
	child.Info("split")

	if !strings.HasSuffix(buf.String(), "split {component=editor, pane=2}\n") {
		t.Errorf("unexpected line %q", buf.String())
	}

	l.SetLevel(LevelError)
	buf.Reset()
	child.Info("hidden")
	if buf.Len() != 0 {
		t.Error("derived logger should follow the parent's level")
	}
}

func TestNull(t *testing.T) {
	l := Null()
	l.Error("nothing")
	l.WithField("k", "v").Error("nothing")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shin.log")
	w, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer w.Close()

	l := New(Config{Level: LevelInfo, Output: w})
	l.Info("hello")
}
