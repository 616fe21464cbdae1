package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "visual", Visual.String())
	assert.Equal(t, "command", Command.String())
	assert.Equal(t, "unknown", Mode(42).String())
	assert.Equal(t, "INSERT", Insert.DisplayName())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"normal", Normal, true},
		{"N", Normal, true},
		{" insert ", Insert, true},
		{"v", Visual, true},
		{"cmdline", Command, true},
		{"replace", Normal, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCursorStyle(t *testing.T) {
	assert.Equal(t, CursorBlock, Normal.CursorStyle())
	assert.Equal(t, CursorBar, Insert.CursorStyle())
	assert.Equal(t, CursorBar, Command.CursorStyle())
	assert.Equal(t, CursorUnderline, Visual.CursorStyle())
	assert.Equal(t, "bar", CursorBar.String())
}
