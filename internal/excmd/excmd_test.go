package excmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"w", []string{"w"}},
		{"w  out.txt", []string{"w", "out.txt"}},
		{" e a b ", []string{"e", "a", "b"}},
		{"a b c d e f", []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.in), "%q", tt.in)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		path string
		line int
	}{
		{":w", KindWrite, "", 0},
		{":w out.txt", KindWrite, "out.txt", 0},
		{"w out.txt", KindWrite, "out.txt", 0},
		{":find main.go", KindEdit, "main.go", 0},
		{":e  main.go", KindEdit, "main.go", 0},
		{":e", KindEdit, "", 0},
		{":q", KindQuit, "", 0},
		{":wq", KindWriteQuit, "", 0},
		{":wq new.txt", KindWriteQuit, "new.txt", 0},
		{":close", KindClose, "", 0},
		{":42", KindGoto, "", 42},
		{":0", KindGoto, "", 0},
		{":7abc", KindGoto, "", 7},
		{":99999999999999", KindGoto, "", maxLine},
		{":", KindNone, "", 0},
		{":   ", KindNone, "", 0},
		{":set nu", KindUnknown, "nu", 0},
		{":W", KindUnknown, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := Parse(tt.in)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.path, c.Path())
			assert.Equal(t, tt.line, c.Line)
		})
	}
}

func TestParseTruncatesLongLines(t *testing.T) {
	c := Parse(":w " + strings.Repeat("x", 1000))
	assert.Equal(t, KindWrite, c.Kind)
	assert.Len(t, c.Path(), MaxLength-2)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "write", KindWrite.String())
	assert.Equal(t, "goto", KindGoto.String())
	assert.Equal(t, "invalid", Kind(200).String())
}
