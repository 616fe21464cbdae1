package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type text string

func (s text) Len() int            { return len(s) }
func (s text) ByteAt(off int) byte { return s[off] }

func TestNextPrevClamp(t *testing.T) {
	s := text("ab")
	assert.Equal(t, 1, Next(s, 0))
	assert.Equal(t, 2, Next(s, 2))
	assert.Equal(t, 2, Next(s, 10))
	assert.Equal(t, 0, Prev(s, 0))
	assert.Equal(t, 0, Prev(s, -4))
	assert.Equal(t, 1, Prev(s, 2))
	assert.Equal(t, 2, Clamp(s, 5))
}

func TestLineBoundaries(t *testing.T) {
	s := text("abc\ndef\n\nghi")
	tests := []struct {
		off, start, end int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{3, 0, 3},
		{4, 4, 7},
		{5, 4, 7},
		{7, 4, 7},
		{8, 8, 8},
		{9, 9, 12},
		{12, 9, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.start, LineStart(s, tt.off), "LineStart(%d)", tt.off)
		assert.Equal(t, tt.end, LineEnd(s, tt.off), "LineEnd(%d)", tt.off)
		assert.Equal(t, tt.off-tt.start, Column(s, tt.off), "Column(%d)", tt.off)
		assert.Equal(t, tt.end-tt.start, LineLength(s, tt.off), "LineLength(%d)", tt.off)
	}
}

func TestLineStartAtZero(t *testing.T) {
	assert.Equal(t, 0, LineStart(text("\nabc"), 0))
	assert.Equal(t, 1, LineStart(text("\nabc"), 1))
	assert.Equal(t, 0, LineStart(text(""), 0))
}

func TestComposedLineMotions(t *testing.T) {
	s := text("abc\ndef\n\nghi")
	assert.Equal(t, 4, NextLineStart(s, 1))
	assert.Equal(t, 12, NextLineStart(s, 10))
	assert.Equal(t, 3, PrevLineEnd(s, 5))
	assert.Equal(t, 0, PrevLineEnd(s, 1))
	assert.Equal(t, 0, PrevLineStart(s, 5))
	assert.Equal(t, 4, PrevLineStart(s, 8))
	assert.Equal(t, 7, NextLineEnd(s, 0))
	assert.Equal(t, 8, NextLineEnd(s, 5))
	assert.True(t, IsLastLine(s, 10))
	assert.False(t, IsLastLine(s, 8))
}

func TestTrailingNewline(t *testing.T) {
	s := text("ab\n")
	assert.Equal(t, 3, NextLineStart(s, 0))
	assert.Equal(t, 3, LineStart(s, 3))
	assert.Equal(t, 3, LineEnd(s, 3))
	assert.Equal(t, 2, LineCount(s))
}

func TestFirstNonBlank(t *testing.T) {
	s := text("  \tfoo\n   \nx")
	assert.Equal(t, 3, FirstNonBlank(s, 5))
	assert.Equal(t, 10, FirstNonBlank(s, 8))
	assert.Equal(t, 11, FirstNonBlank(s, 11))
}

func TestVerticalMotionKeepsColumn(t *testing.T) {
	s := text("0123456789ab\nxyzvw\n\nlast line here")
	tests := []struct {
		name     string
		move     func(Text, int) int
		off, out int
	}{
		{"down clamps to shorter line", Down, 10, 18},
		{"down same column", Down, 2, 15},
		{"down into empty line", Down, 15, 19},
		{"down out of empty line", Down, 19, 20},
		{"down on last line stays", Down, 25, 25},
		{"up into empty line", Up, 30, 19},
		{"up from empty line", Up, 19, 13},
		{"up on first line stays", Up, 4, 4},
		{"up keeps column", Up, 16, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, tt.move(s, tt.off))
		})
	}
}

func TestDownOntoTrailingEmptyLine(t *testing.T) {
	s := text("abc\n")
	assert.Equal(t, 4, Down(s, 2))
	assert.Equal(t, 4, Down(s, 4))
	assert.Equal(t, 0, Up(s, 4))
}

func TestLineNumbers(t *testing.T) {
	s := text("a\nbb\nccc\n")
	assert.Equal(t, 4, LineCount(s))
	assert.Equal(t, 0, LineIndex(s, 1))
	assert.Equal(t, 1, LineIndex(s, 2))
	assert.Equal(t, 2, LineIndex(s, 7))
	assert.Equal(t, 3, LineIndex(s, 9))
	assert.Equal(t, 0, LineOffset(s, 0))
	assert.Equal(t, 5, LineOffset(s, 2))
	assert.Equal(t, 9, LineOffset(s, 3))
	assert.Equal(t, 9, LineOffset(s, 50))
	assert.Equal(t, 2, CountLines(s, 1, 5))
	assert.Equal(t, 1, LineCount(text("")))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassSpace, Classify(' '))
	assert.Equal(t, ClassSpace, Classify('\n'))
	assert.Equal(t, ClassWord, Classify('_'))
	assert.Equal(t, ClassWord, Classify('Z'))
	assert.Equal(t, ClassWord, Classify('7'))
	assert.Equal(t, ClassPunct, Classify('.'))
	assert.Equal(t, ClassPunct, Classify(0xC3))
}

func TestWordMotions(t *testing.T) {
	s := text("foo  bar.baz")
	assert.Equal(t, 5, NextWord(s, 0))
	assert.Equal(t, 8, NextWord(s, 5))
	assert.Equal(t, 9, NextWord(s, 8))
	assert.Equal(t, 12, NextWord(s, 9))
	assert.Equal(t, 5, NextWord(s, 3))

	assert.Equal(t, 2, NextWordEnd(s, 0))
	assert.Equal(t, 7, NextWordEnd(s, 2))
	assert.Equal(t, 8, NextWordEnd(s, 7))
	assert.Equal(t, 11, NextWordEnd(s, 9))
	assert.Equal(t, 11, NextWordEnd(s, 11))

	assert.Equal(t, 9, PrevWord(s, 11))
	assert.Equal(t, 8, PrevWord(s, 9))
	assert.Equal(t, 5, PrevWord(s, 8))
	assert.Equal(t, 0, PrevWord(s, 5))
	assert.Equal(t, 0, PrevWord(s, 0))

	assert.Equal(t, 5, WordStart(s, 7))
	assert.Equal(t, 7, WordEnd(s, 5))
	assert.Equal(t, 3, WordStart(s, 3))
	assert.Equal(t, 3, WordEnd(s, 3))
}

func TestWordMotionsStopOnEmptyLines(t *testing.T) {
	s := text("abc\n\ndef")
	assert.Equal(t, 4, NextWord(s, 0))
	assert.Equal(t, 5, NextWord(s, 4))
	assert.Equal(t, 4, PrevWord(s, 5))
	assert.Equal(t, 0, PrevWord(s, 4))

	s = text("ab\ncd")
	assert.Equal(t, 3, NextWord(s, 0))
	assert.Equal(t, 0, PrevWord(s, 3))
}

func TestWordMotionsEmptyText(t *testing.T) {
	s := text("")
	assert.Equal(t, 0, NextWord(s, 0))
	assert.Equal(t, 0, NextWordEnd(s, 0))
	assert.Equal(t, 0, PrevWord(s, 0))
	assert.Equal(t, 0, WordStart(s, 0))
}

func TestExpandLines(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		from, to   int
	}{
		{"partial two lines", "a\nbbbb\ncc\n", 0, 4, 0, 7},
		{"inside second line", "a\nbbbb\ncc\n", 3, 5, 2, 7},
		{"newline only", "a\nbbbb\ncc\n", 1, 2, 0, 2},
		{"last terminated line", "a\nbbbb\ncc\n", 8, 9, 7, 10},
		{"unterminated last line", "ab\ncd", 4, 5, 3, 5},
		{"empty range", "a\nbbbb\ncc\n", 2, 2, 2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := ExpandLines(text(tt.text), tt.start, tt.end)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}
