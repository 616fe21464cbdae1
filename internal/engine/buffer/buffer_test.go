package buffer

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/shin/internal/input/mode"
)

func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	require.LessOrEqual(t, 0, b.GapStart())
	require.LessOrEqual(t, b.GapStart(), b.GapEnd())
	require.LessOrEqual(t, b.GapEnd(), b.Size())
	require.Equal(t, b.Size()-(b.GapEnd()-b.GapStart()), b.Len())
	require.LessOrEqual(t, b.Cursor(), b.Len())
	require.GreaterOrEqual(t, b.Cursor(), 0)
}

func TestNew(t *testing.T) {
	b := New()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, DefaultCapacity, b.Size())
	assert.Equal(t, mode.Normal, b.Mode())
	assert.NotEqual(t, New().ID(), b.ID())

	b = New(WithCapacity(4), WithPath("a.txt"), WithMode(mode.Insert))
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, "a.txt", b.Path())
	assert.Equal(t, mode.Insert, b.Mode())
	checkInvariants(t, b)
}

func TestInsertReadRoundTrip(t *testing.T) {
	b := NewFromString("helo")
	b.Insert(3, 'l')
	assert.Equal(t, byte('l'), b.ByteAt(3))
	assert.Equal(t, "hello", b.String())

	b.Insert(0, '>')
	b.Insert(b.Len(), '!')
	assert.Equal(t, ">hello!", b.String())
	checkInvariants(t, b)
}

func TestInsertOutOfRangeIgnored(t *testing.T) {
	b := NewFromString("abc")
	b.Insert(4, 'x')
	b.Insert(-1, 'x')
	b.InsertString(10, "xyz")
	assert.Equal(t, "abc", b.String())
}

func TestGrowth(t *testing.T) {
	b := New(WithCapacity(2))
	for i := 0; i < 500; i++ {
		b.Insert(b.Len()/2, byte('a'+i%26))
		checkInvariants(t, b)
	}
	assert.Equal(t, 500, b.Len())
	assert.GreaterOrEqual(t, b.Size(), 500+insertSlack-1)
}

func TestDeleteForwardInvertsInsert(t *testing.T) {
	b := NewFromString("abcdef")
	for p := 0; p <= b.Len(); p++ {
		before := b.String()
		b.Insert(p, 'Z')
		b.DeleteForward(p)
		assert.Equal(t, before, b.String(), "position %d", p)
		checkInvariants(t, b)
	}
}

func TestDeleteNoOps(t *testing.T) {
	b := NewFromString("abc")
	b.DeleteForward(3)
	b.DeleteBackward(0)
	b.DeleteRange(-1, 2)
	b.DeleteRange(1, 0)
	assert.Equal(t, "abc", b.String())

	b.DeleteRange(1, 100)
	assert.Equal(t, "a", b.String())
}

func TestCursorAdjustment(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		edit   func(b *Buffer)
		want   int
	}{
		{"insert before", 3, func(b *Buffer) { b.Insert(1, 'x') }, 4},
		{"insert at", 3, func(b *Buffer) { b.Insert(3, 'x') }, 4},
		{"insert after", 3, func(b *Buffer) { b.Insert(4, 'x') }, 3},
		{"delete forward before", 3, func(b *Buffer) { b.DeleteForward(1) }, 2},
		{"delete forward at", 3, func(b *Buffer) { b.DeleteForward(3) }, 3},
		{"delete backward before", 3, func(b *Buffer) { b.DeleteBackward(2) }, 2},
		{"delete backward at cursor", 3, func(b *Buffer) { b.DeleteBackward(3) }, 2},
		{"delete backward after", 3, func(b *Buffer) { b.DeleteBackward(5) }, 3},
		{"delete range spanning", 3, func(b *Buffer) { b.DeleteRange(1, 4) }, 1},
		{"delete range before", 5, func(b *Buffer) { b.DeleteRange(0, 2) }, 3},
		{"delete first at zero", 0, func(b *Buffer) { b.DeleteForward(0) }, 0},
		{"insert string before", 2, func(b *Buffer) { b.InsertString(0, "xyz") }, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("abcdefgh")
			b.SetCursor(tt.cursor)
			tt.edit(b)
			assert.Equal(t, tt.want, b.Cursor())
			checkInvariants(t, b)
		})
	}
}

func TestSetCursorClamps(t *testing.T) {
	b := NewFromString("abc")
	for _, x := range []int{-5, 0, 2, 3, 99} {
		b.SetCursor(x)
		first := b.Cursor()
		b.SetCursor(x)
		assert.Equal(t, first, b.Cursor())
		assert.Equal(t, max(0, min(x, 3)), first)
	}
}

func TestRandomEditsMatchModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(WithCapacity(1))
	var model []byte
	for i := 0; i < 2000; i++ {
		switch op := rng.Intn(4); {
		case op < 2:
			p := rng.Intn(len(model) + 1)
			c := byte('a' + rng.Intn(26))
			b.Insert(p, c)
			model = append(model[:p], append([]byte{c}, model[p:]...)...)
		case op == 2 && len(model) > 0:
			p := rng.Intn(len(model))
			b.DeleteForward(p)
			model = append(model[:p], model[p+1:]...)
		case op == 3 && len(model) > 0:
			p := rng.Intn(len(model))
			n := rng.Intn(4) + 1
			b.DeleteRange(p, n)
			end := min(p+n, len(model))
			model = append(model[:p], model[end:]...)
		}
		b.SetCursor(rng.Intn(len(model) + 2))
		checkInvariants(t, b)
	}
	assert.Equal(t, string(model), b.String())
	assert.True(t, b.Equal(model))
}

func TestByteAtPanicsOutOfRange(t *testing.T) {
	b := NewFromString("ab")
	assert.Panics(t, func() { b.ByteAt(2) })
	assert.Panics(t, func() { b.ByteAt(-1) })
}

func TestReplace(t *testing.T) {
	b := NewFromString("cat")
	b.Insert(1, 'o') // gap now in the middle
	b.Replace(0, 'b')
	b.Replace(3, 'd')
	b.Replace(4, 'x')
	assert.Equal(t, "boad", b.String())
}

func TestClear(t *testing.T) {
	b := NewFromString("hello")
	b.SetCursor(3)
	b.SetExtent(1)
	size := b.Size()
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, 0, b.Extent())
	assert.Equal(t, size, b.Size())
}

func TestExtentAndSelection(t *testing.T) {
	b := NewFromString("abcdef")
	b.SetCursor(3)
	b.SetExtent(2)
	start, end := b.Selection()
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	b.SetExtent(-2)
	start, end = b.Selection()
	assert.Equal(t, 1, start)
	assert.Equal(t, 4, end)

	b.SetExtent(100)
	assert.Equal(t, 3, b.Extent())
	b.SetExtent(-100)
	assert.Equal(t, -3, b.Extent())
}

func TestSliceAcrossGap(t *testing.T) {
	b := NewFromString("hello world")
	b.Insert(5, ',')
	assert.Equal(t, "hello, world", b.String())
	assert.Equal(t, "lo, w", string(b.Slice(3, 8)))
	assert.Equal(t, "hello", string(b.Slice(-3, 5)))
	assert.Equal(t, "world", string(b.Slice(7, 100)))
	assert.Nil(t, b.Slice(5, 5))
}

func TestLine(t *testing.T) {
	b := NewFromString("one\ntwo\n")
	assert.Equal(t, "one", string(b.Line(0)))
	assert.Equal(t, "wo", string(b.Line(5)))
	assert.Empty(t, b.Line(8))
}

func TestLoad(t *testing.T) {
	b := NewFromString("old")
	data := []byte(strings.Repeat("x", 100))
	b.Load(data)
	assert.Equal(t, string(data), b.String())
	assert.Equal(t, 100, b.Cursor())
	checkInvariants(t, b)
}

func TestWriteTo(t *testing.T) {
	b := NewFromString("abcdef")
	b.Insert(3, '-')
	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "abc-def", out.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteToError(t *testing.T) {
	b := NewFromString("abc")
	_, err := b.WriteTo(failWriter{})
	assert.EqualError(t, err, "disk full")
}

func TestVersionAndDirty(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(b *Buffer)
		changed bool
		dirty   int
	}{
		{"insert", func(b *Buffer) { b.Insert(4, 'x') }, true, 4},
		{"insert string", func(b *Buffer) { b.InsertString(2, "yy") }, true, 2},
		{"replace", func(b *Buffer) { b.Replace(6, 'Z') }, true, 6},
		{"delete range", func(b *Buffer) { b.DeleteRange(3, 2) }, true, 3},
		{"delete backward", func(b *Buffer) { b.DeleteBackward(5) }, true, 4},
		{"clear", func(b *Buffer) { b.Clear() }, true, 0},
		{"load", func(b *Buffer) { b.Load([]byte("new")) }, true, 0},
		{"cursor", func(b *Buffer) { b.SetCursor(3) }, false, -1},
		{"extent", func(b *Buffer) { b.SetExtent(2) }, false, -1},
		{"mode", func(b *Buffer) { b.SetMode(mode.Visual) }, false, -1},
		{"out of range", func(b *Buffer) { b.Insert(99, 'x'); b.DeleteRange(99, 1) }, false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("abc\ndef\n")
			b.ClearDirty()
			before := b.Version()

			tt.edit(b)
			if tt.changed {
				assert.Greater(t, b.Version(), before)
			} else {
				assert.Equal(t, before, b.Version())
			}
			assert.Equal(t, tt.dirty, b.Dirty())
		})
	}
}

func TestDirtyKeepsLowestOffset(t *testing.T) {
	b := NewFromString("abcdef")
	b.ClearDirty()
	b.Insert(5, 'x')
	b.Insert(2, 'y')
	b.Insert(4, 'z')
	assert.Equal(t, 2, b.Dirty())
	b.ClearDirty()
	assert.Equal(t, -1, b.Dirty())
}
