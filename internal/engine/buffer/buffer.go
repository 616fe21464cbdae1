package buffer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dshills/shin/internal/input/mode"
)

const (
	// DefaultCapacity is the storage size of a buffer created without WithCapacity.
	DefaultCapacity = 32

	// insertSlack is the minimum gap kept available before an insert.
	insertSlack = 64
)

// Buffer is a gap buffer holding one text together with its cursor state.
type Buffer struct {
	id       uuid.UUID
	data     []byte
	gapStart int
	gapEnd   int

	cursor int
	extent int
	mode   mode.Mode
	path   string

	version uint64
	dirty   int // lowest offset changed since ClearDirty, -1 when clean
}

// New creates an empty buffer in normal mode.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:     uuid.New(),
		data:   make([]byte, DefaultCapacity),
		gapEnd: DefaultCapacity,
		mode:   mode.Normal,
		dirty:  -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer holding s with the cursor at 0.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.InsertString(0, s)
	b.cursor = 0
	return b
}

// ID returns the unique identity of the buffer.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Size returns the capacity of the underlying storage.
func (b *Buffer) Size() int {
	return len(b.data)
}

// GapStart returns the physical index where the gap begins.
func (b *Buffer) GapStart() int {
	return b.gapStart
}

// GapEnd returns the physical index just past the gap.
func (b *Buffer) GapEnd() int {
	return b.gapEnd
}

func (b *Buffer) gapSize() int {
	return b.gapEnd - b.gapStart
}

// Len returns the length of the visible text.
func (b *Buffer) Len() int {
	return len(b.data) - b.gapSize()
}

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// touch records a text change at pos.
func (b *Buffer) touch(pos int) {
	b.version++
	if b.dirty < 0 || pos < b.dirty {
		b.dirty = pos
	}
}

// Version returns a counter that increases on every text change. Cursor,
// extent, mode and path changes leave it alone.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Dirty returns the lowest offset changed since the last ClearDirty, or -1
// if the text is unchanged.
func (b *Buffer) Dirty() int {
	return b.dirty
}

// ClearDirty resets the low-water mark returned by Dirty.
func (b *Buffer) ClearDirty() {
	b.dirty = -1
}

func (b *Buffer) index(off int) int {
	if off < b.gapStart {
		return off
	}
	return off + b.gapSize()
}

// ByteAt returns the byte at logical offset off.
// It panics if off is outside [0, Len()).
func (b *Buffer) ByteAt(off int) byte {
	if off < 0 || off >= b.Len() {
		panic(fmt.Sprintf("buffer: offset %d out of range [0,%d)", off, b.Len()))
	}
	return b.data[b.index(off)]
}

// moveGap slides the gap so that it starts at logical offset pos.
func (b *Buffer) moveGap(pos int) {
	switch {
	case pos < b.gapStart:
		delta := b.gapStart - pos
		copy(b.data[b.gapEnd-delta:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart -= delta
		b.gapEnd -= delta
	case pos > b.gapStart:
		delta := pos - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+delta], b.data[b.gapEnd:b.gapEnd+delta])
		b.gapStart += delta
		b.gapEnd += delta
	}
}

// grow makes sure the gap can take at least needed bytes.
// The gap is parked at the logical end first so the reallocation copies
// the text exactly once.
func (b *Buffer) grow(needed int) {
	if b.gapSize() >= needed {
		return
	}
	b.moveGap(b.Len())
	size := max(len(b.data)*2, len(b.data)+needed-b.gapSize())
	data := make([]byte, size)
	copy(data, b.data[:b.gapStart])
	b.data = data
	b.gapEnd = size
}

// Insert writes c at logical offset pos. Offsets outside [0, Len()] are ignored.
// A cursor at or after pos moves forward by one.
func (b *Buffer) Insert(pos int, c byte) {
	if pos < 0 || pos > b.Len() {
		return
	}
	b.grow(insertSlack)
	b.moveGap(pos)
	b.touch(pos)
	b.data[b.gapStart] = c
	b.gapStart++
	if b.cursor >= pos {
		b.cursor++
	}
}

// InsertString writes s at logical offset pos with a single gap move.
func (b *Buffer) InsertString(pos int, s string) {
	if pos < 0 || pos > b.Len() || len(s) == 0 {
		return
	}
	b.grow(len(s) + insertSlack)
	b.moveGap(pos)
	b.touch(pos)
	copy(b.data[b.gapStart:], s)
	b.gapStart += len(s)
	if b.cursor >= pos {
		b.cursor += len(s)
	}
}

// Replace overwrites the byte at pos without moving the gap.
func (b *Buffer) Replace(pos int, c byte) {
	if pos < 0 || pos >= b.Len() {
		return
	}
	b.data[b.index(pos)] = c
	b.touch(pos)
}

// DeleteForward removes the byte at pos. It is a no-op when pos >= Len().
func (b *Buffer) DeleteForward(pos int) {
	b.DeleteRange(pos, 1)
}

// DeleteBackward removes the byte before pos. It is a no-op when pos is 0.
func (b *Buffer) DeleteBackward(pos int) {
	if pos <= 0 || pos > b.Len() {
		return
	}
	b.moveGap(pos)
	b.gapStart--
	b.touch(pos - 1)
	if b.cursor >= pos {
		b.cursor--
	}
}

// DeleteRange removes up to count bytes starting at pos.
// The range is clipped to the end of the text; a cursor inside the removed
// range lands on pos.
func (b *Buffer) DeleteRange(pos, count int) {
	if pos < 0 || pos >= b.Len() || count <= 0 {
		return
	}
	count = min(count, b.Len()-pos)
	b.moveGap(pos)
	b.gapEnd += count
	b.touch(pos)
	if b.cursor > pos {
		b.cursor = max(pos, b.cursor-count)
	}
}

// Clear empties the buffer without releasing its storage.
func (b *Buffer) Clear() {
	b.gapStart = 0
	b.gapEnd = len(b.data)
	b.cursor = 0
	b.extent = 0
	b.touch(0)
}

// Cursor returns the cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping to [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	b.cursor = max(0, min(pos, b.Len()))
}

// Extent returns the signed selection extent relative to the cursor.
func (b *Buffer) Extent() int {
	return b.extent
}

// SetExtent sets the selection extent, clamped so cursor+extent stays in [0, Len()].
func (b *Buffer) SetExtent(ext int) {
	end := max(0, min(b.cursor+ext, b.Len()))
	b.extent = end - b.cursor
}

// Selection returns the half-open byte range covered by the cursor and the
// extent. Both endpoints are part of the selection.
func (b *Buffer) Selection() (start, end int) {
	start, end = b.cursor, b.cursor+b.extent
	if end < start {
		start, end = end, start
	}
	return start, min(end+1, b.Len())
}

// Mode returns the editing mode of the buffer.
func (b *Buffer) Mode() mode.Mode {
	return b.mode
}

// SetMode changes the editing mode.
func (b *Buffer) SetMode(m mode.Mode) {
	b.mode = m
}

// Path returns the file path associated with the buffer.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath changes the file path associated with the buffer.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Halves returns the text before and after the gap.
// The slices alias the buffer storage and are only valid until the next edit.
func (b *Buffer) Halves() (before, after []byte) {
	return b.data[:b.gapStart], b.data[b.gapEnd:]
}

// Bytes returns a copy of the visible text.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	out = append(out, b.data[:b.gapStart]...)
	return append(out, b.data[b.gapEnd:]...)
}

// String returns the visible text.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Slice returns a copy of the text in [start, end), clipped to the buffer.
func (b *Buffer) Slice(start, end int) []byte {
	start = max(0, start)
	end = min(end, b.Len())
	if start >= end {
		return nil
	}
	out := make([]byte, 0, end-start)
	if start < b.gapStart {
		out = append(out, b.data[start:min(end, b.gapStart)]...)
	}
	if end > b.gapStart {
		out = append(out, b.data[b.index(max(start, b.gapStart)):b.index(end-1)+1]...)
	}
	return out
}

// Line returns the text from off up to, but not including, the next newline.
func (b *Buffer) Line(off int) []byte {
	end := off
	for end < b.Len() && b.ByteAt(end) != '\n' {
		end++
	}
	return b.Slice(off, end)
}

// Load replaces the text with data and puts the cursor at the end of the
// inserted bytes.
func (b *Buffer) Load(data []byte) {
	b.Clear()
	b.grow(len(data))
	copy(b.data, data)
	b.gapStart = len(data)
	b.cursor = len(data)
}

// WriteTo writes the visible text to w in logical order.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	before, after := b.Halves()
	n, err := w.Write(before)
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(after)
	return int64(n + m), err
}

// Equal reports whether the visible text equals s.
func (b *Buffer) Equal(s []byte) bool {
	before, after := b.Halves()
	return len(s) == len(before)+len(after) &&
		bytes.Equal(s[:len(before)], before) &&
		bytes.Equal(s[len(before):], after)
}
