package buffer

import "github.com/dshills/shin/internal/input/mode"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithCapacity sets the initial storage capacity in bytes.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.data = make([]byte, n)
			b.gapStart = 0
			b.gapEnd = n
		}
	}
}

// WithPath associates a file path with the buffer.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithMode sets the initial editing mode.
func WithMode(m mode.Mode) Option {
	return func(b *Buffer) {
		b.mode = m
	}
}
