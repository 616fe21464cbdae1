package cursor

// Class is the word classification of a byte.
type Class uint8

const (
	// ClassSpace covers blanks and line breaks.
	ClassSpace Class = iota
	// ClassWord covers ASCII letters, digits and '_'.
	ClassWord
	// ClassPunct covers every other byte.
	ClassPunct
)

// Classify returns the class of c.
func Classify(c byte) Class {
	switch {
	case c == ' ', c == '\t', c == '\n', c == '\r', c == '\v', c == '\f':
		return ClassSpace
	case c == '_', c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return ClassWord
	default:
		return ClassPunct
	}
}

func classAt(t Text, off int) Class {
	return Classify(t.ByteAt(off))
}

// isEmptyLine reports whether off is the newline of an empty line.
func isEmptyLine(t Text, off int) bool {
	return t.ByteAt(off) == '\n' && (off == 0 || t.ByteAt(off-1) == '\n')
}

// WordStart returns the first byte of the run of same-class bytes containing
// off. On whitespace it returns off.
func WordStart(t Text, off int) int {
	off = clamp(t, off)
	if off >= t.Len() {
		return off
	}
	c := classAt(t, off)
	if c == ClassSpace {
		return off
	}
	for off > 0 && classAt(t, off-1) == c {
		off--
	}
	return off
}

// WordEnd returns the last byte of the run of same-class bytes containing
// off. On whitespace it returns off.
func WordEnd(t Text, off int) int {
	off = clamp(t, off)
	if off >= t.Len() {
		return off
	}
	c := classAt(t, off)
	if c == ClassSpace {
		return off
	}
	for off+1 < t.Len() && classAt(t, off+1) == c {
		off++
	}
	return off
}

// NextWord returns the start of the next word after off (vim w). It returns
// Len() when no word follows.
func NextWord(t Text, off int) int {
	n := t.Len()
	off = clamp(t, off)
	if off >= n {
		return n
	}
	if c := classAt(t, off); c != ClassSpace {
		for off < n && classAt(t, off) == c {
			off++
		}
	}
	for off < n && classAt(t, off) == ClassSpace {
		if t.ByteAt(off) == '\n' && off+1 < n && t.ByteAt(off+1) == '\n' {
			return off + 1
		}
		off++
	}
	return off
}

// NextWordEnd returns the last byte of the word ending after off (vim e).
// It returns the last byte of the text when no word follows.
func NextWordEnd(t Text, off int) int {
	n := t.Len()
	if n == 0 {
		return 0
	}
	off = clamp(t, off) + 1
	for off < n && classAt(t, off) == ClassSpace {
		off++
	}
	if off >= n {
		return n - 1
	}
	return WordEnd(t, off)
}

// PrevWord returns the start of the word before off (vim b). Empty lines
// stop the motion.
func PrevWord(t Text, off int) int {
	off = clamp(t, off)
	if off == 0 {
		return 0
	}
	off--
	for off > 0 && classAt(t, off) == ClassSpace {
		if isEmptyLine(t, off) {
			return off
		}
		off--
	}
	return WordStart(t, off)
}
