// Package cursor implements navigation over the text of an edit buffer.
//
// All functions are pure: they take a Text and a logical byte offset and
// return a new offset. They never fail. Offsets outside [0, Len()] are
// clamped before use, so callers can pass the result of any arithmetic
// without bounds checks of their own.
//
// Lines are separated by '\n'. A line's end is the offset of its newline,
// or Len() for an unterminated last line. A buffer ending in '\n' has an
// empty last line starting at Len().
//
// Word motions follow vim's w, e and b. Bytes fall into three classes:
// whitespace, word characters (ASCII letters, digits and '_') and
// punctuation. A word is a maximal run of one non-space class, and an
// empty line counts as a word of its own.
package cursor
