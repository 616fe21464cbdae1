// Package buffer provides the gap buffer that stores the text of one pane.
//
// A Buffer keeps its bytes in a single slice with one movable empty region,
// the gap. Every edit first slides the gap to the edit point and then grows
// or shrinks it, so a run of edits clustered around one location costs O(1)
// amortized per edit. Jumping to a distant location costs one copy of the
// bytes between the old and the new gap position.
//
// Offsets passed to and returned from a Buffer are logical offsets into the
// visible text; the gap is never observable from the outside.
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello")
//	buf.Insert(5, '!')          // "hello!"
//	buf.DeleteRange(0, 1)       // "ello!"
//	buf.SetCursor(buf.Len())    // cursor after '!'
//
// Besides text, a Buffer carries the editing state bound to it: the cursor,
// the signed selection extent used in visual mode, the current mode tag and
// the file path it was loaded from.
//
// A Buffer is not safe for concurrent use. The editor confines every buffer
// to the goroutine running its event loop.
package buffer
