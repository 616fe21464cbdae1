// Package editor ties buffers, panes, keymaps and the command line together.
//
// An Editor owns the pane layout, the per-mode keymaps, the normal-mode
// sequence parser and the command-line buffer. Dispatch processes one key
// event to completion: it resolves the event to an Action through the active
// buffer's mode, runs the matching handler, and recomputes every pane's
// scroll window.
//
// Dispatch is not safe for concurrent use; the host feeds events from a
// single goroutine.
//
//	ed := editor.New(editor.WithBounds(pane.Bounds{Width: 80, Height: 23}))
//	ed.Dispatch(key.NewCharEvent('i'))
//	ed.Dispatch(key.NewCharEvent('x'))
//	ed.ActiveBuffer().String() // "x"
package editor
