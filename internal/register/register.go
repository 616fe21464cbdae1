// Package register holds yanked text for paste.
//
// The unnamed register mirrors its contents to the system clipboard when one
// is available. Text copied outside the editor is picked up on the next
// paste; if the clipboard is unavailable the register works from memory.
package register

import (
	"bytes"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard is a system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the host clipboard.
type System struct{}

// ReadAll returns the clipboard contents.
func (System) ReadAll() (string, error) { return clipboard.ReadAll() }

// WriteAll replaces the clipboard contents.
func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemAvailable reports whether the host has a usable clipboard utility.
func SystemAvailable() bool { return !clipboard.Unsupported }

// Register stores the most recent yank.
type Register struct {
	mu       sync.Mutex
	text     []byte
	linewise bool
	clip     Clipboard
}

// New returns a register backed by clip. A nil clip keeps the register
// memory-only.
func New(clip Clipboard) *Register {
	return &Register{clip: clip}
}

// Set stores text. Linewise text is pasted below the cursor line.
func (r *Register) Set(text []byte, linewise bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text = bytes.Clone(text)
	r.linewise = linewise
	if r.clip != nil {
		// Clipboard failures fall back to the in-memory copy.
		_ = r.clip.WriteAll(string(text))
	}
}

// Get returns the register contents. Clipboard contents that differ from the
// last yank replace it as charwise text.
func (r *Register) Get() (text []byte, linewise bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clip != nil {
		if s, err := r.clip.ReadAll(); err == nil && s != "" && s != string(r.text) {
			r.text = []byte(s)
			r.linewise = false
		}
	}
	return bytes.Clone(r.text), r.linewise
}

// Empty reports whether nothing has been stored.
func (r *Register) Empty() bool {
	text, _ := r.Get()
	return len(text) == 0
}
