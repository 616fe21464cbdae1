// Package key provides the normalized key events consumed by the editor.
//
// A key press is described by a Combination: a 16-bit code packing the base
// key in the low byte with the Ctrl, Alt and Shift bits above it
// (key | ctrl<<8 | alt<<9 | shift<<10). Every Combination is below
// MaxCombination, so a keymap can be a fixed-size table indexed by it.
//
// Base keys follow the physical key rather than the character it produced:
// letters use their upper-case ASCII code with Shift telling 'a' from 'A',
// other printable characters use their own byte, and non-printing keys use
// the codes from 0x80 up (KeyEscape, KeyEnter, the arrows, F1-F12, ...).
// The resolved printable character travels alongside in Event.Char.
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-w>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>"
package key
