package key

import "strings"

// MaxCombination bounds every valid Combination.
const MaxCombination = 1 << 11

// Combination is a base key packed with modifier bits.
type Combination uint16

// Combine packs k with mods.
func Combine(k Key, mods Modifier) Combination {
	return Combination(k) | Combination(mods&modMask)
}

// FromChar returns the combination that types the printable character c.
// Letters map to their upper-case key, with Shift set for capitals.
func FromChar(c byte) Combination {
	switch {
	case c >= 'a' && c <= 'z':
		return Combine(Key(c-'a'+'A'), ModNone)
	case c >= 'A' && c <= 'Z':
		return Combine(Key(c), ModShift)
	default:
		return Combine(Key(c), ModNone)
	}
}

// Ctrl returns the combination for Ctrl plus the letter c.
func Ctrl(c byte) Combination {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return Combine(Key(c), ModCtrl)
}

// Key returns the base key.
func (c Combination) Key() Key {
	return Key(c & 0xff)
}

// Modifiers returns the modifier bits.
func (c Combination) Modifiers() Modifier {
	return Modifier(c) & modMask
}

// Char returns the printable character c produces, or 0 when it carries
// Ctrl or Alt or its base key does not print.
func (c Combination) Char() byte {
	k := c.Key()
	mods := c.Modifiers()
	if !k.IsPrintable() || mods.Has(ModCtrl) || mods.Has(ModAlt) {
		return 0
	}
	if k >= 'A' && k <= 'Z' && !mods.Has(ModShift) {
		return byte(k) + ('a' - 'A')
	}
	return byte(k)
}

// String returns the vim-style notation of c, e.g. "<C-W>", "G" or "<Esc>".
func (c Combination) String() string {
	if ch := c.Char(); ch != 0 && ch != ' ' && ch != '<' {
		return string(rune(ch))
	}
	mods := c.Modifiers()
	var sb strings.Builder
	sb.WriteByte('<')
	if mods.Has(ModCtrl) {
		sb.WriteString("C-")
	}
	if mods.Has(ModAlt) {
		sb.WriteString("A-")
	}
	if mods.Has(ModShift) {
		sb.WriteString("S-")
	}
	if k := c.Key(); k == '<' {
		sb.WriteString("lt")
	} else {
		sb.WriteString(k.String())
	}
	sb.WriteByte('>')
	return sb.String()
}
