package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into a Combination.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>"
func Parse(spec string) (Combination, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Combination {
	c, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return c
}

// ParseSequence parses a run of keys such as "<C-w>v" or "3dd".
func ParseSequence(spec string) ([]Combination, error) {
	var out []Combination
	for i := 0; i < len(spec); {
		if spec[i] == '<' && i+1 < len(spec) {
			end := strings.IndexByte(spec[i:], '>')
			if end < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
			}
			c, err := Parse(spec[i : i+end+1])
			if err != nil {
				return nil, err
			}
			out = append(out, c)
			i += end + 1
			continue
		}
		c, err := parseKeyWithModifiers(spec[i:i+1], ModNone)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		i++
	}
	return out, nil
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Combination, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return 0, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	// "<C-->" names the minus key
	if strings.HasSuffix(inner, "--") {
		parts = append(parts[:len(parts)-2], "-")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		if len(p) != 1 {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mod := ModifierFromName(p)
		if mod == ModNone {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Combination, error) {
	parts := strings.Split(spec, "+")
	// "Ctrl++" names the plus key
	if strings.HasSuffix(spec, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}
	if len(parts) < 2 {
		return 0, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Combination, error) {
	if keyPart != " " {
		keyPart = strings.TrimSpace(keyPart)
	}
	if keyPart == "" {
		return 0, ErrInvalidSpec
	}

	if len(keyPart) > 1 {
		if k := KeyFromName(keyPart); k != KeyNone {
			return Combine(k, mods), nil
		}
		return 0, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	c := keyPart[0]
	if c < ' ' || c > '~' {
		return 0, fmt.Errorf("%w: unprintable key %q", ErrInvalidSpec, keyPart)
	}
	switch {
	case c >= 'a' && c <= 'z':
		return Combine(Key(c-'a'+'A'), mods), nil
	case c >= 'A' && c <= 'Z':
		// Case is irrelevant in a Ctrl or Alt chord, as in vim.
		if !mods.Has(ModCtrl) && !mods.Has(ModAlt) {
			mods = mods.With(ModShift)
		}
		return Combine(Key(c), mods), nil
	default:
		return Combine(Key(c), mods), nil
	}
}
