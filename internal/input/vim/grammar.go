package vim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/shin/internal/input/keymap"
)

// ctrlMarker prefixes a Ctrl chord in an encoded sequence.
const ctrlMarker byte = 0x80

// Grammar errors.
var (
	ErrEmptySequence  = errors.New("empty key sequence")
	ErrAmbiguous      = errors.New("sequence conflicts with an existing rule")
	ErrCountCollision = errors.New("sequence starts with a count digit")
)

type node struct {
	children map[byte]*node
	action   keymap.Action
	terminal bool
}

func (n *node) child(c byte) *node {
	if n.children == nil {
		return nil
	}
	return n.children[c]
}

// Grammar is the prefix-free set of normal-mode sequences.
type Grammar struct {
	root  node
	rules int
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{}
}

// DefaultGrammar returns the built-in normal-mode grammar.
func DefaultGrammar() *Grammar {
	g := NewGrammar()
	for _, r := range defaultRules {
		if err := g.Add(r.keys, r.action); err != nil {
			panic(fmt.Sprintf("vim: bad default rule %q: %v", r.keys, err))
		}
	}
	return g
}

// Encode converts rule notation ("^Wv") into the internal encoding.
func Encode(notation string) string {
	var sb strings.Builder
	for i := 0; i < len(notation); i++ {
		c := notation[i]
		if c == '^' && i+1 < len(notation) && notation[i+1] >= 'A' && notation[i+1] <= 'Z' {
			sb.WriteByte(ctrlMarker)
			sb.WriteByte(notation[i+1])
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Decode converts an encoded sequence back into rule notation.
func Decode(seq string) string {
	return strings.ReplaceAll(seq, string([]byte{ctrlMarker}), "^")
}

// Add registers a rule written in rule notation, replacing the action of an
// identical rule. Rules may not start with a count digit and the grammar
// must stay prefix-free.
func (g *Grammar) Add(notation string, a keymap.Action) error {
	seq := Encode(notation)
	if seq == "" {
		return ErrEmptySequence
	}
	if IsCountStart(seq[0]) {
		return fmt.Errorf("%w: %q", ErrCountCollision, notation)
	}
	n := &g.root
	for i := 0; i < len(seq); i++ {
		if n.terminal {
			return fmt.Errorf("%w: %q", ErrAmbiguous, notation)
		}
		next := n.child(seq[i])
		if next == nil {
			if n.children == nil {
				n.children = make(map[byte]*node)
			}
			next = &node{}
			n.children[seq[i]] = next
		}
		n = next
	}
	if len(n.children) > 0 {
		return fmt.Errorf("%w: %q", ErrAmbiguous, notation)
	}
	if !n.terminal {
		g.rules++
	}
	n.terminal = true
	n.action = a
	return nil
}

// Len returns the number of rules.
func (g *Grammar) Len() int {
	return g.rules
}

// Resolve matches an encoded sequence against the grammar.
func (g *Grammar) Resolve(seq string) Result {
	count, rest := SplitCount(seq)
	if rest == "" {
		return Result{Status: StatusPending}
	}
	n := &g.root
	for i := 0; i < len(rest); i++ {
		if n = n.child(rest[i]); n == nil {
			return Result{Status: StatusInvalid}
		}
	}
	if !n.terminal {
		return Result{Status: StatusPending}
	}
	if count > 0 && !acceptsCount(n.action) {
		return Result{Status: StatusInvalid}
	}
	return Result{
		Status:  StatusComplete,
		Command: Command{Action: n.action, Count: count, Keys: Decode(seq)},
	}
}

// acceptsCount reports whether a count may precede a.
// A count before G names a line.
func acceptsCount(a keymap.Action) bool {
	return a.Repeatable() || a == keymap.ActionBufferEnd
}

type rule struct {
	keys   string
	action keymap.Action
}

var defaultRules = []rule{
	// Single keys.
	{"x", keymap.ActionDeleteForward},
	{"h", keymap.ActionCursorLeft},
	{"l", keymap.ActionCursorRight},
	{"j", keymap.ActionCursorDown},
	{"k", keymap.ActionCursorUp},
	{"w", keymap.ActionWordNext},
	{"e", keymap.ActionWordEnd},
	{"b", keymap.ActionWordPrev},
	{"0", keymap.ActionLineStart},
	{"$", keymap.ActionLineEnd},
	{"^", keymap.ActionFirstNonBlank},
	{"I", keymap.ActionInsertLineStart},
	{"A", keymap.ActionAppendLineEnd},
	{"i", keymap.ActionInsertMode},
	{"a", keymap.ActionAppendMode},
	{"o", keymap.ActionOpenLineBelow},
	{"O", keymap.ActionOpenLineAbove},
	{"G", keymap.ActionBufferEnd},
	{"v", keymap.ActionVisualMode},
	{"V", keymap.ActionVisualLineMode},
	{"p", keymap.ActionPaste},

	// Operators.
	{"dd", keymap.ActionDeleteLine},
	{"dw", keymap.ActionDeleteWord},
	{"cw", keymap.ActionChangeWord},
	{"gg", keymap.ActionBufferStart},

	// Windows.
	{"^Wv", keymap.ActionSplitVertical},
	{"^W^V", keymap.ActionSplitVertical},
	{"^Ws", keymap.ActionSplitHorizontal},
	{"^W^S", keymap.ActionSplitHorizontal},
	{"^Wl", keymap.ActionPaneNext},
	{"^W^L", keymap.ActionPaneNext},
	{"^Ww", keymap.ActionPaneNext},
	{"^W^W", keymap.ActionPaneNext},
	{"^Wh", keymap.ActionPanePrev},
	{"^W^H", keymap.ActionPanePrev},
	{"^Wq", keymap.ActionPaneClose},
	{"^W^Q", keymap.ActionPaneClose},
	{"^Wc", keymap.ActionPaneClose},
}
