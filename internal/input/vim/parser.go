package vim

import (
	"github.com/dshills/shin/internal/input/key"
	"github.com/dshills/shin/internal/input/keymap"
)

// MaxPending bounds the pending sequence.
const MaxPending = 16

// Status indicates the result of feeding a key.
type Status uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending Status = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates the sequence was dropped.
	StatusInvalid
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Command is a resolved normal-mode command.
type Command struct {
	Action keymap.Action
	// Count is the repeat count, or 0 when none was typed.
	Count int
	// Keys is the sequence that produced the command, in rule notation.
	Keys string
}

// Times returns how often the command runs.
func (c Command) Times() int {
	return max(1, c.Count)
}

// Result is the outcome of resolving a sequence.
type Result struct {
	Status  Status
	Command Command
}

// Parser accumulates normal-mode keys and resolves them with a Grammar.
type Parser struct {
	grammar *Grammar
	pending []byte
}

// NewParser creates a parser over g, or over the default grammar if g is nil.
func NewParser(g *Grammar) *Parser {
	if g == nil {
		g = DefaultGrammar()
	}
	return &Parser{grammar: g, pending: make([]byte, 0, MaxPending)}
}

// Grammar returns the grammar the parser resolves against.
func (p *Parser) Grammar() *Grammar {
	return p.grammar
}

// Pending returns the keys typed so far in rule notation.
func (p *Parser) Pending() string {
	return Decode(string(p.pending))
}

// Reset clears the pending sequence.
func (p *Parser) Reset() {
	p.pending = p.pending[:0]
}

// Feed appends one key and resolves the sequence. Complete and invalid
// results clear the pending buffer.
func (p *Parser) Feed(ev key.Event) Result {
	mods := ev.Modifiers()
	switch k := ev.Key(); {
	case mods.Has(key.ModCtrl) && k >= 'A' && k <= 'Z':
		p.pending = append(p.pending, ctrlMarker, byte(k))
	case ev.Char != 0:
		p.pending = append(p.pending, ev.Char)
	default:
		p.Reset()
		return Result{Status: StatusInvalid}
	}

	if len(p.pending) > MaxPending {
		p.Reset()
		return Result{Status: StatusInvalid}
	}

	res := p.grammar.Resolve(string(p.pending))
	if res.Status != StatusPending {
		p.Reset()
	}
	return res
}
