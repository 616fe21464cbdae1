package key

// Kind distinguishes presses from releases.
type Kind uint8

const (
	// KindPressed is a key press (including auto-repeat).
	KindPressed Kind = iota
	// KindReleased is a key release. The editor ignores releases.
	KindReleased
)

// Event is a normalized key event.
type Event struct {
	Kind  Kind
	Combo Combination
	// Char is the resolved printable character, or 0.
	Char byte
}

// NewEvent creates a press event for k with mods.
func NewEvent(k Key, mods Modifier) Event {
	c := Combine(k, mods)
	return Event{Kind: KindPressed, Combo: c, Char: c.Char()}
}

// NewCharEvent creates a press event typing the printable character c.
func NewCharEvent(c byte) Event {
	return Event{Kind: KindPressed, Combo: FromChar(c), Char: c}
}

// NewComboEvent creates a press event for an already packed combination.
func NewComboEvent(c Combination) Event {
	return Event{Kind: KindPressed, Combo: c, Char: c.Char()}
}

// IsPressed reports whether e is a key press.
func (e Event) IsPressed() bool {
	return e.Kind == KindPressed
}

// Key returns the base key of the event.
func (e Event) Key() Key {
	return e.Combo.Key()
}

// Modifiers returns the modifier bits of the event.
func (e Event) Modifiers() Modifier {
	return e.Combo.Modifiers()
}

// String returns the vim-style notation of the event.
func (e Event) String() string {
	return e.Combo.String()
}
