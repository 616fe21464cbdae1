package keymap

import "github.com/dshills/shin/internal/input/key"

// Binding is a single key-to-action mapping.
type Binding struct {
	Combo  key.Combination
	Action Action
}

// String returns "keys -> action".
func (b Binding) String() string {
	return b.Combo.String() + " -> " + b.Action.String()
}

// spec is a default binding written in key notation.
type spec struct {
	keys        string
	action      Action
	description string
}
