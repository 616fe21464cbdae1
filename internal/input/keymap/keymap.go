package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/shin/internal/input/key"
	"github.com/dshills/shin/internal/input/mode"
)

// Errors returned by keymap operations.
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownMode   = errors.New("unknown mode")
	ErrReservedSlot  = errors.New("combination slot is reserved")
)

// Keymap holds the bindings of one mode.
type Keymap struct {
	mode  mode.Mode
	slots [key.MaxCombination]Action
}

// New creates a keymap for m with every slot set to ActionNone.
func New(m mode.Mode) *Keymap {
	return &Keymap{mode: m}
}

// Mode returns the mode this keymap serves.
func (k *Keymap) Mode() mode.Mode {
	return k.mode
}

// Bind sets the action of c. Slot 0 is the fallback for out-of-range
// combinations and stays ActionNone.
func (k *Keymap) Bind(c key.Combination, a Action) error {
	if c == 0 || int(c) >= key.MaxCombination {
		return fmt.Errorf("%w: %d", ErrReservedSlot, c)
	}
	k.slots[c] = a
	return nil
}

// BindSpec binds the key described by spec, e.g. "<C-s>" or "Alt+F4".
func (k *Keymap) BindSpec(spec string, a Action) error {
	c, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	return k.Bind(c, a)
}

// Unbind resets c to ActionNone.
func (k *Keymap) Unbind(c key.Combination) {
	if int(c) < key.MaxCombination {
		k.slots[c] = ActionNone
	}
}

// Lookup returns the action bound to c. Out-of-range combinations resolve
// to slot 0.
func (k *Keymap) Lookup(c key.Combination) Action {
	if int(c) >= key.MaxCombination {
		return k.slots[0]
	}
	return k.slots[c]
}

// Bindings returns the bound slots ordered by combination.
func (k *Keymap) Bindings() []Binding {
	var out []Binding
	for c, a := range k.slots {
		if a != ActionNone {
			out = append(out, Binding{Combo: key.Combination(c), Action: a})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Combo < out[j].Combo })
	return out
}

// Set holds one keymap per mode.
type Set struct {
	maps [mode.Count]*Keymap
}

// NewSet creates a set of empty keymaps.
func NewSet() *Set {
	s := &Set{}
	for m := range s.maps {
		s.maps[m] = New(mode.Mode(m))
	}
	return s
}

// For returns the keymap of m. Unknown modes get the normal keymap.
func (s *Set) For(m mode.Mode) *Keymap {
	if m >= mode.Count {
		return s.maps[mode.Normal]
	}
	return s.maps[m]
}

// Lookup resolves c in the keymap of m.
func (s *Set) Lookup(m mode.Mode, c key.Combination) Action {
	return s.For(m).Lookup(c)
}
