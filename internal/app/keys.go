package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shin/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:    key.KeyEscape,
	tcell.KeyEnter:     key.KeyEnter,
	tcell.KeyTab:       key.KeyTab,
	tcell.KeyBackspace: key.KeyBackspace,
	tcell.KeyDelete:    key.KeyDelete,
	tcell.KeyInsert:    key.KeyInsert,
	tcell.KeyUp:        key.KeyUp,
	tcell.KeyDown:      key.KeyDown,
	tcell.KeyLeft:      key.KeyLeft,
	tcell.KeyRight:     key.KeyRight,
	tcell.KeyHome:      key.KeyHome,
	tcell.KeyEnd:       key.KeyEnd,
	tcell.KeyPgUp:      key.KeyPageUp,
	tcell.KeyPgDn:      key.KeyPageDown,
	tcell.KeyF1:        key.KeyF1,
	tcell.KeyF2:        key.KeyF2,
	tcell.KeyF3:        key.KeyF3,
	tcell.KeyF4:        key.KeyF4,
	tcell.KeyF5:        key.KeyF5,
	tcell.KeyF6:        key.KeyF6,
	tcell.KeyF7:        key.KeyF7,
	tcell.KeyF8:        key.KeyF8,
	tcell.KeyF9:        key.KeyF9,
	tcell.KeyF10:       key.KeyF10,
	tcell.KeyF11:       key.KeyF11,
	tcell.KeyF12:       key.KeyF12,
}

// convertMods maps tcell modifiers. Meta folds into Alt.
func convertMods(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	return mods
}

// convertKey normalizes a tcell key event. It reports false for keys the
// editor has no combination for, such as non-ASCII runes.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMods(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r < ' ' || r > '~' {
			return key.Event{}, false
		}
		c := key.FromChar(byte(r))
		if mods.Has(key.ModAlt) {
			c = key.Combine(c.Key(), c.Modifiers().With(key.ModAlt))
		}
		return key.NewComboEvent(c), true

	// Ctrl-H, Ctrl-I and Ctrl-M share codes with Backspace, Tab and Enter;
	// only an explicit Ctrl modifier makes them chords.
	case (k == tcell.KeyBackspace || k == tcell.KeyTab || k == tcell.KeyEnter) && mods.Has(key.ModCtrl):
		return ctrlEvent(byte('A'+k-tcell.KeyCtrlA), mods), true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ &&
		k != tcell.KeyBackspace && k != tcell.KeyTab && k != tcell.KeyEnter:
		return ctrlEvent(byte('A'+k-tcell.KeyCtrlA), mods), true
	}

	switch k {
	case tcell.KeyBackspace2:
		k = tcell.KeyBackspace
	case tcell.KeyBacktab:
		k, mods = tcell.KeyTab, mods.With(key.ModShift)
	}
	sk, ok := specialKeys[k]
	if !ok {
		return key.Event{}, false
	}
	return key.NewEvent(sk, mods), true
}

func ctrlEvent(letter byte, mods key.Modifier) key.Event {
	c := key.Ctrl(letter)
	if mods.Has(key.ModAlt) {
		c = key.Combine(c.Key(), c.Modifiers().With(key.ModAlt))
	}
	return key.NewComboEvent(c)
}
