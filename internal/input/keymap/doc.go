// Package keymap maps key combinations to editor actions, one table per mode.
//
// A Keymap is a fixed table with one slot for every key.Combination. Slots
// default to ActionNone, so a lookup always yields an action and dispatch
// never has to handle a missing binding.
//
// Actions are a closed enumeration rather than function values. Each action
// has a stable dotted name ("cursor.down", "mode.insert", "pane.split") used
// by configuration files and init scripts to rebind keys:
//
//	set := keymap.Defaults()
//	set.For(mode.Normal).BindSpec("<C-s>", keymap.ActionSave)
//
// Normal mode binds every printable key to ActionNormalPending. Those keys
// are not executed directly: they feed the multi-key sequence resolver in
// package vim, which produces the final action.
package keymap
