package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/shin/internal/input/mode"
)

// Overrides maps a mode name to key specs and the action names they run,
// as read from the [keymap] section of the configuration:
//
//	[keymap.normal]
//	"<C-s>" = "file.save"
type Overrides map[string]map[string]string

// Apply binds every override into s. Invalid entries are collected and
// returned together; valid ones are applied regardless.
func (s *Set) Apply(o Overrides) error {
	var errs []error
	modes := make([]string, 0, len(o))
	for name := range o {
		modes = append(modes, name)
	}
	sort.Strings(modes)

	for _, name := range modes {
		m, ok := mode.Parse(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownMode, name))
			continue
		}
		specs := make([]string, 0, len(o[name]))
		for spec := range o[name] {
			specs = append(specs, spec)
		}
		sort.Strings(specs)
		for _, spec := range specs {
			a, err := ParseAction(o[name][spec])
			if err == nil {
				err = s.For(m).BindSpec(spec, a)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("keymap.%s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
