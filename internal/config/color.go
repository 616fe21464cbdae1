package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an RGB color written as "#rrggbb" (or "#rgb") in config files.
type Color struct {
	colorful.Color
}

// ParseColor parses a hex color. The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
	}
	return Color{c}, nil
}

// MustColor is ParseColor for constants.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.RGB255()
}

// Blend mixes c toward other by t in [0, 1] in Lab space.
func (c Color) Blend(other Color, t float64) Color {
	return Color{c.BlendLab(other.Color, t).Clamped()}
}

// String returns the lowercase "#rrggbb" form.
func (c Color) String() string {
	return c.Hex()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
