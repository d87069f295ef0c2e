// Package palette defines the ordered color palette model shared by the
// matching and adaptive generation engines. Order is significant: an entry's
// index corresponds to a hardware palette slot and survives every operation
// that does not explicitly regenerate the palette.
package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a value type holding one 8-bit RGB triple. Transparent marks an
// entry reserved for fully-transparent pixels (hardware color 0 on most
// consoles); its RGB channels are still meaningful for preview rendering.
type Color struct {
	R, G, B     uint8
	Transparent bool
}

// Black is the opaque padding color used when a palette is shorter than its
// hardware slot count.
var Black = Color{0, 0, 0, false}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Equal reports exact channel equality. The transparency tag participates:
// an opaque black and a transparent black are different palette entries.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.Transparent == o.Transparent
}

// NRGBA converts to the stdlib non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	a := uint8(255)
	if c.Transparent {
		a = 0
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func (c Color) String() string {
	if c.Transparent {
		return fmt.Sprintf("#%02x%02x%02x*", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is an ordered sequence of colors. Length is bounded by the target
// hardware (4 for Game Boy shades, 16 for Mega Drive / Master System, 32 for
// Game Gear, 256 for generic indexed output).
type Palette []Color

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Contains reports whether the palette already holds an exact equal color.
func (p Palette) Contains(c Color) bool {
	return p.IndexOf(c) >= 0
}

// IndexOf returns the slot of the first exact match, or -1.
func (p Palette) IndexOf(c Color) int {
	for i, e := range p {
		if e.Equal(c) {
			return i
		}
	}
	return -1
}

// StdPalette converts to a stdlib color.Palette, preserving order.
func (p Palette) StdPalette() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c.NRGBA()
	}
	return out
}

// FromStdPalette converts a stdlib palette. Entries with alpha below 128 are
// tagged transparent.
func FromStdPalette(sp color.Palette) Palette {
	out := make(Palette, 0, len(sp))
	for _, c := range sp {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		out = append(out, Color{R: n.R, G: n.G, B: n.B, Transparent: n.A < 128})
	}
	return out
}

// Serialize renders the palette as a stable string for cache-key derivation.
// Two palettes serialize identically iff they are slot-for-slot equal.
func (p Palette) Serialize() string {
	var sb strings.Builder
	sb.Grow(len(p) * 8)
	for _, c := range p {
		sb.WriteString(c.String())
	}
	return sb.String()
}

func (p Palette) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
