package palette

import (
	"sort"

	"github.com/Anarkade/deliaxe-core/internal/quantizer"
)

// Built-in preset tables. Each is a fixed hardware-flavored palette used
// either directly (fixed-preset profiles) or as the degraded fallback when
// adaptive generation fails for a console.

// GameBoy is the classic DMG green ramp, darkest shade first. Slot order
// matches the hardware shade index (0 = darkest).
var GameBoy = Palette{
	RGB(15, 56, 15),
	RGB(48, 98, 48),
	RGB(139, 172, 15),
	RGB(155, 188, 15),
}

// GameBoyBackground is the grey ramp used for background layers, darkest
// first, matching Game Boy Pocket output.
var GameBoyBackground = Palette{
	RGB(0, 0, 0),
	RGB(85, 85, 85),
	RGB(170, 170, 170),
	RGB(255, 255, 255),
}

// GameBoyRealistic approximates the DMG LCD as photographed, darkest first.
var GameBoyRealistic = Palette{
	RGB(8, 24, 32),
	RGB(52, 104, 86),
	RGB(136, 192, 112),
	RGB(224, 248, 208),
}

// baseSixteen is the classic 16-color CRT set used to seed the console preset
// tables below. Each console table is this set snapped to the console's
// channel depth, so fallback output stays inside the hardware color domain.
var baseSixteen = Palette{
	RGB(0, 0, 0),
	RGB(0, 0, 170),
	RGB(0, 170, 0),
	RGB(0, 170, 170),
	RGB(170, 0, 0),
	RGB(170, 0, 170),
	RGB(170, 85, 0),
	RGB(170, 170, 170),
	RGB(85, 85, 85),
	RGB(85, 85, 255),
	RGB(85, 255, 85),
	RGB(85, 255, 255),
	RGB(255, 85, 85),
	RGB(255, 85, 255),
	RGB(255, 255, 85),
	RGB(255, 255, 255),
}

// Console preset fallback tables, snapped to each hardware color domain.
var (
	MegaDrive    = snap(baseSixteen, quantizer.BitDepthSpec{R: 3, G: 3, B: 3})
	MasterSystem = snap(baseSixteen, quantizer.BitDepthSpec{R: 2, G: 2, B: 2})
	GameGear     = snap(baseSixteen, quantizer.BitDepthSpec{R: 4, G: 4, B: 4})
)

// Quantize returns the color snapped to the given channel depth. Transparency
// is preserved.
func (c Color) Quantize(spec quantizer.BitDepthSpec) Color {
	r, g, b := spec.Apply(c.R, c.G, c.B)
	return Color{R: r, G: g, B: b, Transparent: c.Transparent}
}

// snap quantizes every entry to the given depth, drops duplicates the depth
// reduction collapses, and pads back to the original length.
func snap(p Palette, spec quantizer.BitDepthSpec) Palette {
	snapped := make(Palette, 0, len(p))
	for _, c := range p {
		snapped = append(snapped, c.Quantize(spec))
	}
	return MergePreserve(snapped, nil, len(p))
}

// Preset lookup by name. Names are the stable identifiers used in cache keys
// and on the CLI.
var presets = map[string]Palette{
	"gameboy":           GameBoy,
	"gameboy-bg":        GameBoyBackground,
	"gameboy-realistic": GameBoyRealistic,
	"megadrive":         MegaDrive,
	"mastersystem":      MasterSystem,
	"gamegear":          GameGear,
}

// Preset returns a copy of the named preset table, or nil if unknown.
func Preset(name string) Palette {
	if p, ok := presets[name]; ok {
		return p.Clone()
	}
	return nil
}

// PresetNames returns all registered preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
