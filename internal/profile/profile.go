// Package profile defines the closed set of target console profiles and the
// processing parameters each one carries: channel bit depth, palette budget,
// whether the palette is derived adaptively, and the preset fallback table.
package profile

import (
	"fmt"

	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/quantizer"
)

// Console identifies a target platform. The set is closed: routing switches
// over it exhaustively instead of falling through a default case.
type Console int

const (
	// Original applies bit-depth reduction only, no palette constraint.
	Original Console = iota
	// GameBoy maps brightness bands onto the DMG green ramp.
	GameBoy
	// GameBoyBackground maps brightness bands onto the grey ramp.
	GameBoyBackground
	// GameBoyRealistic maps brightness bands onto the photographed-LCD ramp.
	GameBoyRealistic
	// MegaDrive derives an adaptive 16-color palette in the 3-3-3 domain.
	MegaDrive
	// GameGear derives an adaptive 32-color palette in the 4-4-4 domain.
	GameGear
	// MasterSystem derives an adaptive 16-color palette in the 2-2-2 domain.
	MasterSystem
	// FixedPreset matches against a named preset table as-is.
	FixedPreset
)

var consoleNames = map[Console]string{
	Original:          "original",
	GameBoy:           "gameboy",
	GameBoyBackground: "gameboy-bg",
	GameBoyRealistic:  "gameboy-realistic",
	MegaDrive:         "megadrive",
	GameGear:          "gamegear",
	MasterSystem:      "mastersystem",
	FixedPreset:       "preset",
}

func (c Console) String() string {
	if n, ok := consoleNames[c]; ok {
		return n
	}
	return fmt.Sprintf("console(%d)", int(c))
}

// Profile is one resolved processing target. PresetName is only meaningful
// for FixedPreset.
type Profile struct {
	Console    Console
	PresetName string
}

// Parse resolves a CLI profile name. Names that are not console profiles are
// looked up in the preset table so fixed palettes work by name.
func Parse(name string) (Profile, error) {
	for c, n := range consoleNames {
		if n == name && c != FixedPreset {
			return Profile{Console: c}, nil
		}
	}
	if palette.Preset(name) != nil {
		return Profile{Console: FixedPreset, PresetName: name}, nil
	}
	return Profile{}, fmt.Errorf("profile: unknown profile %q", name)
}

// Names returns every selectable profile name, consoles first.
func Names() []string {
	out := []string{"original", "gameboy", "gameboy-bg", "gameboy-realistic",
		"megadrive", "gamegear", "mastersystem"}
	for _, n := range palette.PresetNames() {
		switch n {
		case "gameboy", "gameboy-bg", "gameboy-realistic", "megadrive", "gamegear", "mastersystem":
			// Already exposed as console profiles.
		default:
			out = append(out, n)
		}
	}
	return out
}

// Depth returns the per-channel bit depth of the profile's color domain.
func (p Profile) Depth() quantizer.BitDepthSpec {
	switch p.Console {
	case MegaDrive:
		return quantizer.BitDepthSpec{R: 3, G: 3, B: 3}
	case GameGear:
		return quantizer.BitDepthSpec{R: 4, G: 4, B: 4}
	case MasterSystem:
		return quantizer.BitDepthSpec{R: 2, G: 2, B: 2}
	case Original, GameBoy, GameBoyBackground, GameBoyRealistic, FixedPreset:
		return quantizer.Full
	}
	return quantizer.Full
}

// Budget returns the maximum palette length for the profile, or 0 when the
// profile imposes no palette constraint.
func (p Profile) Budget() int {
	switch p.Console {
	case GameBoy, GameBoyBackground, GameBoyRealistic:
		return 4
	case MegaDrive, MasterSystem:
		return 16
	case GameGear:
		return 32
	case FixedPreset:
		return len(palette.Preset(p.PresetName))
	case Original:
		return 0
	}
	return 0
}

// Adaptive reports whether the profile derives its palette from image content.
func (p Profile) Adaptive() bool {
	switch p.Console {
	case MegaDrive, GameGear, MasterSystem:
		return true
	default:
		return false
	}
}

// Fallback returns the fixed preset table used when adaptive generation
// fails, or the table itself for fixed profiles. Nil for Original.
func (p Profile) Fallback() palette.Palette {
	switch p.Console {
	case GameBoy:
		return palette.GameBoy.Clone()
	case GameBoyBackground:
		return palette.GameBoyBackground.Clone()
	case GameBoyRealistic:
		return palette.GameBoyRealistic.Clone()
	case MegaDrive:
		return palette.MegaDrive.Clone()
	case GameGear:
		return palette.GameGear.Clone()
	case MasterSystem:
		return palette.MasterSystem.Clone()
	case FixedPreset:
		return palette.Preset(p.PresetName)
	case Original:
		return nil
	}
	return nil
}

// Key returns the stable identifier used in cache keys.
func (p Profile) Key() string {
	if p.Console == FixedPreset {
		return "preset:" + p.PresetName
	}
	return p.Console.String()
}
