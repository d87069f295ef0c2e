package palette

import (
	"image/color"
	"testing"

	"github.com/Anarkade/deliaxe-core/internal/quantizer"
)

func TestPresets_Budgets(t *testing.T) {
	tests := []struct {
		name string
		pal  Palette
		want int
	}{
		{"gameboy", GameBoy, 4},
		{"gameboy-bg", GameBoyBackground, 4},
		{"gameboy-realistic", GameBoyRealistic, 4},
		{"megadrive", MegaDrive, 16},
		{"mastersystem", MasterSystem, 16},
		{"gamegear", GameGear, 16},
	}
	for _, tt := range tests {
		if len(tt.pal) != tt.want {
			t.Errorf("%s: %d colors, want %d", tt.name, len(tt.pal), tt.want)
		}
	}
}

func TestPresets_InsideConsoleDomain(t *testing.T) {
	domains := []struct {
		name string
		pal  Palette
		spec quantizer.BitDepthSpec
	}{
		{"megadrive", MegaDrive, quantizer.BitDepthSpec{R: 3, G: 3, B: 3}},
		{"mastersystem", MasterSystem, quantizer.BitDepthSpec{R: 2, G: 2, B: 2}},
		{"gamegear", GameGear, quantizer.BitDepthSpec{R: 4, G: 4, B: 4}},
	}
	for _, d := range domains {
		for i, c := range d.pal {
			if !c.Equal(c.Quantize(d.spec)) {
				t.Errorf("%s slot %d: %v outside %v domain", d.name, i, c, d.spec)
			}
		}
	}
}

func TestPreset_Lookup(t *testing.T) {
	if Preset("gameboy") == nil {
		t.Fatal("gameboy preset missing")
	}
	if Preset("no-such-console") != nil {
		t.Fatal("unknown preset must return nil")
	}
	// Returned palettes are copies.
	p := Preset("gameboy")
	p[0] = RGB(1, 2, 3)
	if Preset("gameboy")[0].Equal(RGB(1, 2, 3)) {
		t.Error("mutating a looked-up preset leaked into the table")
	}
}

func TestSerialize_Stable(t *testing.T) {
	a := Palette{RGB(1, 2, 3), {R: 4, G: 5, B: 6, Transparent: true}}
	b := Palette{RGB(1, 2, 3), {R: 4, G: 5, B: 6, Transparent: true}}
	if a.Serialize() != b.Serialize() {
		t.Error("equal palettes must serialize identically")
	}
	c := Palette{RGB(1, 2, 3), RGB(4, 5, 6)}
	if a.Serialize() == c.Serialize() {
		t.Error("transparency must participate in serialization")
	}
}

func TestFromStdPalette_Transparency(t *testing.T) {
	sp := color.Palette{
		color.NRGBA{R: 10, G: 20, B: 30, A: 255},
		color.NRGBA{R: 40, G: 50, B: 60, A: 0},
	}
	got := FromStdPalette(sp)
	if got[0].Transparent {
		t.Error("opaque entry tagged transparent")
	}
	if !got[1].Transparent {
		t.Error("transparent entry not tagged")
	}
}

func TestIndexOf_FirstMatch(t *testing.T) {
	p := Palette{RGB(1, 1, 1), RGB(2, 2, 2), RGB(1, 1, 1)}
	if got := p.IndexOf(RGB(1, 1, 1)); got != 0 {
		t.Errorf("IndexOf = %d, want first occurrence 0", got)
	}
	if got := p.IndexOf(RGB(9, 9, 9)); got != -1 {
		t.Errorf("IndexOf missing color = %d, want -1", got)
	}
}
