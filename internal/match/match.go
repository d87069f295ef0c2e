// Package match remaps rasters onto fixed palettes using perceptual
// nearest-color search in CIE Lab space.
package match

import (
	"errors"

	"github.com/Anarkade/deliaxe-core/internal/colorspace"
	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

// ErrEmptyPalette is returned when matching against a palette with no entries.
var ErrEmptyPalette = errors.New("match: empty palette")

// ApplyFixedPalette returns a new raster in which every pixel's RGB is
// replaced by the nearest palette entry under Delta-E 2000. Alpha passes
// through untouched. On exact distance ties the first minimum in palette
// order wins. Source colors are memoized per call since images typically hold
// far fewer unique colors than pixels.
//
// Every output pixel is an exact member of the palette; no interpolation.
func ApplyFixedPalette(src *raster.Raster, pal palette.Palette) (*raster.Raster, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if len(pal) == 0 {
		return nil, ErrEmptyPalette
	}

	labs := make([]colorspace.Lab, len(pal))
	for i, c := range pal {
		labs[i] = colorspace.RGBToLab(c.R, c.G, c.B)
	}

	// Transparent slot, if the palette reserves one.
	transparentIdx := -1
	for i, c := range pal {
		if c.Transparent {
			transparentIdx = i
			break
		}
	}

	// Memo keyed by packed source RGB, scoped to this call only.
	memo := make(map[uint32]int)

	out := raster.New(src.Width, src.Height)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		r, g, b, a := src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]

		if a == 0 && transparentIdx >= 0 {
			c := pal[transparentIdx]
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = c.R, c.G, c.B, a
			continue
		}

		key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		idx, ok := memo[key]
		if !ok {
			idx = Nearest(labs, colorspace.RGBToLab(r, g, b))
			memo[key] = idx
		}
		c := pal[idx]
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = c.R, c.G, c.B, a
	}
	return out, nil
}

// Nearest returns the index of the entry with minimal Delta-E 2000 distance
// to target. First minimum wins; callers relying on the tie break must pass
// entries in palette slot order.
func Nearest(entries []colorspace.Lab, target colorspace.Lab) int {
	best := 0
	bestDist := colorspace.DeltaE2000(target, entries[0])
	for i := 1; i < len(entries); i++ {
		d := colorspace.DeltaE2000(target, entries[i])
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// NearestColor is a convenience wrapper converting pal once per call. For
// per-pixel loops use ApplyFixedPalette, which precomputes and memoizes.
func NearestColor(pal palette.Palette, c palette.Color) (palette.Color, error) {
	if len(pal) == 0 {
		return palette.Color{}, ErrEmptyPalette
	}
	labs := make([]colorspace.Lab, len(pal))
	for i, e := range pal {
		labs[i] = colorspace.RGBToLab(e.R, e.G, e.B)
	}
	return pal[Nearest(labs, colorspace.RGBToLab(c.R, c.G, c.B))], nil
}
