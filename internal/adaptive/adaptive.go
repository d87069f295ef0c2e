// Package adaptive derives console-constrained palettes from image content.
// All three console profiles share one pipeline: median-cut candidate
// derivation, snapping candidates into the console's channel-depth domain,
// seed-palette merging, and perceptual remapping. The synchronous and
// worker-offloaded callers in the engine both invoke this same code, so the
// two paths produce identical palettes for identical input by construction.
package adaptive

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/Anarkade/deliaxe-core/internal/match"
	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/profile"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

// ErrNotAdaptive is returned when the profile has no adaptive generator.
var ErrNotAdaptive = errors.New("adaptive: profile has no adaptive generator")

// Result pairs a remapped raster with the ordered palette it uses.
type Result struct {
	Raster  *raster.Raster
	Palette palette.Palette
}

// Process derives a palette for the profile and remaps the raster onto it.
// When seed is non-empty its colors are snapped to the console domain and
// kept, in order, ahead of freshly derived colors; the remaining budget is
// filled by derivation and padded with opaque black. The returned palette
// always has exactly prof.Budget() entries.
func Process(src *raster.Raster, prof profile.Profile, seed palette.Palette) (*Result, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	pal, err := Generate(src, prof, seed)
	if err != nil {
		return nil, err
	}
	out, err := match.ApplyFixedPalette(src, pal)
	if err != nil {
		return nil, err
	}
	return &Result{Raster: out, Palette: pal}, nil
}

// Generate derives the ordered palette without remapping. Median-cut failures
// inside the quantizer library surface as errors rather than panics so the
// engine can fall back to the console preset table.
func Generate(src *raster.Raster, prof profile.Profile, seed palette.Palette) (pal palette.Palette, err error) {
	if !prof.Adaptive() {
		return nil, ErrNotAdaptive
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			pal, err = nil, fmt.Errorf("adaptive: median cut failed: %v", r)
		}
	}()

	budget := prof.Budget()
	depth := prof.Depth()

	// Seed colors are fixed candidates: snap them into the console domain but
	// keep their relative order.
	domainSeed := make(palette.Palette, 0, len(seed))
	for _, c := range seed {
		domainSeed = append(domainSeed, c.Quantize(depth))
	}

	q := quantize.MedianCutQuantizer{Aggregation: quantize.Mean}
	derived := q.Quantize(make(color.Palette, 0, budget), src.ToImage())

	// Snap derived candidates to the domain. Depth reduction may collapse
	// distinct candidates; MergePreserve dedups and pads to the exact budget.
	domainDerived := make(palette.Palette, 0, len(derived))
	for _, c := range palette.FromStdPalette(derived) {
		domainDerived = append(domainDerived, c.Quantize(depth))
	}

	return palette.MergePreserve(domainSeed, domainDerived, budget), nil
}
