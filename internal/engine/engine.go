// Package engine orchestrates palette processing: request validation,
// pre-scaling, routing between fixed matching and adaptive generation,
// content-keyed result caching, and take-latest scheduling.
package engine

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Anarkade/deliaxe-core/internal/adaptive"
	"github.com/Anarkade/deliaxe-core/internal/match"
	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/profile"
	"github.com/Anarkade/deliaxe-core/internal/quantizer"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

// DefaultCacheSize bounds the result cache. Entries are whole processed
// rasters, so the bound is deliberately small.
const DefaultCacheSize = 32

// Request is one complete processing order. It is a value record: the
// scheduler receives a fresh Request each time instead of capturing state,
// so no stale-closure class of bug can exist.
type Request struct {
	Raster  *raster.Raster
	Profile profile.Profile

	// Seed, when non-empty, is a caller-supplied palette whose colors take
	// priority over derived ones (e.g. an indexed source's existing palette).
	Seed palette.Palette

	// PreserveSeedOrder selects the positional path: the seed palette is
	// re-quantized to the profile depth slot-for-slot, without dedup or
	// reordering, and the raster is matched against it directly.
	PreserveSeedOrder bool

	// Resolution, ScaleMode and Anchor size the raster before palette
	// processing. A zero Resolution keeps the source size.
	Resolution profile.Resolution
	ScaleMode  profile.ScaleMode
	Anchor     profile.Anchor

	// Depth overrides the profile's bit depth when non-zero. Used for
	// "original" conversions that only reduce channel precision.
	Depth quantizer.BitDepthSpec
}

// Result pairs the transformed raster with its ordered palette.
type Result struct {
	Raster  *raster.Raster
	Palette palette.Palette
	Key     string
	Cached  bool
}

// Key derives the content-addressed processing key for the request.
func (r *Request) Key() string {
	depth := r.effectiveDepth()
	return Key(r.Raster, r.Profile,
		r.Seed.Serialize()+":"+strconv.FormatBool(r.PreserveSeedOrder),
		r.Resolution.String(),
		r.ScaleMode.String()+"/"+r.Anchor.String(),
		fmt.Sprintf("%d-%d-%d", depth.R, depth.G, depth.B),
	)
}

func (r *Request) effectiveDepth() quantizer.BitDepthSpec {
	if r.Depth != (quantizer.BitDepthSpec{}) {
		return r.Depth
	}
	return r.Profile.Depth()
}

// Engine owns the result cache. Methods are safe for concurrent use; the
// cache is insert-only per key and entries are cloned on the way out.
type Engine struct {
	cache *lru.Cache[string, *cacheEntry]

	// Logf, when set, receives diagnostics such as adaptive fallbacks.
	Logf func(format string, args ...any)
}

// New creates an engine with a bounded LRU result cache.
func New(cacheSize int) *Engine {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	c, _ := lru.New[string, *cacheEntry](cacheSize)
	return &Engine{cache: c}
}

func (e *Engine) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// Process runs a request to completion. Identical requests hit the cache;
// failed computations are never cached. The input raster is never mutated.
func (e *Engine) Process(req Request) (*Result, error) {
	if err := req.Raster.Validate(); err != nil {
		return nil, err
	}

	key := req.Key()
	if entry, ok := e.cache.Get(key); ok {
		return entry.result(key), nil
	}

	src, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	out, pal, err := e.transform(src, req)
	if err != nil {
		return nil, err
	}

	e.cache.Add(key, &cacheEntry{raster: out.Clone(), palette: pal.Clone()})
	return &Result{Raster: out, Palette: pal, Key: key}, nil
}

// transform routes the request to the right processing path. The switch over
// the console set is exhaustive.
func (e *Engine) transform(src *raster.Raster, req Request) (*raster.Raster, palette.Palette, error) {
	depth := req.effectiveDepth()

	// Positional path: keep the seed's slot layout, no dedup, no derivation.
	if req.PreserveSeedOrder && len(req.Seed) > 0 {
		targetLen := req.Profile.Budget()
		if targetLen == 0 {
			targetLen = len(req.Seed)
		}
		pal := palette.PreserveOrderPad(req.Seed, depth, targetLen)
		out, err := match.ApplyFixedPalette(src, pal)
		if err != nil {
			return nil, nil, err
		}
		return out, pal, nil
	}

	switch req.Profile.Console {
	case profile.Original:
		out := src.Clone()
		depth.ApplyBuffer(out.Pix)
		return out, nil, nil

	case profile.GameBoy, profile.GameBoyBackground, profile.GameBoyRealistic:
		ramp := req.Profile.Fallback()
		return applyShadeRamp(src, ramp), ramp, nil

	case profile.MegaDrive, profile.GameGear, profile.MasterSystem:
		res, err := adaptive.Process(src, req.Profile, req.Seed)
		if err == nil {
			return res.Raster, res.Palette, nil
		}
		// Degraded path: match against the console preset table instead of
		// failing the whole request.
		e.logf("adaptive %s generation failed, using preset table: %v", req.Profile.Console, err)
		pal := req.Profile.Fallback()
		out, ferr := match.ApplyFixedPalette(src, pal)
		if ferr != nil {
			return nil, nil, fmt.Errorf("engine: fallback after %v: %w", err, ferr)
		}
		return out, pal, nil

	case profile.FixedPreset:
		pal := req.Profile.Fallback()
		if len(pal) == 0 {
			return nil, nil, fmt.Errorf("engine: unknown preset %q", req.Profile.PresetName)
		}
		out, err := match.ApplyFixedPalette(src, pal)
		if err != nil {
			return nil, nil, err
		}
		return out, pal, nil
	}
	return nil, nil, fmt.Errorf("engine: unhandled console %v", req.Profile.Console)
}

// applyShadeRamp classifies each pixel's luminance into four bands and writes
// the corresponding ramp entry. Ramp order is darkest first; alpha passes
// through.
func applyShadeRamp(src *raster.Raster, ramp palette.Palette) *raster.Raster {
	out := raster.New(src.Width, src.Height)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		luma := quantizer.Luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		c := ramp[quantizer.ShadeIndex(luma)]
		out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.R, c.G, c.B
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out
}

// Key builds a processing key from a raster and pre-serialized parameters.
// Exposed for the scheduler and tests.
func Key(r *raster.Raster, prof profile.Profile, params ...string) string {
	all := append([]string{
		prof.Key(),
		strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height),
	}, params...)
	return keyOf(r.Pix, all...)
}
