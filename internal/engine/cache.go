package engine

import (
	"github.com/Anarkade/deliaxe-core/internal/hasher"
	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

// cacheEntry is an immutable stored result. Entries are written once and
// cloned on read, so a cached raster can never alias a buffer the caller
// mutates (write-then-publish, never mutate-in-place).
type cacheEntry struct {
	raster  *raster.Raster
	palette palette.Palette
}

func (e *cacheEntry) result(key string) *Result {
	return &Result{
		Raster:  e.raster.Clone(),
		Palette: e.palette.Clone(),
		Key:     key,
		Cached:  true,
	}
}

func keyOf(pix []byte, params ...string) string {
	return hasher.Key(pix, params...)
}
