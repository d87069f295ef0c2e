// Package raster defines the pixel buffer model the engine operates on: a
// width × height RGBA byte buffer with copy-on-write semantics. Transforms
// never mutate a caller's raster in place; every operation returns a fresh
// buffer so the UI can keep original and processed images side by side.
package raster

import (
	"errors"
	"fmt"
	"image"
)

// MaxDimension is the safety ceiling on either axis. Requests beyond it are
// rejected before any processing begins.
const MaxDimension = 8192

var (
	// ErrEmpty is returned for zero-sized rasters.
	ErrEmpty = errors.New("raster: zero-sized raster")
	// ErrTooLarge is returned when a dimension exceeds MaxDimension.
	ErrTooLarge = fmt.Errorf("raster: dimension exceeds %d", MaxDimension)
)

// Raster is an RGBA pixel buffer. Pix holds width*height*4 bytes in row-major
// order, non-premultiplied.
type Raster struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a zeroed raster.
func New(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Validate checks the dimensional preconditions shared by every engine
// operation.
func (r *Raster) Validate() error {
	if r == nil || r.Width <= 0 || r.Height <= 0 || len(r.Pix) == 0 {
		return ErrEmpty
	}
	if r.Width > MaxDimension || r.Height > MaxDimension {
		return ErrTooLarge
	}
	if len(r.Pix) != r.Width*r.Height*4 {
		return fmt.Errorf("raster: buffer length %d does not match %dx%d", len(r.Pix), r.Width, r.Height)
	}
	return nil
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	out := &Raster{Width: r.Width, Height: r.Height, Pix: make([]byte, len(r.Pix))}
	copy(out.Pix, r.Pix)
	return out
}

// At returns the RGBA bytes of the pixel at (x, y).
func (r *Raster) At(x, y int) (uint8, uint8, uint8, uint8) {
	i := (y*r.Width + x) * 4
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3]
}

// Set writes the pixel at (x, y).
func (r *Raster) Set(x, y int, red, green, blue, alpha uint8) {
	i := (y*r.Width + x) * 4
	r.Pix[i] = red
	r.Pix[i+1] = green
	r.Pix[i+2] = blue
	r.Pix[i+3] = alpha
}

// FromImage converts any image.Image into a raster. NRGBA and RGBA sources
// copy row slices directly; everything else goes through the generic At path.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := New(w, h)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := src.Pix[(y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride:]
			row = row[(bounds.Min.X-src.Rect.Min.X)*4:]
			copy(out.Pix[y*w*4:(y+1)*w*4], row[:w*4])
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(bounds.Min.X, y+bounds.Min.Y)
			di := y * w * 4
			for x := 0; x < w; x++ {
				a := src.Pix[si+3]
				if a == 0 {
					out.Pix[di], out.Pix[di+1], out.Pix[di+2], out.Pix[di+3] = 0, 0, 0, 0
				} else {
					// Un-premultiply.
					out.Pix[di] = uint8(uint32(src.Pix[si]) * 255 / uint32(a))
					out.Pix[di+1] = uint8(uint32(src.Pix[si+1]) * 255 / uint32(a))
					out.Pix[di+2] = uint8(uint32(src.Pix[si+2]) * 255 / uint32(a))
					out.Pix[di+3] = a
				}
				si += 4
				di += 4
			}
		}
	default:
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := img.At(x, y).RGBA()
				out.Pix[i] = uint8(r >> 8)
				out.Pix[i+1] = uint8(g >> 8)
				out.Pix[i+2] = uint8(b >> 8)
				out.Pix[i+3] = uint8(a >> 8)
				i += 4
			}
		}
	}
	return out
}

// ToImage converts the raster to an NRGBA image sharing no memory with it.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	copy(img.Pix, r.Pix)
	return img
}
