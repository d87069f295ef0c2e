package engine

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/Anarkade/deliaxe-core/internal/profile"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

// prepare sizes the source raster to the request's target resolution before
// any palette work. Resampling is nearest-neighbor: retro output wants hard
// pixel edges, not interpolated colors that would widen the palette.
func (e *Engine) prepare(req Request) (*raster.Raster, error) {
	res := req.Resolution
	if res.IsZero() || (res.Width == req.Raster.Width && res.Height == req.Raster.Height) {
		return req.Raster.Clone(), nil
	}

	img := req.Raster.ToImage()
	var fitted *image.NRGBA

	switch req.ScaleMode {
	case profile.Stretch:
		fitted = imaging.Resize(img, res.Width, res.Height, imaging.NearestNeighbor)
	case profile.FitWidth:
		scaled := imaging.Resize(img, res.Width, 0, imaging.NearestNeighbor)
		fitted = fitCanvas(scaled, res, req.Anchor)
	case profile.NoScale:
		fitted = fitCanvas(img, res, req.Anchor)
	default:
		fitted = fitCanvas(img, res, req.Anchor)
	}

	return raster.FromImage(fitted), nil
}

// fitCanvas crops an oversized image (keeping the anchored region) or pastes
// an undersized one onto an opaque black canvas at the anchored position.
func fitCanvas(img *image.NRGBA, res profile.Resolution, anchor profile.Anchor) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	if w >= res.Width && h >= res.Height {
		return imaging.CropAnchor(img, res.Width, res.Height, imagingAnchor(anchor))
	}

	// Crop the overflowing axis first so the paste below always fits.
	cw, ch := w, h
	if cw > res.Width {
		cw = res.Width
	}
	if ch > res.Height {
		ch = res.Height
	}
	cropped := imaging.CropAnchor(img, cw, ch, imagingAnchor(anchor))

	canvas := imaging.New(res.Width, res.Height, color.NRGBA{A: 255})
	fx, fy := anchor.Fractions()
	x := int(fx * float64(res.Width-cw))
	y := int(fy * float64(res.Height-ch))
	return imaging.Paste(canvas, cropped, image.Pt(x, y))
}

func imagingAnchor(a profile.Anchor) imaging.Anchor {
	switch a {
	case profile.AnchorTopLeft:
		return imaging.TopLeft
	case profile.AnchorTop:
		return imaging.Top
	case profile.AnchorTopRight:
		return imaging.TopRight
	case profile.AnchorLeft:
		return imaging.Left
	case profile.AnchorCenter:
		return imaging.Center
	case profile.AnchorRight:
		return imaging.Right
	case profile.AnchorBottomLeft:
		return imaging.BottomLeft
	case profile.AnchorBottom:
		return imaging.Bottom
	case profile.AnchorBottomRight:
		return imaging.BottomRight
	}
	return imaging.Center
}
