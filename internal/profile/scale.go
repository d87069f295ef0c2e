package profile

import "fmt"

// ScaleMode controls how a source raster is fitted to a target resolution
// before palette processing.
type ScaleMode int

const (
	// NoScale crops or letterboxes without resampling.
	NoScale ScaleMode = iota
	// Stretch resamples to the exact target, ignoring aspect ratio.
	Stretch
	// FitWidth resamples so the width matches, cropping or padding height.
	FitWidth
)

var scaleModeNames = map[ScaleMode]string{
	NoScale:  "no-scale",
	Stretch:  "stretch",
	FitWidth: "fit-width",
}

func (m ScaleMode) String() string {
	if n, ok := scaleModeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("scale(%d)", int(m))
}

// ParseScaleMode resolves a CLI scale mode name.
func ParseScaleMode(name string) (ScaleMode, error) {
	for m, n := range scaleModeNames {
		if n == name {
			return m, nil
		}
	}
	return NoScale, fmt.Errorf("profile: unknown scale mode %q", name)
}

// Anchor selects which part of the source survives a crop, as a 3×3 grid of
// alignment positions.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

var anchorNames = map[Anchor]string{
	AnchorTopLeft:     "top-left",
	AnchorTop:         "top",
	AnchorTopRight:    "top-right",
	AnchorLeft:        "left",
	AnchorCenter:      "center",
	AnchorRight:       "right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottom:      "bottom",
	AnchorBottomRight: "bottom-right",
}

func (a Anchor) String() string {
	if n, ok := anchorNames[a]; ok {
		return n
	}
	return fmt.Sprintf("anchor(%d)", int(a))
}

// ParseAnchor resolves a CLI anchor name.
func ParseAnchor(name string) (Anchor, error) {
	for a, n := range anchorNames {
		if n == name {
			return a, nil
		}
	}
	return AnchorCenter, fmt.Errorf("profile: unknown anchor %q", name)
}

// Fractions returns the horizontal and vertical alignment of the anchor as
// 0, 0.5 or 1.
func (a Anchor) Fractions() (fx, fy float64) {
	switch a % 3 {
	case 0:
		fx = 0
	case 1:
		fx = 0.5
	case 2:
		fx = 1
	}
	switch a / 3 {
	case 0:
		fy = 0
	case 1:
		fy = 0.5
	case 2:
		fy = 1
	}
	return fx, fy
}

// Resolution is a target output size in pixels. Zero means "keep source".
type Resolution struct {
	Width  int
	Height int
}

// IsZero reports whether the resolution leaves the source size untouched.
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

func (r Resolution) String() string {
	if r.IsZero() {
		return "source"
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// NativeResolution returns the period-accurate screen size for a console, or
// a zero resolution when the console has no single native mode worth forcing.
func NativeResolution(c Console) Resolution {
	switch c {
	case GameBoy, GameBoyBackground, GameBoyRealistic:
		return Resolution{160, 144}
	case MegaDrive:
		return Resolution{320, 224}
	case MasterSystem:
		return Resolution{256, 192}
	case GameGear:
		return Resolution{160, 144}
	case Original, FixedPreset:
		return Resolution{}
	}
	return Resolution{}
}
