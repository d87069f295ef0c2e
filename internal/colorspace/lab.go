// Package colorspace implements the sRGB → CIE Lab conversion and the
// CIEDE2000 perceptual distance used for nearest-color matching. Both are
// pure numeric functions; every matching decision in the engine flows through
// them, so the formulas follow the published definitions exactly.
package colorspace

import "math"

// Lab is a color in CIE L*a*b* space (D65 white point).
type Lab struct {
	L, A, B float64
}

// D65 reference white, 2° observer.
const (
	refX = 95.047
	refY = 100.0
	refZ = 108.883
)

// RGBToLab converts 8-bit sRGB channels to CIE Lab: gamma decode to linear
// RGB, linear transform to XYZ (sRGB primaries, D65), then the Lab companding.
func RGBToLab(r, g, b uint8) Lab {
	rl := srgbToLinear(float64(r) / 255)
	gl := srgbToLinear(float64(g) / 255)
	bl := srgbToLinear(float64(b) / 255)

	x := (rl*0.4124564 + gl*0.3575761 + bl*0.1804375) * 100
	y := (rl*0.2126729 + gl*0.7151522 + bl*0.0721750) * 100
	z := (rl*0.0193339 + gl*0.1191920 + bl*0.9503041) * 100

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	const (
		epsilon = 216.0 / 24389.0
		kappa   = 24389.0 / 27.0
	)
	if t > epsilon {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}
