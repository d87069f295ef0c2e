package quantizer

// Game Boy style mapping: pixels are classified into four contiguous
// brightness bands. Breakpoints sit at 24%, 49% and 74% of full brightness,
// so a 0..255 ramp splits into exactly four sharp bands.
const (
	shadeBreak1 = 61  // 24% of 255
	shadeBreak2 = 124 // 49%
	shadeBreak3 = 188 // 74%
)

// ShadeCount is the number of Game Boy brightness bands.
const ShadeCount = 4

// ShadeIndex classifies a luminance value into a band, 0 = darkest.
func ShadeIndex(luma uint8) int {
	switch {
	case luma <= shadeBreak1:
		return 0
	case luma <= shadeBreak2:
		return 1
	case luma <= shadeBreak3:
		return 2
	default:
		return 3
	}
}

// Luma computes ITU-R BT.601 luminance from an RGB triple, the same weighting
// the original editor uses for its monochrome preview.
func Luma(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}
