// Package quantizer implements per-channel bit-depth reduction for emulating
// limited console color resolution, plus the brightness-band shade mapper used
// by the Game Boy profiles.
package quantizer

import "math"

// Channel reduces an 8-bit channel value to bits of precision and re-expands
// it to the 8-bit range. bits outside 1..7 return the value unchanged.
// Idempotent: re-quantizing at the same depth is a no-op.
func Channel(value uint8, bits int) uint8 {
	if bits >= 8 || bits < 1 {
		return value
	}
	steps := float64(int(1)<<bits - 1)
	step := math.Round(float64(value) / 255 * steps)
	return uint8(math.Round(step / steps * 255))
}

// Levels returns the number of distinct output values Channel produces for
// the given depth.
func Levels(bits int) int {
	if bits >= 8 || bits < 1 {
		return 256
	}
	return 1 << bits
}

// BitDepthSpec carries per-channel bit counts, e.g. {3,3,3} for Mega Drive.
type BitDepthSpec struct {
	R, G, B int
}

// Full is the unconstrained 8-8-8 depth.
var Full = BitDepthSpec{8, 8, 8}

// IsFull reports whether the spec leaves all channels untouched.
func (s BitDepthSpec) IsFull() bool {
	return s.R >= 8 && s.G >= 8 && s.B >= 8
}

// Apply quantizes an RGB triple to the spec's depth.
func (s BitDepthSpec) Apply(r, g, b uint8) (uint8, uint8, uint8) {
	return Channel(r, s.R), Channel(g, s.G), Channel(b, s.B)
}

// ApplyBuffer quantizes an RGBA byte buffer in place, leaving alpha alone.
// Callers own the buffer; the engine only ever passes freshly copied pixels.
func (s BitDepthSpec) ApplyBuffer(pix []byte) {
	if s.IsFull() {
		return
	}
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = Channel(pix[i], s.R)
		pix[i+1] = Channel(pix[i+1], s.G)
		pix[i+2] = Channel(pix[i+2], s.B)
	}
}
