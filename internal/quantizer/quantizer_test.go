package quantizer

import (
	"math"
	"testing"
)

func TestChannel_Idempotent(t *testing.T) {
	for bits := 1; bits <= 8; bits++ {
		for v := 0; v <= 255; v++ {
			once := Channel(uint8(v), bits)
			twice := Channel(once, bits)
			if once != twice {
				t.Fatalf("bits=%d v=%d: %d re-quantized to %d", bits, v, once, twice)
			}
		}
	}
}

func TestChannel_FullDepthUnchanged(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if got := Channel(uint8(v), 8); got != uint8(v) {
			t.Fatalf("bits=8 v=%d: got %d", v, got)
		}
	}
}

func TestChannel_BoundedSteps(t *testing.T) {
	seen := make(map[uint8]bool)
	for v := 0; v <= 255; v++ {
		seen[Channel(uint8(v), 3)] = true
	}
	if len(seen) != 8 {
		t.Fatalf("bits=3: want exactly 8 distinct outputs, got %d", len(seen))
	}
	if !seen[0] || !seen[255] {
		t.Error("bits=3: output range must span 0..255")
	}
	// Steps must be evenly spaced at 255/7.
	for step := 0; step < 8; step++ {
		want := uint8(math.Round(float64(step) / 7 * 255))
		if !seen[want] {
			t.Errorf("bits=3: missing step value %d", want)
		}
	}
}

func TestBitDepthSpec_Apply(t *testing.T) {
	spec := BitDepthSpec{R: 3, G: 3, B: 3}
	r, g, b := spec.Apply(200, 100, 50)
	for _, v := range []uint8{r, g, b} {
		if Channel(v, 3) != v {
			t.Errorf("applied value %d not in 3-bit domain", v)
		}
	}
	if Full.IsFull() != true {
		t.Error("Full must report IsFull")
	}
}

func TestBitDepthSpec_ApplyBuffer(t *testing.T) {
	pix := []byte{200, 100, 50, 77, 10, 250, 128, 0}
	spec := BitDepthSpec{R: 2, G: 2, B: 2}
	spec.ApplyBuffer(pix)
	if pix[3] != 77 || pix[7] != 0 {
		t.Error("alpha bytes must pass through untouched")
	}
	for _, i := range []int{0, 1, 2, 4, 5, 6} {
		if Channel(pix[i], 2) != pix[i] {
			t.Errorf("byte %d: %d not in 2-bit domain", i, pix[i])
		}
	}
}

func TestShadeIndex_Bands(t *testing.T) {
	// A 0..255 ramp must split into exactly four contiguous bands with sharp
	// transitions at the 24/49/74% breakpoints.
	prev := 0
	transitions := 0
	for v := 0; v <= 255; v++ {
		idx := ShadeIndex(uint8(v))
		if idx < prev {
			t.Fatalf("band index decreased at %d", v)
		}
		if idx > prev {
			transitions++
			switch v {
			case shadeBreak1 + 1, shadeBreak2 + 1, shadeBreak3 + 1:
			default:
				t.Errorf("transition at %d, want breakpoints only", v)
			}
			prev = idx
		}
	}
	if transitions != 3 {
		t.Fatalf("want 3 transitions (4 bands), got %d", transitions)
	}
}

func TestLuma_Weights(t *testing.T) {
	if Luma(255, 255, 255) != 255 {
		t.Errorf("white luma = %d", Luma(255, 255, 255))
	}
	if Luma(0, 0, 0) != 0 {
		t.Errorf("black luma = %d", Luma(0, 0, 0))
	}
	if g, b := Luma(0, 255, 0), Luma(0, 0, 255); g <= b {
		t.Errorf("green (%d) must outweigh blue (%d)", g, b)
	}
}
