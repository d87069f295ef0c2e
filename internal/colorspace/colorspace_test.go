package colorspace

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestRGBToLab_Anchors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantL   float64
	}{
		{"white", 255, 255, 255, 100},
		{"black", 0, 0, 0, 0},
		{"mid grey", 119, 119, 119, 50.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lab := RGBToLab(tt.r, tt.g, tt.b)
			if math.Abs(lab.L-tt.wantL) > 1.0 {
				t.Errorf("L = %.3f, want ~%.1f", lab.L, tt.wantL)
			}
		})
	}

	// Greys carry no chroma.
	for _, v := range []uint8{0, 64, 128, 200, 255} {
		lab := RGBToLab(v, v, v)
		if math.Abs(lab.A) > 0.01 || math.Abs(lab.B) > 0.01 {
			t.Errorf("grey %d: a=%.4f b=%.4f, want 0", v, lab.A, lab.B)
		}
	}
}

// Cross-check the conversion against go-colorful, which normalizes L, a, b
// by 100.
func TestRGBToLab_MatchesColorful(t *testing.T) {
	for _, c := range [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{12, 200, 99}, {250, 128, 1}, {1, 1, 1}, {254, 254, 255},
	} {
		lab := RGBToLab(c[0], c[1], c[2])
		cf := colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
		l, a, b := cf.Lab()
		if math.Abs(lab.L/100-l) > 1e-3 || math.Abs(lab.A/100-a) > 1e-3 || math.Abs(lab.B/100-b) > 1e-3 {
			t.Errorf("rgb(%d,%d,%d): got (%.4f %.4f %.4f), colorful (%.4f %.4f %.4f)",
				c[0], c[1], c[2], lab.L/100, lab.A/100, lab.B/100, l, a, b)
		}
	}
}

func TestDeltaE2000_Identity(t *testing.T) {
	for _, c := range [][3]uint8{{0, 0, 0}, {255, 255, 255}, {12, 200, 99}, {128, 128, 128}} {
		lab := RGBToLab(c[0], c[1], c[2])
		if d := DeltaE2000(lab, lab); d != 0 {
			t.Errorf("deltaE(%v, %v) = %g, want 0", lab, lab, d)
		}
	}
}

func TestDeltaE2000_Symmetry(t *testing.T) {
	colors := [][3]uint8{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 0},
		{17, 42, 99}, {200, 180, 12}, {0, 0, 0}, {255, 255, 255},
	}
	for i, a := range colors {
		for j, b := range colors {
			if i == j {
				continue
			}
			la, lb := RGBToLab(a[0], a[1], a[2]), RGBToLab(b[0], b[1], b[2])
			d1, d2 := DeltaE2000(la, lb), DeltaE2000(lb, la)
			if math.Abs(d1-d2) > 1e-9 {
				t.Errorf("asymmetric: %v vs %v: %.12f != %.12f", a, b, d1, d2)
			}
		}
	}
}

// The Sharma, Wu & Dalal test dataset exercises every branch of the formula
// (hue wraparound, the 275° rotation term, zero-chroma pairs). A sample of
// pairs with published expected values pins the implementation.
func TestDeltaE2000_ReferencePairs(t *testing.T) {
	tests := []struct {
		lab1, lab2 Lab
		want       float64
	}{
		{Lab{50, 2.6772, -79.7751}, Lab{50, 0, -82.7485}, 2.0425},
		{Lab{50, 3.1571, -77.2803}, Lab{50, 0, -82.7485}, 2.8615},
		{Lab{50, 2.8361, -74.0200}, Lab{50, 0, -82.7485}, 3.4412},
		{Lab{50, -1.3802, -84.2814}, Lab{50, 0, -82.7485}, 1.0000},
		{Lab{50, 2.5, 0}, Lab{50, 0, -2.5}, 4.3065},
		{Lab{50, 2.5, 0}, Lab{73, 25, -18}, 27.1492},
		{Lab{50, 2.5, 0}, Lab{50, 3.2592, 0.3350}, 1.0000},
		{Lab{60.2574, -34.0099, 36.2677}, Lab{60.4626, -34.1751, 39.4387}, 1.2644},
		{Lab{90.8027, -2.0831, 1.4410}, Lab{91.1528, -1.6435, 0.0447}, 1.4441},
		{Lab{2.0776, 0.0795, -1.1350}, Lab{0.9033, -0.0636, -0.5514}, 0.9082},
	}
	for _, tt := range tests {
		got := DeltaE2000(tt.lab1, tt.lab2)
		if math.Abs(got-tt.want) > 1e-4 {
			t.Errorf("deltaE(%v, %v) = %.4f, want %.4f", tt.lab1, tt.lab2, got, tt.want)
		}
	}
}

// go-colorful ships the same formula; the two implementations must agree.
func TestDeltaE2000_MatchesColorful(t *testing.T) {
	colors := [][3]uint8{
		{255, 0, 0}, {0, 128, 255}, {40, 200, 10}, {255, 255, 255},
		{0, 0, 0}, {130, 130, 131}, {250, 1, 128},
	}
	for i, a := range colors {
		for _, b := range colors[i+1:] {
			la, lb := RGBToLab(a[0], a[1], a[2]), RGBToLab(b[0], b[1], b[2])
			ca := colorful.Color{R: float64(a[0]) / 255, G: float64(a[1]) / 255, B: float64(a[2]) / 255}
			cb := colorful.Color{R: float64(b[0]) / 255, G: float64(b[1]) / 255, B: float64(b[2]) / 255}
			got := DeltaE2000(la, lb)
			want := ca.DistanceCIEDE2000(cb)
			if math.Abs(got-want) > 0.05 {
				t.Errorf("%v vs %v: deltaE %.4f, colorful %.4f", a, b, got, want)
			}
		}
	}
}

func BenchmarkDeltaE2000(b *testing.B) {
	l1 := RGBToLab(12, 200, 99)
	l2 := RGBToLab(250, 128, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DeltaE2000(l1, l2)
	}
}
