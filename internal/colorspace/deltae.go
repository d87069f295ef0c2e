package colorspace

import "math"

const pow25to7 = 25 * 25 * 25 * 25 * 25 * 25 * 25 // 25^7

// DeltaE2000 computes the CIEDE2000 color difference between two Lab colors
// with kL = kC = kH = 1 (Sharma, Wu & Dalal 2005 formulation, including the
// hue wraparound branches and the 275° rotation term). Symmetric and zero for
// identical inputs.
func DeltaE2000(c1, c2 Lab) float64 {
	chroma1 := math.Hypot(c1.A, c1.B)
	chroma2 := math.Hypot(c2.A, c2.B)
	cBar := (chroma1 + chroma2) / 2

	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25to7)))

	a1p := (1 + g) * c1.A
	a2p := (1 + g) * c2.A
	c1p := math.Hypot(a1p, c1.B)
	c2p := math.Hypot(a2p, c2.B)

	h1p := hueAngle(c1.B, a1p)
	h2p := hueAngle(c2.B, a2p)

	deltaL := c2.L - c1.L
	deltaC := c2p - c1p

	// Hue difference with wraparound at 180°.
	var deltaSmallH float64
	switch {
	case c1p*c2p == 0:
		deltaSmallH = 0
	case math.Abs(h2p-h1p) <= 180:
		deltaSmallH = h2p - h1p
	case h2p-h1p > 180:
		deltaSmallH = h2p - h1p - 360
	default:
		deltaSmallH = h2p - h1p + 360
	}
	deltaH := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(deltaSmallH)/2)

	lBarP := (c1.L + c2.L) / 2
	cBarP := (c1p + c2p) / 2

	// Mean hue, again with wraparound handling.
	var hBarP float64
	switch {
	case c1p*c2p == 0:
		hBarP = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarP = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarP = (h1p + h2p + 360) / 2
	default:
		hBarP = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(rad(hBarP-30)) +
		0.24*math.Cos(rad(2*hBarP)) +
		0.32*math.Cos(rad(3*hBarP+6)) -
		0.20*math.Cos(rad(4*hBarP-63))

	deltaTheta := 30 * math.Exp(-math.Pow((hBarP-275)/25, 2))
	cBarP7 := math.Pow(cBarP, 7)
	rc := 2 * math.Sqrt(cBarP7/(cBarP7+pow25to7))
	rt := -math.Sin(rad(2*deltaTheta)) * rc

	lMinus50Sq := (lBarP - 50) * (lBarP - 50)
	sl := 1 + 0.015*lMinus50Sq/math.Sqrt(20+lMinus50Sq)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	lTerm := deltaL / sl
	cTerm := deltaC / sc
	hTerm := deltaH / sh

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// hueAngle returns atan2(b, a') in degrees normalized to [0, 360).
func hueAngle(b, ap float64) float64 {
	if b == 0 && ap == 0 {
		return 0
	}
	h := math.Atan2(b, ap) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
