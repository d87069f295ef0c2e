package palette

import "github.com/Anarkade/deliaxe-core/internal/quantizer"

// MergePreserve combines a preferred palette with a fallback into a palette of
// exactly targetLen entries. Preferred colors keep their relative order and
// are appended first; duplicates (exact RGB + transparency equality) are
// skipped; fallback colors fill the remaining slots under the same rule;
// opaque black pads the tail. The merged head never contains the same color
// twice; only tail padding may repeat an already-present black.
//
// This is the path used when the user switches palettes and the previously
// chosen colors should survive in their original slots where room permits.
func MergePreserve(preferred, fallback Palette, targetLen int) Palette {
	if targetLen <= 0 {
		return Palette{}
	}
	out := make(Palette, 0, targetLen)
	for _, c := range preferred {
		if len(out) == targetLen {
			return out
		}
		if !out.Contains(c) {
			out = append(out, c)
		}
	}
	for _, c := range fallback {
		if len(out) == targetLen {
			return out
		}
		if !out.Contains(c) {
			out = append(out, c)
		}
	}
	for len(out) < targetLen {
		out = append(out, Black)
	}
	return out
}

// PreserveOrderPad re-quantizes an existing ordered palette to a new bit depth
// without reordering or deduplicating, then pads with opaque black (or
// truncates, keeping the earliest slots) to exactly targetLen entries.
//
// Unlike MergePreserve this keeps duplicate entries: hardware that reads
// palette slots positionally needs the original slot layout to stay stable
// even when depth reduction collapses two slots onto the same color.
func PreserveOrderPad(p Palette, spec quantizer.BitDepthSpec, targetLen int) Palette {
	if targetLen <= 0 {
		return Palette{}
	}
	out := make(Palette, 0, targetLen)
	for _, c := range p {
		if len(out) == targetLen {
			break
		}
		out = append(out, c.Quantize(spec))
	}
	for len(out) < targetLen {
		out = append(out, Black)
	}
	return out
}
