package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Anarkade/deliaxe-core/internal/engine"
	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/profile"
	"github.com/Anarkade/deliaxe-core/internal/quantizer"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

var (
	convertOut        string
	convertProfile    string
	convertScale      string
	convertAnchor     string
	convertWidth      int
	convertHeight     int
	convertNative     bool
	convertSeed       string
	convertKeepOrder  bool
	convertDepth      string
	convertShowColors bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_image>",
	Short: "Convert an image to a retro console palette",
	Long: `Decodes an image (png, jpg, gif, webp, bmp, tiff), optionally scales it
to a target resolution, applies the selected console profile and writes
the result as an indexed PNG next to a palette report.

Adaptive profiles (megadrive, gamegear, mastersystem) derive the palette
from image content inside the console's color domain; Game Boy profiles
map brightness bands onto a fixed shade ramp.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: <input>.<profile>.png)")
	convertCmd.Flags().StringVarP(&convertProfile, "profile", "p", "megadrive", "target profile or preset name")
	convertCmd.Flags().StringVar(&convertScale, "scale", "no-scale", "scale mode: no-scale, stretch, fit-width")
	convertCmd.Flags().StringVar(&convertAnchor, "anchor", "center", "crop/pad anchor (3x3 grid, e.g. top-left)")
	convertCmd.Flags().IntVar(&convertWidth, "width", 0, "target width (0 = keep source)")
	convertCmd.Flags().IntVar(&convertHeight, "height", 0, "target height (0 = keep source)")
	convertCmd.Flags().BoolVar(&convertNative, "native", false, "use the console's native resolution")
	convertCmd.Flags().StringVar(&convertSeed, "seed", "", "seed palette as comma-separated hex colors, kept ahead of derived ones")
	convertCmd.Flags().BoolVar(&convertKeepOrder, "keep-order", false, "preserve seed palette slot order exactly (no dedup, no derivation)")
	convertCmd.Flags().StringVar(&convertDepth, "depth", "", "channel bit depth override, e.g. 3-3-3")
	convertCmd.Flags().BoolVar(&convertShowColors, "colors", false, "print the resulting palette")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	inputPath := args[0]
	start := time.Now()

	prof, err := profile.Parse(convertProfile)
	if err != nil {
		return err
	}

	req := engine.Request{Profile: prof}

	req.ScaleMode, err = profile.ParseScaleMode(convertScale)
	if err != nil {
		return err
	}
	req.Anchor, err = profile.ParseAnchor(convertAnchor)
	if err != nil {
		return err
	}

	switch {
	case convertNative:
		req.Resolution = profile.NativeResolution(prof.Console)
	case convertWidth > 0 && convertHeight > 0:
		req.Resolution = profile.Resolution{Width: convertWidth, Height: convertHeight}
	case convertWidth > 0 || convertHeight > 0:
		return fmt.Errorf("both --width and --height are required for a custom resolution")
	}

	if convertSeed != "" {
		req.Seed, err = parseHexPalette(convertSeed)
		if err != nil {
			return err
		}
	}
	req.PreserveSeedOrder = convertKeepOrder

	if convertDepth != "" {
		req.Depth, err = parseDepth(convertDepth)
		if err != nil {
			return err
		}
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}
	req.Raster = raster.FromImage(img)

	logVerbose("input:   %s (%s, %dx%d)", inputPath, format, req.Raster.Width, req.Raster.Height)
	logVerbose("profile: %s (budget=%d, depth=%v)", prof.Key(), prof.Budget(), prof.Depth())
	if !req.Resolution.IsZero() {
		logVerbose("target:  %s %s anchor=%s", req.Resolution, req.ScaleMode, req.Anchor)
	}

	eng := engine.New(engine.DefaultCacheSize)
	eng.Logf = logVerbose

	res, err := eng.Process(req)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	outPath := convertOut
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, ext(inputPath)) + "." + prof.Console.String() + ".png"
	}
	if err := writeIndexedPNG(outPath, res.Raster, res.Palette); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("  %s -> %s\n", inputPath, outPath)
	fmt.Printf("  %dx%d, %d palette entries, key %s, %s\n",
		res.Raster.Width, res.Raster.Height, len(res.Palette),
		res.Key[:8], time.Since(start).Round(time.Millisecond))
	if convertShowColors && len(res.Palette) > 0 {
		printPalette(res.Palette)
	}
	return nil
}

// writeIndexedPNG writes the raster as a paletted PNG when it has a bounded
// palette, falling back to plain NRGBA for unconstrained output. Palette slot
// order is preserved in the PLTE chunk.
func writeIndexedPNG(path string, r *raster.Raster, pal palette.Palette) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if len(pal) == 0 || len(pal) > 256 {
		return png.Encode(out, r.ToImage())
	}

	img := image.NewPaletted(image.Rect(0, 0, r.Width, r.Height), pal.StdPalette())
	for i, j := 0, 0; i+3 < len(r.Pix); i, j = i+4, j+1 {
		idx := pal.IndexOf(palette.RGB(r.Pix[i], r.Pix[i+1], r.Pix[i+2]))
		if idx < 0 {
			idx = 0
		}
		img.Pix[j] = uint8(idx)
	}
	return png.Encode(out, img)
}

func printPalette(pal palette.Palette) {
	fmt.Println("  Palette (slot order):")
	for i, c := range pal {
		fmt.Printf("    %2d  %s\n", i, c)
	}
}

func parseHexPalette(s string) (palette.Palette, error) {
	var pal palette.Palette
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimPrefix(strings.TrimSpace(tok), "#")
		if len(tok) != 6 {
			return nil, fmt.Errorf("seed color %q: want 6 hex digits", tok)
		}
		var r, g, b uint8
		if _, err := fmt.Sscanf(tok, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("seed color %q: %w", tok, err)
		}
		pal = append(pal, palette.RGB(r, g, b))
	}
	return pal, nil
}

func parseDepth(s string) (quantizer.BitDepthSpec, error) {
	var spec quantizer.BitDepthSpec
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &spec.R, &spec.G, &spec.B); err != nil {
		return spec, fmt.Errorf("depth %q: want R-G-B, e.g. 3-3-3", s)
	}
	for _, bits := range []int{spec.R, spec.G, spec.B} {
		if bits < 1 || bits > 8 {
			return spec, fmt.Errorf("depth %q: bits must be 1-8", s)
		}
	}
	return spec, nil
}

func ext(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i:]
	}
	return ""
}
