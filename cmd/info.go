package cmd

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/Anarkade/deliaxe-core/internal/hasher"
	"github.com/Anarkade/deliaxe-core/internal/raster"
)

var infoCmd = &cobra.Command{
	Use:   "info <input_image>",
	Short: "Report dimensions, unique colors and content hash of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	r := raster.FromImage(img)

	unique := make(map[uint32]struct{})
	hasAlpha := false
	for i := 0; i+3 < len(r.Pix); i += 4 {
		unique[uint32(r.Pix[i])<<16|uint32(r.Pix[i+1])<<8|uint32(r.Pix[i+2])] = struct{}{}
		if r.Pix[i+3] != 255 {
			hasAlpha = true
		}
	}

	fmt.Println()
	fmt.Printf("  File:          %s\n", args[0])
	fmt.Printf("  Format:        %s\n", format)
	fmt.Printf("  Dimensions:    %dx%d\n", r.Width, r.Height)
	fmt.Printf("  Unique colors: %d\n", len(unique))
	fmt.Printf("  Alpha:         %v\n", hasAlpha)
	fmt.Printf("  Content hash:  %s\n", hasher.ContentHash(r.Pix, 16))
	fmt.Println()
	return nil
}
