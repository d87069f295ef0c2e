package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anarkade/deliaxe-core/internal/palette"
	"github.com/Anarkade/deliaxe-core/internal/profile"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List console profiles and built-in preset palettes",
	Args:  cobra.NoArgs,
	RunE:  runPalettes,
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}

func runPalettes(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println("  Profiles:")
	for _, name := range profile.Names() {
		prof, err := profile.Parse(name)
		if err != nil {
			continue
		}
		kind := "fixed"
		if prof.Adaptive() {
			kind = "adaptive"
		}
		if prof.Console == profile.Original {
			kind = "passthrough"
		}
		depth := prof.Depth()
		fmt.Printf("    %-18s %-11s budget=%-3d depth=%d-%d-%d\n",
			name, kind, prof.Budget(), depth.R, depth.G, depth.B)
	}

	fmt.Println()
	fmt.Println("  Preset tables:")
	for _, name := range palette.PresetNames() {
		pal := palette.Preset(name)
		fmt.Printf("    %-18s %2d colors  %s\n", name, len(pal), pal)
	}
	fmt.Println()
	return nil
}
