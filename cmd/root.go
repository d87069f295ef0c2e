package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "deliaxe",
	Short: "Retro palette converter for period-accurate pixel art",
	Long: `deliaxe — converts images to hardware-accurate retro palettes:
Game Boy shade ramps, adaptive Mega Drive / Game Gear / Master System
palettes, and named fixed preset tables.

Output palettes respect hardware slot order and color budgets, matching
is perceptual (CIE Lab + Delta-E 2000), and results are written as
indexed PNG plus a palette report.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"deliaxe %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[deliaxe] "+format+"\n", args...)
	}
}
