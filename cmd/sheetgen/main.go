// sheetgen writes a placeholder sprite sheet whose sprites sit exactly where
// the config says they are.
//
// Usage:
//
//	sheetgen [--config path] [--out assets/sheet.png] [--width n] [--height n]
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"spaceinvaders/game"
)

var (
	flagConfig string
	flagOut    string
	flagWidth  int
	flagHeight int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sheetgen",
	Short: "Generate a placeholder sprite sheet",
	Long: `Draw white line-art placeholders for the ship, the laser and the
obstacle at the rectangles given in the config, and save them as a PNG.

The sheet defaults to BASE_WIDTH x BASE_HEIGHT pixels.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: built-in)")
	rootCmd.Flags().StringVar(&flagOut, "out", "assets/sheet.png", "Output PNG path")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Sheet width in pixels (0 = BASE_WIDTH)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Sheet height in pixels (0 = BASE_HEIGHT)")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sheetgen"})

	cfg, source, err := game.LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	width, height := flagWidth, flagHeight
	if width <= 0 {
		width = cfg.BaseWidth
	}
	if height <= 0 {
		height = cfg.BaseHeight
	}

	// Refuse to draw sprites that would be clipped
	geom := game.SheetGeometry{BaseWidth: width, BaseHeight: height, CurrentWidth: width, CurrentHeight: height}
	sprites := map[string]game.SpriteRect{"player": cfg.Player, "laser": cfg.Laser, "obstacle": cfg.Obstacle}
	for name, r := range sprites {
		if _, err := game.NewGameObject(name, geom, r.Rect(), game.ColorPlayer, 0, 0); err != nil {
			return err
		}
	}

	img := game.GeneratePlaceholderSheet(cfg, width, height)

	if err := os.MkdirAll(filepath.Dir(flagOut), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", flagOut, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", flagOut, err)
	}

	logger.Info("sheet written", "path", flagOut, "width", width, "height", height, "config", source)
	return nil
}
