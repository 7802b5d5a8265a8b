// spaceinvaders is a small arcade shooter: move the ship with the arrow keys
// (or A/D), fire with space, quit with Escape. F1 toggles the collision overlay.
//
// Usage:
//
//	spaceinvaders [--config path] [--sheet path] [--debug] [--fullscreen] [--cpuprofile path] [--profile-drops dir]
package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"spaceinvaders/driver"
	"spaceinvaders/game"
)

var (
	flagConfig     string
	flagSheet      string
	flagDebug      bool
	flagFullscreen bool
	flagCPUProfile string
	flagProfileDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceinvaders",
	Short: "Space Invaders - a ship, its laser and four obstacles",
	Long: `Move the ship left and right and shoot at the obstacles.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire (one shot per press)
  F1               - Toggle collision overlay
  Esc              - Quit

Examples:
  spaceinvaders
  spaceinvaders --config ./configs/spaceinvaders.yaml --sheet ./assets/sheet.png
  spaceinvaders --debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ./"+game.LocalConfigPath+", then built-in)")
	rootCmd.Flags().StringVar(&flagSheet, "sheet", "assets/sheet.png", "Path to the sprite sheet (PNG, BMP, WebP or SVG)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision overlay")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start fullscreen")
	rootCmd.Flags().StringVar(&flagCPUProfile, "cpuprofile", "", "Write a CPU profile to this file")
	rootCmd.Flags().StringVar(&flagProfileDir, "profile-drops", "", "Capture a CPU profile and trace into this directory when the frame rate drops")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceinvaders",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, source, err := game.LoadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	sheet, err := game.LoadSpriteSheet(flagSheet)
	if err != nil {
		return fmt.Errorf("load sprite sheet: %w", err)
	}
	logger.Info("sprite sheet loaded", "path", flagSheet)

	opts := driver.Options{
		Fullscreen: flagFullscreen,
		Debug:      flagDebug,
		ProfileDir: flagProfileDir,
	}
	d, err := driver.New(cfg, sheet, logger, opts)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	if flagCPUProfile != "" {
		stop, err := startCPUProfile(flagCPUProfile)
		if err != nil {
			return err
		}
		defer stop()
		logger.Info("cpu profiling", "path", flagCPUProfile)
	}

	return driver.Run(d, opts)
}

// startCPUProfile writes a CPU profile until the returned stop is called
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
