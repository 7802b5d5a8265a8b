// Package driver runs the game core inside an ebiten window.
package driver

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"spaceinvaders/game"
)

// WindowTitle is shown in the title bar
const WindowTitle = "Space Invaders"

var colorBackground = color.Black

// Options control how the window is opened
type Options struct {
	Fullscreen bool
	Debug      bool   // Start with the debug overlay on
	ProfileDir string // Capture profiles here when the frame rate drops; empty disables
}

// Driver implements ebiten.Game around one player and one row of obstacles
type Driver struct {
	config    game.Config
	sheet     *game.SpriteSheet
	player    *game.Player
	obstacles *game.ObstacleSet
	logger    *log.Logger

	obstacleRects []game.Rect
	fire          game.FireTrigger
	surface       *screenSurface
	debug         DebugState
	profiler      *game.FrameProfiler // nil unless profiling frame drops
}

// New builds the scene from a loaded config and sprite sheet.
// The sheet is scaled to the configured target size before any sprite is cut.
func New(cfg game.Config, sheet *game.SpriteSheet, logger *log.Logger, opts Options) (*Driver, error) {
	targetW, targetH := cfg.SheetTargetSize()
	if sheet.Resize(targetW, targetH) {
		logger.Debug("sprite sheet scaled", "width", targetW, "height", targetH)
	} else if targetW <= 0 || targetH <= 0 {
		logger.Warn("sprite sheet kept at base size", "factor", cfg.Factor)
	}

	geom := sheet.Geometry()
	logger.Info("sprite sheet ready",
		"base", []int{geom.BaseWidth, geom.BaseHeight},
		"scaled", []int{geom.CurrentWidth, geom.CurrentHeight})

	player, err := game.NewPlayer(cfg, geom, game.ColorPlayer)
	if err != nil {
		return nil, err
	}
	obstacles, err := game.NewObstacleSet(cfg, geom, game.ColorPlayer)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		config:        cfg,
		sheet:         sheet,
		player:        player,
		obstacles:     obstacles,
		logger:        logger,
		obstacleRects: obstacles.CollisionRects(),
		surface:       newScreenSurface(),
		debug:         DebugState{ShowCollision: opts.Debug},
	}
	if opts.ProfileDir != "" {
		d.profiler = game.NewFrameProfiler(opts.ProfileDir, cfg.FPS, logger)
	}
	logger.Debug("obstacles placed", "rects", describeRects(d.obstacleRects))
	return d, nil
}

// Run opens the window and blocks until the player quits
func Run(d *Driver, opts Options) error {
	ebiten.SetWindowSize(d.config.WindowWidth(), d.config.WindowHeight())
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(d.config.FPS)
	ebiten.SetFullscreen(opts.Fullscreen)

	d.logger.Info("window open",
		"width", d.config.WindowWidth(),
		"height", d.config.WindowHeight(),
		"fps", d.config.FPS)
	return ebiten.RunGame(d)
}

// Update advances one frame
func (d *Driver) Update() error {
	if quitRequested() {
		d.logger.Info("quit requested")
		return ebiten.Termination
	}
	if debugToggled() {
		d.debug.ShowCollision = !d.debug.ShowCollision
	}

	if d.profiler != nil {
		d.profiler.Observe(ebiten.ActualTPS())
	}

	in := readIntent(&d.fire)
	res := d.player.Update(in, d.obstacleRects)
	if res.Culled() > 0 {
		d.logger.Debug("projectiles culled", "escaped", res.Escaped, "hit", res.Hit, "left", d.player.Shots().Len())
	}
	return nil
}

// Draw renders shots, ship, then obstacles
func (d *Driver) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	d.surface.target(screen)
	d.player.Draw(d.surface, d.sheet)
	d.obstacles.Draw(d.surface, d.sheet)

	if d.debug.ShowCollision {
		d.drawDebug(screen)
	}
}

// Layout keeps the logical screen at the configured window size
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.config.WindowWidth(), d.config.WindowHeight()
}
