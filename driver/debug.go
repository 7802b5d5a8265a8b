package driver

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spaceinvaders/game"
)

// DebugState holds the overlay flags toggled with F1
type DebugState struct {
	ShowCollision bool // Outline obstacle rects and projectile points
}

var colorDebug = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// drawDebug outlines what the collision test actually sees
func (d *Driver) drawDebug(screen *ebiten.Image) {
	for _, r := range d.obstacleRects {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, colorDebug, false)
	}
	for _, shot := range d.player.Shots().All() {
		x, y := shot.Position()
		vector.DrawFilledRect(screen, float32(x)-1, float32(y)-1, 3, 3, colorDebug, false)
	}

	ship := d.player.Ship().ScreenRect()
	vector.StrokeRect(screen, float32(ship.X), float32(ship.Y), float32(ship.Width), float32(ship.Height), 1, colorDebug, false)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nshots: %d", ebiten.ActualTPS(), d.player.Shots().Len()))
}

// describeRects formats rects for the debug log
func describeRects(rects []game.Rect) []string {
	out := make([]string, len(rects))
	for i, r := range rects {
		out[i] = r.String()
	}
	return out
}
