package game

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Placeholder sheets are white line art on a transparent background, so any
// tint shows through unchanged.
var (
	placeholderInk     = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	placeholderOutline = image.NewUniform(color.NRGBA{R: 160, G: 160, B: 160, A: 255})
)

// GeneratePlaceholderSheet draws a width x height sheet with a simple shape in
// each sprite rectangle of cfg: a ship, a laser bolt and an obstacle.
func GeneratePlaceholderSheet(cfg Config, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	drawShip(img, cfg.Player.Rect().ImageRect())
	xdraw.Draw(img, cfg.Laser.Rect().ImageRect(), placeholderInk, image.Point{}, xdraw.Src)
	drawBunker(img, cfg.Obstacle.Rect().ImageRect())

	return img
}

// drawShip draws a triangle pointing up, with a darker rim
func drawShip(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	w, h := float32(r.Dx()), float32(r.Dy())

	fillTriangle(img, r, placeholderOutline, w/2, 0, w, h, 0, h)
	if w > 2 && h > 2 {
		fillTriangle(img, r, placeholderInk, w/2, 2, w-1, h, 1, h)
	}
}

// fillTriangle fills the triangle (ax, ay) (bx, by) (cx, cy), given relative to r.Min
func fillTriangle(img *image.NRGBA, r image.Rectangle, src image.Image, ax, ay, bx, by, cx, cy float32) {
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.MoveTo(ax, ay)
	z.LineTo(bx, by)
	z.LineTo(cx, cy)
	z.ClosePath()
	z.Draw(img, r, src, image.Point{})
}

// drawBunker draws a filled block with an arch cut out of the bottom middle
func drawBunker(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}

	archW, archH := r.Dx()/3, r.Dy()/3
	arch := image.Rect(r.Min.X+archW, r.Max.Y-archH, r.Max.X-archW, r.Max.Y)

	xdraw.Draw(img, r, placeholderInk, image.Point{}, xdraw.Src)
	xdraw.Draw(img, arch, image.Transparent, image.Point{}, xdraw.Src)
}
