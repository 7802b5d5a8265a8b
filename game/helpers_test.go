package game

import (
	"image"
	"image/color"
)

// blit records one Surface.Blit call
type blit struct {
	img  image.Image
	x, y float64
}

// recordingSurface remembers every blit in order
type recordingSurface struct {
	blits []blit
}

func (s *recordingSurface) Blit(img image.Image, x, y float64) {
	s.blits = append(s.blits, blit{img: img, x: x, y: y})
}

// regionRequest records one Sheet.RegionColored call
type regionRequest struct {
	area Rect
	tint color.Color
}

// fakeSheet hands out blank regions and remembers what was asked for
type fakeSheet struct {
	requests []regionRequest
}

func (s *fakeSheet) RegionColored(area Rect, tint color.Color) image.Image {
	s.requests = append(s.requests, regionRequest{area: area, tint: tint})
	return image.NewNRGBA(area.ImageRect())
}

// unitGeometry is a 100x100 sheet that is not scaled, so base and screen
// sizes are equal
var unitGeometry = SheetGeometry{BaseWidth: 100, BaseHeight: 100, CurrentWidth: 100, CurrentHeight: 100}

// testConfig is an 800x600 window with a 40x20 ship and speed 10
func testConfig() Config {
	return Config{
		BaseWidth:  200,
		BaseHeight: 150,
		Factor:     4,
		FPS:        60,
		Speed:      10,
		LaserSpeed: 10,
		Player:     SpriteRect{X: 0, Y: 0, Width: 40, Height: 20},
		Laser:      SpriteRect{X: 50, Y: 0, Width: 2, Height: 6},
		Obstacle:   SpriteRect{X: 0, Y: 40, Width: 50, Height: 50},
	}
}

func near(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}
