package game

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// checkerSheet returns a w x h opaque image with a distinct colour per pixel column
func checkerSheet(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewSpriteSheet_Geometry(t *testing.T) {
	s := NewSpriteSheet(checkerSheet(40, 20))
	g := s.Geometry()
	want := SheetGeometry{BaseWidth: 40, BaseHeight: 20, CurrentWidth: 40, CurrentHeight: 20}
	if g != want {
		t.Errorf("Geometry = %+v, want %+v", g, want)
	}
	if g.ScaleX() != 1 || g.ScaleY() != 1 {
		t.Errorf("scale = %g, %g, want 1, 1", g.ScaleX(), g.ScaleY())
	}
}

func TestSpriteSheet_ResizeSetsPerAxisScale(t *testing.T) {
	s := NewSpriteSheet(checkerSheet(40, 20))
	if !s.Resize(80, 60) {
		t.Fatal("Resize returned false")
	}

	g := s.Geometry()
	if g.BaseWidth != 40 || g.BaseHeight != 20 {
		t.Errorf("base size changed to %dx%d", g.BaseWidth, g.BaseHeight)
	}
	if g.CurrentWidth != 80 || g.CurrentHeight != 60 {
		t.Errorf("current size = %dx%d, want 80x60", g.CurrentWidth, g.CurrentHeight)
	}
	if g.ScaleX() != 2 || g.ScaleY() != 3 {
		t.Errorf("scale = %g, %g, want 2, 3", g.ScaleX(), g.ScaleY())
	}
	if b := s.Image().Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("image bounds = %v, want 80x60", b)
	}
}

func TestSpriteSheet_ResizeSkipsNonPositiveAndRepeat(t *testing.T) {
	s := NewSpriteSheet(checkerSheet(40, 20))

	if s.Resize(0, 0) {
		t.Error("Resize(0, 0) should be skipped")
	}
	if s.Resize(80, -1) {
		t.Error("Resize with negative height should be skipped")
	}
	if g := s.Geometry(); g.CurrentWidth != 40 || g.CurrentHeight != 20 {
		t.Errorf("skipped resize changed size to %dx%d", g.CurrentWidth, g.CurrentHeight)
	}

	if !s.Resize(120, 60) {
		t.Fatal("first Resize returned false")
	}
	before := s.Image()
	if s.Resize(120, 60) {
		t.Error("second Resize to the same size should be a no-op")
	}
	if s.Image() != before {
		t.Error("no-op Resize replaced the image")
	}
}

func TestSpriteSheet_ResizeNearestKeepsPixels(t *testing.T) {
	s := NewSpriteSheet(checkerSheet(4, 4))
	s.Resize(8, 8)

	// Each source pixel becomes a 2x2 block
	want := color.NRGBA{R: 30, G: 20, B: 200, A: 255}
	for _, p := range []image.Point{{6, 4}, {7, 5}} {
		got := s.Image().(*image.NRGBA).NRGBAAt(p.X, p.Y)
		if got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestSpriteSheet_RegionColoredMultiplies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	s := NewSpriteSheet(src)

	tint := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	region := s.RegionColored(Rect{X: 1, Y: 1, Width: 2, Height: 1}, tint)

	b := region.Bounds()
	if b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("region bounds = %v, want 2x1", b)
	}

	opaque := color.NRGBAModel.Convert(region.At(b.Min.X, b.Min.Y)).(color.NRGBA)
	if !near(float64(opaque.R), 200, 2) || !near(float64(opaque.G), 50, 2) || opaque.B != 0 || opaque.A != 255 {
		t.Errorf("opaque pixel = %v, want about {200 50 0 255}", opaque)
	}

	// Alpha comes from the sheet, not the tint
	translucent := color.NRGBAModel.Convert(region.At(b.Min.X+1, b.Min.Y)).(color.NRGBA)
	if !near(float64(translucent.A), 128, 2) {
		t.Errorf("translucent alpha = %d, want about 128", translucent.A)
	}
	if !near(float64(translucent.R), 255, 2) || !near(float64(translucent.G), 128, 2) || translucent.B != 0 {
		t.Errorf("translucent pixel = %v, want about {255 128 0 128}", translucent)
	}
}

func TestSpriteSheet_RegionColoredTransparentStaysTransparent(t *testing.T) {
	s := NewSpriteSheet(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	region := s.RegionColored(Rect{Width: 4, Height: 4}, ColorPlayer)
	if _, _, _, a := region.At(region.Bounds().Min.X, region.Bounds().Min.Y).RGBA(); a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
}

func TestSpriteSheet_RegionColoredCaches(t *testing.T) {
	s := NewSpriteSheet(checkerSheet(10, 10))
	area := Rect{X: 2, Y: 2, Width: 3, Height: 3}

	a := s.RegionColored(area, ColorPlayer)
	b := s.RegionColored(area, ColorPlayer)
	if a != b {
		t.Error("same area and tint should return the cached image")
	}
	c := s.RegionColored(area, color.NRGBA{R: 255, A: 255})
	if c == a {
		t.Error("different tint should not share a cached image")
	}

	s.Resize(20, 20)
	if d := s.RegionColored(area, ColorPlayer); d == a {
		t.Error("Resize should drop cached regions")
	}
}

func TestSpriteSheet_RegionColoredReadsScaledSheet(t *testing.T) {
	s := NewSpriteSheet(checkerSheet(4, 4))
	s.Resize(8, 8)

	// (6, 0) in the scaled sheet is source column 3
	region := s.RegionColored(Rect{X: 6, Y: 0, Width: 1, Height: 1}, color.White)
	got := color.NRGBAModel.Convert(region.At(region.Bounds().Min.X, region.Bounds().Min.Y)).(color.NRGBA)
	if !near(float64(got.R), 30, 1) {
		t.Errorf("red = %d, want 30", got.R)
	}
}

func TestLoadSpriteSheet_PNG(t *testing.T) {
	path := writePNG(t, checkerSheet(30, 12))
	s, err := LoadSpriteSheet(path)
	if err != nil {
		t.Fatalf("LoadSpriteSheet: %v", err)
	}
	if g := s.Geometry(); g.BaseWidth != 30 || g.BaseHeight != 12 {
		t.Errorf("base size = %dx%d, want 30x12", g.BaseWidth, g.BaseHeight)
	}
}

func TestLoadSpriteSheet_SVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="30" height="20" viewBox="0 0 30 20">
  <rect x="0" y="0" width="10" height="10" fill="#ffffff"/>
</svg>`
	path := filepath.Join(t.TempDir(), "sheet.svg")
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSpriteSheet(path)
	if err != nil {
		t.Fatalf("LoadSpriteSheet: %v", err)
	}
	if g := s.Geometry(); g.BaseWidth != 30 || g.BaseHeight != 20 {
		t.Errorf("base size = %dx%d, want 30x20", g.BaseWidth, g.BaseHeight)
	}
}

func TestLoadSpriteSheet_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	_, err := LoadSpriteSheet(path)

	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *ResourceError", err)
	}
	if rerr.Path != path {
		t.Errorf("error path = %q, want %q", rerr.Path, path)
	}
}

func TestLoadSpriteSheet_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSpriteSheet(path)
	var rerr *ResourceError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *ResourceError", err)
	}
}

func TestGeneratePlaceholderSheet_FillsSpriteRects(t *testing.T) {
	cfg := DefaultConfig()
	img := GeneratePlaceholderSheet(cfg, cfg.BaseWidth, cfg.BaseHeight)

	if b := img.Bounds(); b.Dx() != cfg.BaseWidth || b.Dy() != cfg.BaseHeight {
		t.Fatalf("bounds = %v", b)
	}
	// Laser is a solid bar
	if a := img.NRGBAAt(cfg.Laser.X, cfg.Laser.Y).A; a != 255 {
		t.Errorf("laser pixel alpha = %d, want 255", a)
	}
	// Obstacle top-left corner is solid
	if a := img.NRGBAAt(cfg.Obstacle.X, cfg.Obstacle.Y).A; a != 255 {
		t.Errorf("obstacle pixel alpha = %d, want 255", a)
	}
	// Ship base centre is solid ink
	if c := img.NRGBAAt(cfg.Player.X+cfg.Player.Width/2, cfg.Player.Y+cfg.Player.Height-1); c.A != 255 || c.R != 255 {
		t.Errorf("ship base pixel = %v, want opaque white", c)
	}
	// Ship top corners stay empty
	if a := img.NRGBAAt(cfg.Player.X, cfg.Player.Y).A; a != 0 {
		t.Errorf("ship corner alpha = %d, want 0", a)
	}
	// Arch cut out of the obstacle's bottom middle
	archX := cfg.Obstacle.X + cfg.Obstacle.Width/2
	archY := cfg.Obstacle.Y + cfg.Obstacle.Height - 1
	if a := img.NRGBAAt(archX, archY).A; a != 0 {
		t.Errorf("arch pixel alpha = %d, want 0", a)
	}
	// Nothing is drawn outside the sprites
	if a := img.NRGBAAt(cfg.BaseWidth-1, cfg.BaseHeight-1).A; a != 0 {
		t.Errorf("background alpha = %d, want 0", a)
	}
}
