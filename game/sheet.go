package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG sheets
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp" // BMP sheets
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP sheets
)

// SheetGeometry describes the sprite sheet size before and after scaling
type SheetGeometry struct {
	// BaseWidth and BaseHeight are the pixel size of the sheet as loaded
	BaseWidth  int
	BaseHeight int

	// CurrentWidth and CurrentHeight are the pixel size after scaling
	CurrentWidth  int
	CurrentHeight int
}

// ScaleX returns the horizontal scale factor from base to current
func (g SheetGeometry) ScaleX() float64 {
	return float64(g.CurrentWidth) / float64(g.BaseWidth)
}

// ScaleY returns the vertical scale factor from base to current
func (g SheetGeometry) ScaleY() float64 {
	return float64(g.CurrentHeight) / float64(g.BaseHeight)
}

// BaseBounds returns the unscaled sheet as a rectangle at the origin
func (g SheetGeometry) BaseBounds() Rect {
	return Rect{Width: float64(g.BaseWidth), Height: float64(g.BaseHeight)}
}

// ToSheet maps a rectangle in base coordinates into the scaled sheet.
// Each axis uses its own ratio.
func (g SheetGeometry) ToSheet(base Rect) Rect {
	return base.Scale(g.ScaleX(), g.ScaleY())
}

// regionKey identifies a cached tinted region
type regionKey struct {
	area image.Rectangle
	tint color.NRGBA
}

// SpriteSheet owns one sheet image and hands out tinted regions of it
type SpriteSheet struct {
	source  image.Image  // As decoded, kept so rescaling never compounds
	current *image.NRGBA // Scaled copy that regions are cut from
	geom    SheetGeometry
	regions map[regionKey]image.Image
}

// LoadSpriteSheet reads a sheet image from disk.
// SVG files are rasterized at their viewBox size; everything else goes through
// image.Decode (PNG, BMP, WebP).
func LoadSpriteSheet(path string) (*SpriteSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err = rasterizeSVG(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &ResourceError{Path: path, Err: fmt.Errorf("image is empty")}
	}
	return NewSpriteSheet(img), nil
}

// rasterizeSVG renders SVG data to an RGBA image the size of its viewBox
func rasterizeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}

	width, height := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg viewBox %gx%g has no area", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// NewSpriteSheet wraps an already decoded image
func NewSpriteSheet(img image.Image) *SpriteSheet {
	b := img.Bounds()
	s := &SpriteSheet{
		source: img,
		geom: SheetGeometry{
			BaseWidth:     b.Dx(),
			BaseHeight:    b.Dy(),
			CurrentWidth:  b.Dx(),
			CurrentHeight: b.Dy(),
		},
	}
	s.current = toNRGBA(img)
	s.regions = make(map[regionKey]image.Image)
	return s
}

// toNRGBA copies img into a fresh NRGBA image at the origin
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// Geometry returns the base and current sheet sizes
func (s *SpriteSheet) Geometry() SheetGeometry {
	return s.geom
}

// Image returns the scaled sheet
func (s *SpriteSheet) Image() image.Image {
	return s.current
}

// Resize scales the sheet to width x height, always from the original pixels.
// A non-positive size or the current size leaves the sheet untouched.
// Returns true if the sheet was rescaled.
func (s *SpriteSheet) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == s.geom.CurrentWidth && height == s.geom.CurrentHeight {
		return false
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	// Nearest neighbour keeps line art crisp
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s.source, s.source.Bounds(), xdraw.Src, nil)

	s.current = dst
	s.geom.CurrentWidth = width
	s.geom.CurrentHeight = height
	clear(s.regions)
	return true
}

// RegionColored returns the pixels under area in the scaled sheet, multiplied
// channel by channel with tint. Alpha comes from the sheet.
// Results are cached per area and tint.
func (s *SpriteSheet) RegionColored(area Rect, tint color.Color) image.Image {
	key := regionKey{
		area: area.ImageRect().Intersect(s.current.Bounds()),
		tint: color.NRGBAModel.Convert(tint).(color.NRGBA),
	}
	if img, ok := s.regions[key]; ok {
		return img
	}

	tr := float32(key.tint.R) / 255
	tg := float32(key.tint.G) / 255
	tb := float32(key.tint.B) / 255

	filter := gift.New(
		gift.Crop(key.area),
		gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
			return r0 * tr, g0 * tg, b0 * tb, a0
		}),
	)
	dst := image.NewNRGBA(filter.Bounds(s.current.Bounds()))
	filter.Draw(dst, s.current)

	s.regions[key] = dst
	return dst
}
