package driver

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// screenSurface blits core images onto an ebiten target.
// GPU copies are cached per source image; the sheet caches its tinted regions,
// so each sprite is uploaded once.
type screenSurface struct {
	dst    *ebiten.Image
	images map[image.Image]*ebiten.Image
}

// newScreenSurface creates a surface with an empty upload cache
func newScreenSurface() *screenSurface {
	return &screenSurface{
		images: make(map[image.Image]*ebiten.Image),
	}
}

// target points the surface at this frame's screen
func (s *screenSurface) target(dst *ebiten.Image) {
	s.dst = dst
}

// Blit draws img with its top-left corner at (x, y)
func (s *screenSurface) Blit(img image.Image, x, y float64) {
	if img.Bounds().Empty() {
		return
	}
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(eimg, op)
}
