package game

import (
	"image"
	"image/color"
)

// Surface is a 2D target that sprites are blitted onto
type Surface interface {
	// Blit draws img with its top-left corner at (x, y) in window coordinates
	Blit(img image.Image, x, y float64)
}

// Sheet hands out tinted regions of a sprite sheet
type Sheet interface {
	RegionColored(area Rect, tint color.Color) image.Image
}

// Drawable is anything that can draw itself from a sheet onto a surface
type Drawable interface {
	Draw(dst Surface, sheet Sheet)
}

// ColorPlayer is the faction colour shared by the ship, its shots and the obstacles
var ColorPlayer = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
