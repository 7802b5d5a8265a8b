package game

import (
	"fmt"
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// NewRect creates a rectangle, clamping negative sizes to zero
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Scale multiplies every component of the rectangle by the per-axis factors.
// X and Width use sx, Y and Height use sy.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{
		X:      r.X * sx,
		Y:      r.Y * sy,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}

// ContainsPoint reports whether (x, y) lies inside the rectangle.
// The top and left edges are inside, the bottom and right edges are not, so
// rectangles that share an edge never both claim a point on it.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Within reports whether the rectangle lies entirely inside bounds
func (r Rect) Within(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// CenteredAt returns a rectangle of the given size whose center is (cx, cy)
func CenteredAt(cx, cy, width, height float64) Rect {
	return Rect{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

// ImageRect returns the smallest integer image rectangle that covers r.
// Fractional edges round outward, so a blitted region is never narrower than
// the area used for collision.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())),
		int(math.Ceil(r.Bottom())),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}
