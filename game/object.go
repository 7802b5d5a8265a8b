package game

import "image/color"

// GameObject is one sprite placed on screen.
// Its sheet rectangle is fixed at construction; only the position changes.
type GameObject struct {
	sheetRect Rect    // Source pixels inside the scaled sheet
	x, y      float64 // Center in window coordinates
	tint      color.Color
}

// NewGameObject resolves base, a rectangle in unscaled sheet pixels, against
// the sheet geometry and places the object centered on (x, y).
// Fails with a GeometryError if base does not fit inside the unscaled sheet.
func NewGameObject(name string, geom SheetGeometry, base Rect, tint color.Color, x, y float64) (*GameObject, error) {
	bounds := geom.BaseBounds()
	if geom.BaseWidth <= 0 || geom.BaseHeight <= 0 || base.Width < 0 || base.Height < 0 || !base.Within(bounds) {
		return nil, &GeometryError{Name: name, Rect: base, Bounds: bounds}
	}

	return &GameObject{
		sheetRect: geom.ToSheet(base),
		x:         x,
		y:         y,
		tint:      tint,
	}, nil
}

// SetPosition moves the object's center
func (o *GameObject) SetPosition(x, y float64) {
	o.x, o.y = x, y
}

// Position returns the object's center in window coordinates
func (o *GameObject) Position() (float64, float64) {
	return o.x, o.y
}

// Size returns the on-screen width and height
func (o *GameObject) Size() (float64, float64) {
	return o.sheetRect.Width, o.sheetRect.Height
}

// SheetRect returns where the sprite's pixels sit in the scaled sheet
func (o *GameObject) SheetRect() Rect {
	return o.sheetRect
}

// ScreenRect returns the area the object covers in the window
func (o *GameObject) ScreenRect() Rect {
	return CenteredAt(o.x, o.y, o.sheetRect.Width, o.sheetRect.Height)
}

// Draw blits the tinted sprite centered on the object's position
func (o *GameObject) Draw(dst Surface, sheet Sheet) {
	r := o.ScreenRect()
	dst.Blit(sheet.RegionColored(o.sheetRect, o.tint), r.X, r.Y)
}
