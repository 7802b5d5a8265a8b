package game

import (
	"image/color"
	"iter"
	"slices"
)

// Collection is an ordered list of drawables.
// Insertion order is draw order, so later items draw on top.
type Collection[T Drawable] struct {
	items []T
}

// Append adds item at the end
func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// RemoveAt deletes the item at index i, keeping the others in order
func (c *Collection[T]) RemoveAt(i int) {
	c.items = slices.Delete(c.items, i, i+1)
}

// Len returns the number of items
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the item at index i
func (c *Collection[T]) At(i int) T {
	return c.items[i]
}

// All iterates over the items in insertion order
func (c *Collection[T]) All() iter.Seq2[int, T] {
	return slices.All(c.items)
}

// Retain keeps only the items for which keep returns true.
// keep sees every item exactly once, in order, and may mutate it.
// Returns how many items were removed.
func (c *Collection[T]) Retain(keep func(T) bool) int {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		return !keep(item)
	})
	return before - len(c.items)
}

// Draw draws every item in insertion order
func (c *Collection[T]) Draw(dst Surface, sheet Sheet) {
	for _, item := range c.items {
		item.Draw(dst, sheet)
	}
}

// ObjectCollection is a list of game objects cut from the same sprite
type ObjectCollection struct {
	Collection[*GameObject]

	name string
	base Rect // Sprite location in unscaled sheet pixels
	tint color.Color
}

// NewObjectCollection creates an empty collection for the sprite at base
func NewObjectCollection(name string, base Rect, tint color.Color) *ObjectCollection {
	return &ObjectCollection{
		name: name,
		base: base,
		tint: tint,
	}
}

// Add creates an object from the collection's sprite at (x, y) and appends it
func (c *ObjectCollection) Add(geom SheetGeometry, x, y float64) (*GameObject, error) {
	obj, err := NewGameObject(c.name, geom, c.base, c.tint, x, y)
	if err != nil {
		return nil, err
	}
	c.Append(obj)
	return obj, nil
}
