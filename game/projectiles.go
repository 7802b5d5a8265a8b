package game

import (
	"image/color"
	"iter"
)

// AdvanceResult counts the projectiles culled by one Advance call
type AdvanceResult struct {
	Escaped int // Left through the top of the window
	Hit     int // Struck an obstacle
}

// Culled returns the total number of projectiles removed
func (r AdvanceResult) Culled() int {
	return r.Escaped + r.Hit
}

// ProjectileSet holds the shots currently in flight
type ProjectileSet struct {
	shots    Collection[*GameObject]
	template GameObject // Validated once so spawning cannot fail
}

// NewProjectileSet creates an empty set for the projectile sprite at base
func NewProjectileSet(geom SheetGeometry, base Rect, tint color.Color) (*ProjectileSet, error) {
	template, err := NewGameObject("laser", geom, base, tint, 0, 0)
	if err != nil {
		return nil, err
	}
	return &ProjectileSet{template: *template}, nil
}

// Spawn adds a projectile centered on (x, y)
func (s *ProjectileSet) Spawn(x, y float64) *GameObject {
	shot := s.template
	shot.SetPosition(x, y)
	s.shots.Append(&shot)
	return &shot
}

// Advance moves every projectile up by speed, in insertion order.
// A projectile whose next position is above the window, or inside any of
// obstacles, is removed instead of moved. The top-of-window check wins.
func (s *ProjectileSet) Advance(speed float64, obstacles []Rect) AdvanceResult {
	var res AdvanceResult
	s.shots.Retain(func(shot *GameObject) bool {
		x, y := shot.Position()
		y -= speed

		if y < 0 {
			res.Escaped++
			return false
		}
		if hitsAny(x, y, obstacles) {
			res.Hit++
			return false
		}

		shot.SetPosition(x, y)
		return true
	})
	return res
}

// hitsAny reports whether (x, y) lies inside any of rects
func hitsAny(x, y float64, rects []Rect) bool {
	for _, r := range rects {
		if r.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

// Len returns the number of projectiles in flight
func (s *ProjectileSet) Len() int {
	return s.shots.Len()
}

// All iterates over the projectiles in insertion order
func (s *ProjectileSet) All() iter.Seq2[int, *GameObject] {
	return s.shots.All()
}

// Draw draws the projectiles, oldest first
func (s *ProjectileSet) Draw(dst Surface, sheet Sheet) {
	s.shots.Draw(dst, sheet)
}
