package game

import (
	"image/color"
	"slices"
)

// Obstacle layout: evenly spaced across the window at a fixed height
const (
	obstacleCount = 4
	obstacleRow   = 3.7 / 5 // Fraction of window height
)

// ObstacleSet is the fixed row of obstacles that stops projectiles
type ObstacleSet struct {
	objects *ObjectCollection
	rects   []Rect // Screen rectangles, computed once
}

// NewObstacleSet places the obstacles at 1/5, 2/5, 3/5 and 4/5 of the window width
func NewObstacleSet(cfg Config, geom SheetGeometry, tint color.Color) (*ObstacleSet, error) {
	s := &ObstacleSet{
		objects: NewObjectCollection("obstacle", cfg.Obstacle.Rect(), tint),
		rects:   make([]Rect, 0, obstacleCount),
	}

	w, h := float64(cfg.WindowWidth()), float64(cfg.WindowHeight())
	for i := range obstacleCount {
		x := float64(i+1) * w / (obstacleCount + 1)
		obj, err := s.objects.Add(geom, x, obstacleRow*h)
		if err != nil {
			return nil, err
		}
		s.rects = append(s.rects, obj.ScreenRect())
	}
	return s, nil
}

// CollisionRects returns one screen rectangle per obstacle, in placement order
func (s *ObstacleSet) CollisionRects() []Rect {
	return slices.Clone(s.rects)
}

// Len returns the number of obstacles
func (s *ObstacleSet) Len() int {
	return s.objects.Len()
}

// Draw draws the obstacles left to right
func (s *ObstacleSet) Draw(dst Surface, sheet Sheet) {
	s.objects.Draw(dst, sheet)
}
