package game

import "fmt"

// ResourceError reports a file (sprite sheet or config) that could not be read
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ConfigError reports a missing or malformed configuration key
type ConfigError struct {
	Section string
	Key     string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config %s.%s: %s", e.Section, e.Key, e.Reason)
}

// GeometryError reports a sprite rectangle that does not fit inside its sheet
type GeometryError struct {
	Name   string // Which sprite the rectangle belongs to
	Rect   Rect
	Bounds Rect
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("sprite %q: rect %v lies outside sheet bounds %v", e.Name, e.Rect, e.Bounds)
}
