package geom

import "fmt"

// Rect is an axis-aligned rectangle: an origin plus a size.
type Rect struct {
	X      int `json:"x" yaml:"x" toml:"x"`
	Y      int `json:"y" yaml:"y" toml:"y"`
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// RectOf constructs a Rect from an origin and a size.
func RectOf(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Rct is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func Rct(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Canon returns the canonical form of r: negative dimensions are folded
// into the origin so Width and Height are non-negative.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Translate returns r shifted by dx and dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the midpoint, rounding toward the origin.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.In(r)
}

// ContainsRect reports whether s lies entirely inside r.
// An empty s is contained by any rectangle.
func (r Rect) ContainsRect(s Rect) bool {
	if s.IsEmpty() {
		return true
	}
	return s.X >= r.X && s.Y >= r.Y &&
		s.X+s.Width <= r.X+r.Width &&
		s.Y+s.Height <= r.Y+r.Height
}

// Intersects reports whether r and s share any area.
func (r Rect) Intersects(s Rect) bool {
	return !r.Intersect(s).IsEmpty()
}

// Intersect returns the largest rectangle contained in both r and s.
// The zero Rect is returned when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.Width, s.X+s.Width)
	y2 := min(r.Y+r.Height, s.Y+s.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles contribute nothing.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x1 := min(r.X, s.X)
	y1 := min(r.Y, s.Y)
	x2 := max(r.X+r.Width, s.X+s.Width)
	y2 := max(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Inset returns r shrunk on each side by the given insets. Dimensions
// clamp at zero rather than going negative.
func (r Rect) Inset(in Insets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.Width -= in.Left + in.Right
	r.Height -= in.Top + in.Bottom
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Outset returns r grown on each side by the given insets.
func (r Rect) Outset(in Insets) Rect {
	r.X -= in.Left
	r.Y -= in.Top
	r.Width += in.Left + in.Right
	r.Height += in.Top + in.Bottom
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
