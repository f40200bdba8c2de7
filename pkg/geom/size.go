package geom

import "fmt"

// Size is a width/height extent. Negative dimensions are treated as empty.
type Size struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty reports whether the size covers no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns width times height, or 0 for empty sizes.
func (s Size) Area() int {
	if s.IsEmpty() {
		return 0
	}
	return s.Width * s.Height
}

// Grow returns the size enlarged by dw and dh.
func (s Size) Grow(dw, dh int) Size {
	return Size{Width: s.Width + dw, Height: s.Height + dh}
}

// Union returns the smallest size covering both s and t.
func (s Size) Union(t Size) Size {
	u := s
	if t.Width > u.Width {
		u.Width = t.Width
	}
	if t.Height > u.Height {
		u.Height = t.Height
	}
	return u
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
