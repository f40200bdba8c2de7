package geom

import "fmt"

// Insets is a per-side margin or padding amount.
type Insets struct {
	Top    int `json:"top" yaml:"top" toml:"top"`
	Right  int `json:"right" yaml:"right" toml:"right"`
	Bottom int `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   int `json:"left" yaml:"left" toml:"left"`
}

// UniformInsets returns insets with the same amount on every side.
func UniformInsets(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the combined left and right amounts.
func (in Insets) Horizontal() int {
	return in.Left + in.Right
}

// Vertical returns the combined top and bottom amounts.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

// IsZero reports whether all sides are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}

func (in Insets) String() string {
	return fmt.Sprintf("(t:%d r:%d b:%d l:%d)", in.Top, in.Right, in.Bottom, in.Left)
}
