package direction

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/typekit/pkg/errors"
)

// Corner is one of the four rectangle corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{
	TopLeft:     "top-left",
	TopRight:    "top-right",
	BottomLeft:  "bottom-left",
	BottomRight: "bottom-right",
}

// Corners returns all corners in declaration order.
func Corners() []Corner {
	return []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
}

// IsValid reports whether c is one of the declared corners.
func (c Corner) IsValid() bool {
	return c >= TopLeft && c <= BottomRight
}

// Opposite returns the diagonally opposite corner.
func (c Corner) Opposite() Corner {
	switch c {
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	default:
		return c
	}
}

// HorizontalEdge returns the direction of the corner's horizontal side.
func (c Corner) HorizontalEdge() Direction {
	if c == TopLeft || c == BottomLeft {
		return Left
	}
	return Right
}

// VerticalEdge returns the direction of the corner's vertical side.
func (c Corner) VerticalEdge() Direction {
	if c == TopLeft || c == TopRight {
		return Up
	}
	return Down
}

func (c Corner) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("corner(%d)", int(c))
	}
	return cornerNames[c]
}

// ParseCorner converts a name to a Corner. Matching is case-insensitive.
func ParseCorner(s string) (Corner, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range cornerNames {
		if n == name {
			return Corner(c), nil
		}
	}
	return TopLeft, errors.Newf(errors.ErrEnumParse, "unknown corner %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Corner) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.Newf(errors.ErrEnumValue, "cannot marshal corner(%d)", int(c))
	}
	return []byte(cornerNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Corner) UnmarshalText(text []byte) error {
	parsed, err := ParseCorner(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
