package direction

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/typekit/pkg/errors"
)

// yaml.v3 honors encoding.TextMarshaler when encoding but not
// TextUnmarshaler when decoding, so the enums carry explicit YAML
// methods to round-trip.

// MarshalYAML implements yaml.Marshaler.
func (d Direction) MarshalYAML() (interface{}, error) {
	if !d.IsValid() {
		return nil, errors.Newf(errors.ErrEnumValue, "cannot marshal direction(%d)", int(d))
	}
	return directionNames[d], nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Axis) MarshalYAML() (interface{}, error) {
	if !a.IsValid() {
		return nil, errors.Newf(errors.ErrEnumValue, "cannot marshal axis(%d)", int(a))
	}
	return axisNames[a], nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Axis) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAxis(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Corner) MarshalYAML() (interface{}, error) {
	if !c.IsValid() {
		return nil, errors.Newf(errors.ErrEnumValue, "cannot marshal corner(%d)", int(c))
	}
	return cornerNames[c], nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Corner) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCorner(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
