// Package geom defines small integer geometry shapes: Point, Size, Rect
// and Insets. Shapes are plain value types with no hidden state; every
// operation returns a new value. Coordinates follow screen convention:
// x grows right, y grows down, and a Rect spans [X, X+Width) by
// [Y, Y+Height).
package geom
