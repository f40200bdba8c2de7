package geom_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/typekit/pkg/geom"
)

func TestRectConstructors(t *testing.T) {
	r := geom.RectOf(geom.Pt(1, 2), geom.Sz(3, 4))

	assert.Equal(t, geom.Rct(1, 2, 3, 4), r)
	assert.Equal(t, geom.Pt(1, 2), r.Origin())
	assert.Equal(t, geom.Sz(3, 4), r.Size())
	assert.Equal(t, "(1,2 3x4)", r.String())
}

func TestRectCanon(t *testing.T) {
	tests := []struct {
		name     string
		rect     geom.Rect
		expected geom.Rect
	}{
		{name: "already canonical", rect: geom.Rct(1, 2, 3, 4), expected: geom.Rct(1, 2, 3, 4)},
		{name: "negative width", rect: geom.Rct(5, 2, -3, 4), expected: geom.Rct(2, 2, 3, 4)},
		{name: "negative height", rect: geom.Rct(1, 6, 3, -4), expected: geom.Rct(1, 2, 3, 4)},
		{name: "both negative", rect: geom.Rct(5, 6, -3, -4), expected: geom.Rct(2, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rect.Canon())
		})
	}
}

func TestRectContains(t *testing.T) {
	r := geom.Rct(0, 0, 10, 10)

	tests := []struct {
		name     string
		point    geom.Point
		expected bool
	}{
		{name: "origin", point: geom.Pt(0, 0), expected: true},
		{name: "interior", point: geom.Pt(5, 5), expected: true},
		{name: "right edge exclusive", point: geom.Pt(10, 5), expected: false},
		{name: "bottom edge exclusive", point: geom.Pt(5, 10), expected: false},
		{name: "outside", point: geom.Pt(-1, 5), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.point))
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	r := geom.Rct(0, 0, 10, 10)

	assert.True(t, r.ContainsRect(geom.Rct(2, 2, 4, 4)))
	assert.True(t, r.ContainsRect(r), "a rect contains itself")
	assert.False(t, r.ContainsRect(geom.Rct(8, 8, 4, 4)))
	assert.True(t, r.ContainsRect(geom.Rect{}), "empty rect is contained anywhere")
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.Rect
		expected geom.Rect
	}{
		{
			name:     "overlapping",
			a:        geom.Rct(0, 0, 10, 10),
			b:        geom.Rct(5, 5, 10, 10),
			expected: geom.Rct(5, 5, 5, 5),
		},
		{
			name:     "contained",
			a:        geom.Rct(0, 0, 10, 10),
			b:        geom.Rct(2, 2, 3, 3),
			expected: geom.Rct(2, 2, 3, 3),
		},
		{
			name:     "disjoint",
			a:        geom.Rct(0, 0, 4, 4),
			b:        geom.Rct(10, 10, 4, 4),
			expected: geom.Rect{},
		},
		{
			name:     "touching edges is empty",
			a:        geom.Rct(0, 0, 4, 4),
			b:        geom.Rct(4, 0, 4, 4),
			expected: geom.Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Intersect(tt.b))
			assert.Equal(t, tt.expected, tt.b.Intersect(tt.a), "intersect is symmetric")
			assert.Equal(t, !tt.expected.IsEmpty(), tt.a.Intersects(tt.b))
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := geom.Rct(0, 0, 4, 4)
	b := geom.Rct(10, 10, 2, 2)

	assert.Equal(t, geom.Rct(0, 0, 12, 12), a.Union(b))
	assert.Equal(t, a, a.Union(geom.Rect{}), "empty contributes nothing")
	assert.Equal(t, a, geom.Rect{}.Union(a))
}

func TestRectTranslateCenter(t *testing.T) {
	r := geom.Rct(1, 1, 4, 6)

	assert.Equal(t, geom.Rct(3, 0, 4, 6), r.Translate(2, -1))
	assert.Equal(t, geom.Pt(3, 4), r.Center())
}

func TestRectInsetOutset(t *testing.T) {
	r := geom.Rct(0, 0, 10, 10)
	in := geom.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}

	assert.Equal(t, geom.Rct(4, 1, 4, 6), r.Inset(in))
	assert.Equal(t, r, r.Inset(in).Outset(in).Union(r), "outset undoes inset within the original")

	// Oversized insets clamp at zero instead of going negative
	squeezed := geom.Rct(0, 0, 2, 2).Inset(geom.UniformInsets(5))
	assert.True(t, squeezed.IsEmpty())
	assert.Equal(t, 0, squeezed.Width)
	assert.Equal(t, 0, squeezed.Height)
}

func TestRectJSONTags(t *testing.T) {
	data, err := json.Marshal(geom.Rct(1, 2, 3, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2,"width":3,"height":4}`, string(data))

	var r geom.Rect
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, geom.Rct(1, 2, 3, 4), r)
}
