package docs_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/typekit/pkg/docs"
)

func TestDirectionRoseIsValidSVG(t *testing.T) {
	data, err := docs.DirectionRose()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	svg := doc.SelectElement("svg")
	require.NotNil(t, svg)
	assert.Equal(t, "http://www.w3.org/2000/svg", svg.SelectAttrValue("xmlns", ""))

	// One arrow and one label per direction
	assert.Len(t, svg.SelectElements("line"), 4)
	labels := svg.SelectElements("text")
	require.Len(t, labels, 4)

	var names []string
	for _, label := range labels {
		names = append(names, label.Text())
	}
	assert.ElementsMatch(t, []string{"up", "down", "left", "right"}, names)
}

func TestRectAnatomyIsValidSVG(t *testing.T) {
	data, err := docs.RectAnatomy()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))

	svg := doc.SelectElement("svg")
	require.NotNil(t, svg)

	require.NotNil(t, svg.SelectElement("rect"))
	// Origin dot plus one mark per corner
	assert.Len(t, svg.SelectElements("circle"), 5)
}
