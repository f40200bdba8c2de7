package docs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/typekit/pkg/direction"
	"github.com/arthur-debert/typekit/pkg/docs"
)

func TestReferencePages(t *testing.T) {
	site, err := docs.Reference(docs.DefaultConfig())
	require.NoError(t, err)

	wantPages := []string{"index", "directions", "axes", "corners", "geometry"}
	var gotPages []string
	for _, p := range site.Pages {
		gotPages = append(gotPages, p.Name)
	}
	assert.Equal(t, wantPages, gotPages)

	for _, p := range site.Pages {
		assert.NotEmpty(t, p.Title, "page %s has no title", p.Name)
		assert.True(t, strings.HasPrefix(p.Markdown, "# "), "page %s does not start with a heading", p.Name)
	}
}

func TestReferenceDirectionsTableMatchesEnum(t *testing.T) {
	site, err := docs.Reference(docs.DefaultConfig())
	require.NoError(t, err)

	page, ok := site.Page("directions")
	require.True(t, ok)

	// One table row per direction, with its name and opposite
	for _, d := range direction.Directions() {
		assert.Contains(t, page.Markdown, "| "+d.String()+" |")
		assert.Contains(t, page.Markdown, d.Opposite().String())
	}
}

func TestReferenceCornersTableMatchesEnum(t *testing.T) {
	site, err := docs.Reference(docs.DefaultConfig())
	require.NoError(t, err)

	page, ok := site.Page("corners")
	require.True(t, ok)

	for _, c := range direction.Corners() {
		assert.Contains(t, page.Markdown, "| "+c.String()+" |")
	}
}

func TestReferenceFigures(t *testing.T) {
	cfg := docs.DefaultConfig()

	site, err := docs.Reference(cfg)
	require.NoError(t, err)
	require.Len(t, site.Figures, 2)
	assert.Equal(t, "direction-rose", site.Figures[0].Name)
	assert.Equal(t, "rect-anatomy", site.Figures[1].Name)

	cfg.Figures = false
	site, err = docs.Reference(cfg)
	require.NoError(t, err)
	assert.Empty(t, site.Figures)
}

func TestSitePageLookup(t *testing.T) {
	site, err := docs.Reference(docs.DefaultConfig())
	require.NoError(t, err)

	_, ok := site.Page("index")
	assert.True(t, ok)

	_, ok = site.Page("nonexistent")
	assert.False(t, ok)
}

func TestIndexListsLibraryPackages(t *testing.T) {
	site, err := docs.Reference(docs.DefaultConfig())
	require.NoError(t, err)

	page, ok := site.Page("index")
	require.True(t, ok)

	for _, pkg := range []string{"pkg/optional", "pkg/tuple", "pkg/fn", "pkg/geom", "pkg/direction", "pkg/constraints"} {
		assert.Contains(t, page.Markdown, pkg)
	}
}
