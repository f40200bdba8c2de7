package docs

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/typekit/pkg/direction"
)

// Page is a single generated markdown document.
type Page struct {
	// Name is the file name without extension, e.g. "directions".
	Name  string
	Title string
	// Markdown is the full page body, including the title heading.
	Markdown string
}

// Figure is a generated SVG illustration.
type Figure struct {
	// Name is the file name without extension, e.g. "direction-rose".
	Name string
	SVG  []byte
}

// Site is the complete set of generated documentation artifacts.
type Site struct {
	Pages   []Page
	Figures []Figure
}

// Page returns the named page and whether it exists.
func (s *Site) Page(name string) (Page, bool) {
	for _, p := range s.Pages {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// packageInventory lists the library packages for the index page.
// Ordered as in the repository tree.
var packageInventory = []struct {
	path    string
	summary string
}{
	{"pkg/constraints", "Numeric and ordering type-set interfaces."},
	{"pkg/direction", "Direction, Axis and Corner enumerations."},
	{"pkg/fn", "Predicates, comparators, suppliers and operators."},
	{"pkg/geom", "Point, Size, Rect and Insets."},
	{"pkg/optional", "Optional[T], a value that may be absent."},
	{"pkg/tuple", "Pair, Triple and Quad."},
}

// Reference assembles the documentation site from the live declarations.
func Reference(cfg Config) (*Site, error) {
	site := &Site{
		Pages: []Page{
			indexPage(),
			directionsPage(),
			axesPage(),
			cornersPage(),
			geometryPage(),
		},
	}

	if cfg.Figures {
		rose, err := DirectionRose()
		if err != nil {
			return nil, err
		}
		anatomy, err := RectAnatomy()
		if err != nil {
			return nil, err
		}
		site.Figures = []Figure{
			{Name: "direction-rose", SVG: rose},
			{Name: "rect-anatomy", SVG: anatomy},
		}
	}

	return site, nil
}

func indexPage() Page {
	var b strings.Builder
	b.WriteString("# typekit reference\n\n")
	b.WriteString("Reusable type declarations: optional values, function shapes,\n")
	b.WriteString("tuples, geometry and directional enumerations.\n\n")
	b.WriteString("| Package | Summary |\n")
	b.WriteString("|---------|---------|\n")
	for _, pkg := range packageInventory {
		fmt.Fprintf(&b, "| `%s` | %s |\n", pkg.path, pkg.summary)
	}
	b.WriteString("\nGenerated by typekit-docs. Do not edit by hand.\n")
	return Page{Name: "index", Title: "typekit reference", Markdown: b.String()}
}

func directionsPage() Page {
	var b strings.Builder
	b.WriteString("# Direction\n\n")
	b.WriteString("The four cardinal movement directions. Deltas are unit steps in\n")
	b.WriteString("screen coordinates (y grows down).\n\n")
	b.WriteString("| Name | Ordinal | Opposite | Axis | Delta |\n")
	b.WriteString("|------|---------|----------|------|-------|\n")
	for _, d := range direction.Directions() {
		delta := d.Delta()
		fmt.Fprintf(&b, "| %s | %d | %s | %s | (%d, %d) |\n",
			d, int(d), d.Opposite(), d.Axis(), delta.X, delta.Y)
	}
	b.WriteString("\n![direction rose](direction-rose.svg)\n")
	return Page{Name: "directions", Title: "Direction", Markdown: b.String()}
}

func axesPage() Page {
	var b strings.Builder
	b.WriteString("# Axis\n\n")
	b.WriteString("The two screen axes.\n\n")
	b.WriteString("| Name | Ordinal | Other | Directions |\n")
	b.WriteString("|------|---------|-------|------------|\n")
	for _, a := range direction.Axes() {
		dirs := a.Directions()
		fmt.Fprintf(&b, "| %s | %d | %s | %s, %s |\n",
			a, int(a), a.Other(), dirs[0], dirs[1])
	}
	return Page{Name: "axes", Title: "Axis", Markdown: b.String()}
}

func cornersPage() Page {
	var b strings.Builder
	b.WriteString("# Corner\n\n")
	b.WriteString("The four rectangle corners.\n\n")
	b.WriteString("| Name | Ordinal | Opposite | Horizontal edge | Vertical edge |\n")
	b.WriteString("|------|---------|----------|-----------------|---------------|\n")
	for _, c := range direction.Corners() {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			c, int(c), c.Opposite(), c.HorizontalEdge(), c.VerticalEdge())
	}
	return Page{Name: "corners", Title: "Corner", Markdown: b.String()}
}

func geometryPage() Page {
	var b strings.Builder
	b.WriteString("# Geometry\n\n")
	b.WriteString("`pkg/geom` shapes are plain value types. A `Rect` is an origin\n")
	b.WriteString("`Point` plus a `Size` and spans the half-open ranges\n")
	b.WriteString("`[X, X+Width)` by `[Y, Y+Height)`.\n\n")
	b.WriteString("| Type | Fields |\n")
	b.WriteString("|------|--------|\n")
	b.WriteString("| `Point` | `X`, `Y` |\n")
	b.WriteString("| `Size` | `Width`, `Height` |\n")
	b.WriteString("| `Rect` | `X`, `Y`, `Width`, `Height` |\n")
	b.WriteString("| `Insets` | `Top`, `Right`, `Bottom`, `Left` |\n")
	b.WriteString("\n![rect anatomy](rect-anatomy.svg)\n")
	return Page{Name: "geometry", Title: "Geometry", Markdown: b.String()}
}
